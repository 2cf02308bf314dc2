package formation

import "club-lineup-service/internal/domain/players"

// Line is the coarse tactical band a position belongs to.
type Line string

const (
	LineGoalkeeper Line = "GOALKEEPER"
	LineDefense    Line = "DEFENSE"
	LineMidfield   Line = "MIDFIELD"
	LineAttack     Line = "ATTACK"
)

// Lines returns every line in display order (goalkeeper first).
func Lines() []Line {
	return []Line{LineGoalkeeper, LineDefense, LineMidfield, LineAttack}
}

// Valid reports whether l is one of the defined lines.
func (l Line) Valid() bool {
	switch l {
	case LineGoalkeeper, LineDefense, LineMidfield, LineAttack:
		return true
	}
	return false
}

// Role is the coarse lateral tag of a position or slot. It biases slot
// filling and labels board slots; it is never a hard constraint.
type Role string

const (
	RoleLeft             Role = "LEFT"
	RoleCentralDefensive Role = "CENTRAL_DEFENSIVE"
	RoleCentral          Role = "CENTRAL"
	RoleCentralAttacking Role = "CENTRAL_ATTACKING"
	RoleRight            Role = "RIGHT"
)

// lineByPosition is total over the closed position set and never changes at
// runtime. TestTaxonomyIsTotal guards the invariant.
var lineByPosition = map[players.Position]Line{
	players.Goalkeeper: LineGoalkeeper,

	players.LeftBack:      LineDefense,
	players.LeftWingBack:  LineDefense,
	players.CentreBack:    LineDefense,
	players.RightBack:     LineDefense,
	players.RightWingBack: LineDefense,

	players.DefensiveMidfielder: LineMidfield,
	players.CentreMidfielder:    LineMidfield,
	players.AttackingMidfielder: LineMidfield,
	players.LeftMidfielder:      LineMidfield,
	players.RightMidfielder:     LineMidfield,

	players.LeftWinger:    LineAttack,
	players.RightWinger:   LineAttack,
	players.Striker:       LineAttack,
	players.CentreForward: LineAttack,
}

var roleByPosition = map[players.Position]Role{
	players.Goalkeeper: RoleCentral,

	players.LeftBack:      RoleLeft,
	players.LeftWingBack:  RoleLeft,
	players.CentreBack:    RoleCentralDefensive,
	players.RightBack:     RoleRight,
	players.RightWingBack: RoleRight,

	players.DefensiveMidfielder: RoleCentralDefensive,
	players.CentreMidfielder:    RoleCentral,
	players.AttackingMidfielder: RoleCentralAttacking,
	players.LeftMidfielder:      RoleLeft,
	players.RightMidfielder:     RoleRight,

	players.LeftWinger:    RoleLeft,
	players.RightWinger:   RoleRight,
	players.Striker:       RoleCentral,
	players.CentreForward: RoleCentral,
}

// LineOf classifies a position into its tactical line.
func LineOf(p players.Position) Line {
	return lineByPosition[p]
}

// RoleOf returns the lateral role of a position.
func RoleOf(p players.Position) Role {
	return roleByPosition[p]
}
