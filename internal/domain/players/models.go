package players

// Position is the closed set of playing positions a player can hold.
type Position string

const (
	Goalkeeper Position = "GK"

	LeftBack      Position = "LB"
	LeftWingBack  Position = "LWB"
	CentreBack    Position = "CB"
	RightBack     Position = "RB"
	RightWingBack Position = "RWB"

	DefensiveMidfielder Position = "CDM"
	CentreMidfielder    Position = "CM"
	AttackingMidfielder Position = "CAM"
	LeftMidfielder      Position = "LM"
	RightMidfielder     Position = "RM"

	LeftWinger    Position = "LW"
	RightWinger   Position = "RW"
	Striker       Position = "ST"
	CentreForward Position = "CF"
)

// All lists every valid position. Order matters only for iteration stability.
var All = []Position{
	Goalkeeper,
	LeftBack, LeftWingBack, CentreBack, RightBack, RightWingBack,
	DefensiveMidfielder, CentreMidfielder, AttackingMidfielder, LeftMidfielder, RightMidfielder,
	LeftWinger, RightWinger, Striker, CentreForward,
}

// Valid reports whether p is one of the defined positions.
func (p Position) Valid() bool {
	for _, pos := range All {
		if p == pos {
			return true
		}
	}
	return false
}

// Player is the normalized player shape exchanged with the roster subsystem.
// It is immutable for the duration of one assignment computation.
type Player struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Position        Position `json:"position"`
	Rating          int      `json:"rating"`
	Injury          *string  `json:"injury,omitempty"`
	Illness         *string  `json:"illness,omitempty"`
	SuspensionGames int      `json:"suspensionGames"`
}

// Available reports whether the player may be picked by automatic slot filling.
// Manual placements are not subject to this check.
func (p Player) Available() bool {
	return p.Injury == nil && p.Illness == nil && p.SuspensionGames == 0
}
