package formation

import (
	"sort"

	"club-lineup-service/internal/domain/players"
)

// DefaultFormation is the fallback layout used for unknown identifiers.
const DefaultFormation = "4-3-3"

// position shorthand for the slot tables below
var (
	gk  = players.Goalkeeper
	lb  = players.LeftBack
	lwb = players.LeftWingBack
	cb  = players.CentreBack
	rb  = players.RightBack
	rwb = players.RightWingBack
	cdm = players.DefensiveMidfielder
	cm  = players.CentreMidfielder
	cam = players.AttackingMidfielder
	lm  = players.LeftMidfielder
	rm  = players.RightMidfielder
	lw  = players.LeftWinger
	rw  = players.RightWinger
	st  = players.Striker
	cf  = players.CentreForward
)

func slot(line Line, index, fillOrder int, role Role, tiers ...Tier) SlotSpec {
	return SlotSpec{Index: index, Line: line, Role: role, Tiers: tiers, FillOrder: fillOrder}
}

func keeper() SlotSpec {
	return slot(LineGoalkeeper, 0, 0, RoleCentral, Tier{gk})
}

// backFour is the standard LB-CB-CB-RB defensive line.
func backFour() []SlotSpec {
	return []SlotSpec{
		slot(LineDefense, 0, 0, RoleLeft, Tier{lb, lwb}),
		slot(LineDefense, 1, 1, RoleCentralDefensive, Tier{cb}),
		slot(LineDefense, 2, 2, RoleCentralDefensive, Tier{cb}),
		slot(LineDefense, 3, 3, RoleRight, Tier{rb, rwb}),
	}
}

// backThree prefers centre backs throughout; the outer slots accept full
// backs as a second choice.
func backThree() []SlotSpec {
	return []SlotSpec{
		slot(LineDefense, 0, 0, RoleCentralDefensive, Tier{cb}, Tier{lb, lwb}),
		slot(LineDefense, 1, 1, RoleCentralDefensive, Tier{cb}),
		slot(LineDefense, 2, 2, RoleCentralDefensive, Tier{cb}, Tier{rb, rwb}),
	}
}

// backFive brackets three centre backs with wing backs.
func backFive() []SlotSpec {
	return []SlotSpec{
		slot(LineDefense, 0, 0, RoleLeft, Tier{lwb, lb}),
		slot(LineDefense, 1, 1, RoleCentralDefensive, Tier{cb}),
		slot(LineDefense, 2, 2, RoleCentralDefensive, Tier{cb}),
		slot(LineDefense, 3, 3, RoleCentralDefensive, Tier{cb}),
		slot(LineDefense, 4, 4, RoleRight, Tier{rwb, rb}),
	}
}

// flatFourMid is the classic LM-CM-CM-RM row. Wide slots fall back to
// out-and-out wingers when the roster lacks a nominal wide midfielder.
func flatFourMid() []SlotSpec {
	return []SlotSpec{
		slot(LineMidfield, 0, 0, RoleLeft, Tier{lm}, Tier{lw}),
		slot(LineMidfield, 1, 1, RoleCentral, Tier{cm}, Tier{cdm, cam}),
		slot(LineMidfield, 2, 2, RoleCentral, Tier{cm}, Tier{cdm, cam}),
		slot(LineMidfield, 3, 3, RoleRight, Tier{rm}, Tier{rw}),
	}
}

// triangleMid places the defensive midfielder in the visual centre (index 1)
// behind two advanced central mids. The front row fills before the back row,
// so the fill order is 0, 2, then 1.
func triangleMid() []SlotSpec {
	return []SlotSpec{
		slot(LineMidfield, 0, 0, RoleCentralAttacking, Tier{cam}, Tier{cm}),
		slot(LineMidfield, 1, 2, RoleCentralDefensive, Tier{cdm}, Tier{cm}),
		slot(LineMidfield, 2, 1, RoleCentralAttacking, Tier{cam}, Tier{cm}),
	}
}

// frontThree is the winger-striker-winger attack. The central slot is
// reserved for out-and-out strikers; wingers reach it only through the
// line-membership fallback once no striker remains.
func frontThree() []SlotSpec {
	return []SlotSpec{
		slot(LineAttack, 0, 0, RoleLeft, Tier{lw}, Tier{lm}),
		slot(LineAttack, 1, 1, RoleCentral, Tier{st, cf}),
		slot(LineAttack, 2, 2, RoleRight, Tier{rw}, Tier{rm}),
	}
}

func frontTwo() []SlotSpec {
	return []SlotSpec{
		slot(LineAttack, 0, 0, RoleCentral, Tier{st, cf}),
		slot(LineAttack, 1, 1, RoleCentral, Tier{st, cf}),
	}
}

func loneStriker() []SlotSpec {
	return []SlotSpec{
		slot(LineAttack, 0, 0, RoleCentral, Tier{st, cf}),
	}
}

func build(id string, defense, midfield, forward []SlotSpec) Template {
	slots := []SlotSpec{keeper()}
	slots = append(slots, defense...)
	slots = append(slots, midfield...)
	slots = append(slots, forward...)
	return Template{
		ID:            id,
		DefenseCount:  len(defense),
		MidfieldCount: len(midfield),
		ForwardCount:  len(forward),
		Slots:         slots,
	}
}

var templates = map[string]Template{
	"4-3-3": build("4-3-3", backFour(), triangleMid(), frontThree()),
	"4-4-2": build("4-4-2", backFour(), flatFourMid(), frontTwo()),
	"3-5-2": build("3-5-2", backThree(),
		// Wide/deep/central/deep/wide: the advanced central mid fills
		// first, then the wide attacking mids, then the two holders.
		[]SlotSpec{
			slot(LineMidfield, 0, 1, RoleLeft, Tier{lm}, Tier{lw}),
			slot(LineMidfield, 1, 3, RoleCentralDefensive, Tier{cdm}, Tier{cm}),
			slot(LineMidfield, 2, 0, RoleCentralAttacking, Tier{cam}, Tier{cm}),
			slot(LineMidfield, 3, 4, RoleCentralDefensive, Tier{cdm}, Tier{cm}),
			slot(LineMidfield, 4, 2, RoleRight, Tier{rm}, Tier{rw}),
		},
		frontTwo()),
	"4-2-3-1": build("4-2-3-1", backFour(),
		// Attacking three on the front row (indices 0-2), double pivot behind.
		[]SlotSpec{
			slot(LineMidfield, 0, 0, RoleLeft, Tier{lm}, Tier{lw}),
			slot(LineMidfield, 1, 1, RoleCentralAttacking, Tier{cam}, Tier{cm}),
			slot(LineMidfield, 2, 2, RoleRight, Tier{rm}, Tier{rw}),
			slot(LineMidfield, 3, 3, RoleCentralDefensive, Tier{cdm}, Tier{cm}),
			slot(LineMidfield, 4, 4, RoleCentralDefensive, Tier{cdm}, Tier{cm}),
		},
		loneStriker()),
	"4-1-4-1": build("4-1-4-1", backFour(),
		// Four-man front row, lone holder behind it.
		[]SlotSpec{
			slot(LineMidfield, 0, 0, RoleLeft, Tier{lm}, Tier{lw}),
			slot(LineMidfield, 1, 1, RoleCentral, Tier{cm}, Tier{cam}),
			slot(LineMidfield, 2, 2, RoleCentral, Tier{cm}, Tier{cam}),
			slot(LineMidfield, 3, 3, RoleRight, Tier{rm}, Tier{rw}),
			slot(LineMidfield, 4, 4, RoleCentralDefensive, Tier{cdm}, Tier{cm}),
		},
		loneStriker()),
	"5-4-1": build("5-4-1", backFive(), flatFourMid(), loneStriker()),
	"3-4-3": build("3-4-3", backThree(), flatFourMid(), frontThree()),
	"3-4-2-1": build("3-4-2-1", backThree(),
		// Two attacking mids on the front row, flat four behind them.
		[]SlotSpec{
			slot(LineMidfield, 0, 0, RoleCentralAttacking, Tier{cam}, Tier{cm}),
			slot(LineMidfield, 1, 1, RoleCentralAttacking, Tier{cam}, Tier{cm}),
			slot(LineMidfield, 2, 2, RoleLeft, Tier{lm}, Tier{lw}),
			slot(LineMidfield, 3, 3, RoleCentral, Tier{cm}, Tier{cdm}),
			slot(LineMidfield, 4, 4, RoleCentral, Tier{cm}, Tier{cdm}),
			slot(LineMidfield, 5, 5, RoleRight, Tier{rm}, Tier{rw}),
		},
		loneStriker()),
	"5-3-2": build("5-3-2", backFive(), triangleMid(), frontTwo()),
}

// TemplateFor looks up the slot layout for a formation identifier. Unknown
// identifiers return the default 4-3-3 template and false so callers can
// surface the fallback; the lookup itself never fails.
func TemplateFor(id string) (Template, bool) {
	if t, ok := templates[id]; ok {
		return t, true
	}
	return templates[DefaultFormation], false
}

// Known returns the registered formation identifiers in sorted order.
func Known() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
