package lineup

import (
	"sort"

	"club-lineup-service/internal/domain/players"
	"club-lineup-service/internal/formation"
)

// Placement is one user-made player-to-slot override, typically the result
// of a drag onto the lineup board. It is advisory: a valid slot index is
// honored even when the player's own position does not suit the slot.
type Placement struct {
	PlayerID string         `json:"playerId"`
	Line     formation.Line `json:"line"`
	Slot     int            `json:"slot"`
}

// Options selects per-consumer assignment behavior.
type Options struct {
	// ShowEmptySlots keeps unfilled slots in the result so a board can
	// render drop targets. When false each line is a dense list of
	// whatever players were found.
	ShowEmptySlots bool

	// BackfillAnyLine fills slots left empty after line filling from the
	// whole remaining roster, ignoring line membership. Lossy under
	// roster scarcity (it can push a keeper outfield), so consumers opt
	// in and the result is flagged when it fires.
	BackfillAnyLine bool

	// EvictUnavailableOverrides drops manual placements whose player is
	// currently injured, ill, or suspended. Off by default: a manual
	// placement reflects user intent and stays until the next edit.
	EvictUnavailableOverrides bool
}

// Slot is one resolved board position. Player is nil when the slot is empty.
type Slot struct {
	Index  int             `json:"index"`
	Role   formation.Role  `json:"role"`
	Player *players.Player `json:"player,omitempty"`
}

// Flags reports non-fatal conditions observed while assigning. They are
// structural signals, not errors; degraded lineups are still valid results.
type Flags struct {
	FormationFallback bool     `json:"formationFallback,omitempty"`
	RejectedOverrides []string `json:"rejectedOverrides,omitempty"`
	EvictedOverrides  []string `json:"evictedOverrides,omitempty"`
	BackfillUsed      bool     `json:"backfillUsed,omitempty"`
	DuplicatesDropped []string `json:"duplicatesDropped,omitempty"`
}

// Assignment is a completed slot-to-player mapping for one formation.
type Assignment struct {
	Formation  string `json:"formation"`
	Goalkeeper []Slot `json:"goalkeeper"`
	Defense    []Slot `json:"defense"`
	Midfield   []Slot `json:"midfield"`
	Attack     []Slot `json:"attack"`
	Flags      Flags  `json:"flags"`
}

// LineSlots returns the assignment's slots for the given line.
func (a Assignment) LineSlots(line formation.Line) []Slot {
	switch line {
	case formation.LineGoalkeeper:
		return a.Goalkeeper
	case formation.LineDefense:
		return a.Defense
	case formation.LineMidfield:
		return a.Midfield
	case formation.LineAttack:
		return a.Attack
	}
	return nil
}

// PlayerIDs returns the ids of every placed player, line by line.
func (a Assignment) PlayerIDs() []string {
	var ids []string
	for _, line := range formation.Lines() {
		for _, s := range a.LineSlots(line) {
			if s.Player != nil {
				ids = append(ids, s.Player.ID)
			}
		}
	}
	return ids
}

type placedAt struct {
	line formation.Line
	slot int
}

// Assign maps a roster onto the slots of the named formation.
//
// Manual overrides are seeded first (in order, last write wins per player
// and per slot, out-of-range placements rejected), then each line is filled
// from the available pool: a tier pass honoring every slot's role-candidate
// preferences, then a fallback pass that degrades to plain line membership.
// The two passes keep reserved slots (such as the 4-3-3 central striker)
// from losing their preferred player to an earlier slot's fallback.
//
// The result is deterministic for identical inputs: candidates are ranked
// by rating descending with roster order breaking ties.
func Assign(roster []players.Player, formationID string, overrides []Placement, opts Options) Assignment {
	tmpl, known := formation.TemplateFor(formationID)
	flags := Flags{FormationFallback: !known}

	byID := make(map[string]players.Player, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}
	availableIDs := make(map[string]bool)
	for _, p := range Available(roster) {
		availableIDs[p.ID] = true
	}

	// Seed manual overrides across all lines before any automatic filling.
	seeded := make(map[formation.Line]map[int]string)
	playerAt := make(map[string]placedAt)
	for _, ov := range overrides {
		if _, ok := byID[ov.PlayerID]; !ok {
			flags.RejectedOverrides = append(flags.RejectedOverrides, ov.PlayerID)
			continue
		}
		if !ov.Line.Valid() || ov.Slot < 0 || ov.Slot >= tmpl.LineCount(ov.Line) {
			flags.RejectedOverrides = append(flags.RejectedOverrides, ov.PlayerID)
			continue
		}
		if opts.EvictUnavailableOverrides && !availableIDs[ov.PlayerID] {
			flags.EvictedOverrides = append(flags.EvictedOverrides, ov.PlayerID)
			continue
		}
		if prev, ok := playerAt[ov.PlayerID]; ok {
			delete(seeded[prev.line], prev.slot)
		}
		if seeded[ov.Line] == nil {
			seeded[ov.Line] = make(map[int]string)
		}
		if evicted := seeded[ov.Line][ov.Slot]; evicted != "" {
			delete(playerAt, evicted)
		}
		seeded[ov.Line][ov.Slot] = ov.PlayerID
		playerAt[ov.PlayerID] = placedAt{line: ov.Line, slot: ov.Slot}
	}

	used := make(map[string]bool, len(playerAt))
	for id := range playerAt {
		used[id] = true
	}

	// Remaining pool: available, unplaced, ranked by rating descending.
	// The stable sort keeps roster order as the tie-break.
	pool := make([]players.Player, 0, len(roster))
	for _, p := range Available(roster) {
		if !used[p.ID] {
			pool = append(pool, p)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Rating > pool[j].Rating })

	take := func(match func(players.Player) bool) (players.Player, bool) {
		for i, p := range pool {
			if match(p) {
				pool = append(pool[:i:i], pool[i+1:]...)
				return p, true
			}
		}
		return players.Player{}, false
	}

	result := Assignment{Formation: tmpl.ID}
	lineSlots := make(map[formation.Line][]Slot)

	for _, line := range formation.Lines() {
		specs := tmpl.LineSlots(line)
		slots := make([]Slot, len(specs))
		for i, spec := range specs {
			slots[i] = Slot{Index: spec.Index, Role: spec.Role}
			if id := seeded[line][spec.Index]; id != "" {
				p := byID[id]
				slots[i].Player = &p
			}
		}

		order := append([]formation.SlotSpec(nil), specs...)
		sort.Slice(order, func(i, j int) bool { return order[i].FillOrder < order[j].FillOrder })

		// Tier pass: honor every slot's role preferences first.
		for _, spec := range order {
			if slots[spec.Index].Player != nil {
				continue
			}
			for _, tier := range spec.Tiers {
				p, ok := take(func(c players.Player) bool { return tierContains(tier, c.Position) })
				if ok {
					cp := p
					slots[spec.Index].Player = &cp
					break
				}
			}
		}

		// Fallback pass: role preference degrades to line membership so a
		// slot never stays open while a line-eligible player remains.
		for _, spec := range order {
			if slots[spec.Index].Player != nil {
				continue
			}
			p, ok := take(func(c players.Player) bool { return formation.LineOf(c.Position) == line })
			if ok {
				cp := p
				slots[spec.Index].Player = &cp
			}
		}

		lineSlots[line] = slots
	}

	if opts.BackfillAnyLine {
		for _, line := range formation.Lines() {
			if line == formation.LineGoalkeeper {
				continue
			}
			slots := lineSlots[line]
			for i := range slots {
				if slots[i].Player != nil {
					continue
				}
				p, ok := take(func(players.Player) bool { return true })
				if !ok {
					break
				}
				cp := p
				slots[i].Player = &cp
				flags.BackfillUsed = true
			}
		}
	}

	// Final cross-line duplicate guard. The used-set makes duplicates
	// impossible by construction; the walk is the explicit assertion. A
	// player's keeper slot is their override placement when one exists,
	// otherwise their first occurrence in line order.
	keep := make(map[string]placedAt)
	for _, line := range formation.Lines() {
		for _, s := range lineSlots[line] {
			if s.Player == nil {
				continue
			}
			if at, ok := playerAt[s.Player.ID]; ok {
				keep[s.Player.ID] = at
			} else if _, ok := keep[s.Player.ID]; !ok {
				keep[s.Player.ID] = placedAt{line: line, slot: s.Index}
			}
		}
	}
	for _, line := range formation.Lines() {
		slots := lineSlots[line]
		for i := range slots {
			p := slots[i].Player
			if p == nil {
				continue
			}
			if at := keep[p.ID]; at.line != line || at.slot != slots[i].Index {
				flags.DuplicatesDropped = append(flags.DuplicatesDropped, p.ID)
				slots[i].Player = nil
			}
		}
	}

	if !opts.ShowEmptySlots {
		for line, slots := range lineSlots {
			lineSlots[line] = compact(slots)
		}
	}

	result.Goalkeeper = lineSlots[formation.LineGoalkeeper]
	result.Defense = lineSlots[formation.LineDefense]
	result.Midfield = lineSlots[formation.LineMidfield]
	result.Attack = lineSlots[formation.LineAttack]
	result.Flags = flags
	return result
}

func tierContains(tier formation.Tier, pos players.Position) bool {
	for _, p := range tier {
		if p == pos {
			return true
		}
	}
	return false
}

func compact(slots []Slot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Player != nil {
			out = append(out, s)
		}
	}
	return out
}
