package formation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"club-lineup-service/internal/domain/players"
)

// Tier is one preference band of a slot's role-candidate list. Positions in
// the same tier are equally preferred; earlier tiers beat later ones.
type Tier []players.Position

// SlotSpec describes one numbered slot within a formation line.
//
// Index is the visual position on the board (left to right, front row before
// back row where a line splits into rows). FillOrder is the order in which
// automatic filling considers the line's slots; it differs from Index for
// lines where the front row must be staffed before the back row.
type SlotSpec struct {
	Index     int
	Line      Line
	Role      Role
	Tiers     []Tier
	FillOrder int
}

// Template is the static slot layout for a named formation.
type Template struct {
	ID            string
	DefenseCount  int
	MidfieldCount int
	ForwardCount  int
	Slots         []SlotSpec
}

// LineSlots returns the template's slots for a line, ordered by Index.
func (t Template) LineSlots(line Line) []SlotSpec {
	var out []SlotSpec
	for _, s := range t.Slots {
		if s.Line == line {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// LineCount returns how many slots the template has for a line.
func (t Template) LineCount(line Line) int {
	switch line {
	case LineGoalkeeper:
		return 1
	case LineDefense:
		return t.DefenseCount
	case LineMidfield:
		return t.MidfieldCount
	case LineAttack:
		return t.ForwardCount
	}
	return 0
}

// validate checks the structural invariants every template must hold:
// total slot count, unique contiguous indices per line, non-empty tiers.
func (t Template) validate() error {
	want := 1 + t.DefenseCount + t.MidfieldCount + t.ForwardCount
	if len(t.Slots) != want {
		return fmt.Errorf("template %s: %d slots, want %d", t.ID, len(t.Slots), want)
	}
	for _, line := range Lines() {
		slots := t.LineSlots(line)
		if len(slots) != t.LineCount(line) {
			return fmt.Errorf("template %s: line %s has %d slots, want %d", t.ID, line, len(slots), t.LineCount(line))
		}
		for i, s := range slots {
			if s.Index != i {
				return fmt.Errorf("template %s: line %s slot indices not contiguous at %d", t.ID, line, s.Index)
			}
			if len(s.Tiers) == 0 {
				return fmt.Errorf("template %s: line %s slot %d has no tiers", t.ID, line, s.Index)
			}
		}
	}
	return nil
}

// ParseCounts splits a formation identifier into per-line slot counts.
// Three numeric parts map directly to (defense, midfield, forward); four
// parts sum the two middle numbers into one midfield count, the front/back
// grouping of those rows lives in the template slot data instead.
func ParseCounts(id string) (defense, midfield, forward int, err error) {
	parts := strings.Split(id, "-")
	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		n, convErr := strconv.Atoi(part)
		if convErr != nil || n <= 0 {
			return 0, 0, 0, fmt.Errorf("formation %q: bad part %q", id, part)
		}
		nums = append(nums, n)
	}
	switch len(nums) {
	case 3:
		return nums[0], nums[1], nums[2], nil
	case 4:
		return nums[0], nums[1] + nums[2], nums[3], nil
	}
	return 0, 0, 0, fmt.Errorf("formation %q: want 3 or 4 parts, got %d", id, len(nums))
}
