package formation

import (
	"strings"
	"testing"
)

func TestRegisteredTemplatesValidate(t *testing.T) {
	for id, tmpl := range templates {
		if err := tmpl.validate(); err != nil {
			t.Fatalf("template %s failed validation: %v", id, err)
		}
	}
}

func TestTemplatesMatchTheirIdentifiers(t *testing.T) {
	for id, tmpl := range templates {
		defense, midfield, forward, err := ParseCounts(id)
		if err != nil {
			t.Fatalf("ParseCounts(%s): %v", id, err)
		}
		if tmpl.DefenseCount != defense || tmpl.MidfieldCount != midfield || tmpl.ForwardCount != forward {
			t.Fatalf("template %s counts (%d,%d,%d) disagree with identifier (%d,%d,%d)",
				id, tmpl.DefenseCount, tmpl.MidfieldCount, tmpl.ForwardCount, defense, midfield, forward)
		}
	}
}

func TestTemplatesFieldElevenPlayers(t *testing.T) {
	for id, tmpl := range templates {
		if got := len(tmpl.Slots); got != 11 {
			t.Fatalf("template %s has %d slots, want 11", id, got)
		}
	}
}

func TestFillOrderIsAPermutationPerLine(t *testing.T) {
	for id, tmpl := range templates {
		for _, line := range Lines() {
			slots := tmpl.LineSlots(line)
			seen := make(map[int]bool, len(slots))
			for _, s := range slots {
				if s.FillOrder < 0 || s.FillOrder >= len(slots) || seen[s.FillOrder] {
					t.Fatalf("template %s line %s: fill order %d repeats or is out of range", id, line, s.FillOrder)
				}
				seen[s.FillOrder] = true
			}
		}
	}
}

func TestParseCounts(t *testing.T) {
	cases := []struct {
		id       string
		defense  int
		midfield int
		forward  int
	}{
		{"4-3-3", 4, 3, 3},
		{"5-4-1", 5, 4, 1},
		{"4-2-3-1", 4, 5, 1},
		{"3-4-2-1", 3, 6, 1},
	}
	for _, tc := range cases {
		defense, midfield, forward, err := ParseCounts(tc.id)
		if err != nil {
			t.Fatalf("ParseCounts(%s): %v", tc.id, err)
		}
		if defense != tc.defense || midfield != tc.midfield || forward != tc.forward {
			t.Fatalf("ParseCounts(%s) = (%d,%d,%d), want (%d,%d,%d)",
				tc.id, defense, midfield, forward, tc.defense, tc.midfield, tc.forward)
		}
	}
}

func TestParseCountsRejectsMalformed(t *testing.T) {
	for _, id := range []string{"", "4-3", "4-3-3-2-1", "4-x-3", "4--3", "0-5-5", "4-3-3 "} {
		if _, _, _, err := ParseCounts(id); err == nil {
			t.Fatalf("expected ParseCounts(%q) to fail", id)
		}
	}
}

func TestTemplateForUnknownFallsBack(t *testing.T) {
	tmpl, known := TemplateFor("9-9-9")
	if known {
		t.Fatalf("expected 9-9-9 to be unknown")
	}
	if tmpl.ID != DefaultFormation {
		t.Fatalf("expected fallback to %s, got %s", DefaultFormation, tmpl.ID)
	}
}

func TestTemplateForKnown(t *testing.T) {
	tmpl, known := TemplateFor("4-4-2")
	if !known {
		t.Fatalf("expected 4-4-2 to be known")
	}
	if tmpl.ID != "4-4-2" {
		t.Fatalf("unexpected template id %s", tmpl.ID)
	}
}

func TestKnownIsSortedAndComplete(t *testing.T) {
	ids := Known()
	if len(ids) != len(templates) {
		t.Fatalf("expected %d identifiers, got %d", len(templates), len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Fatalf("identifiers not sorted at %d: %v", i, ids)
		}
	}
	for _, id := range ids {
		if _, ok := templates[id]; !ok {
			t.Fatalf("Known returned unregistered id %s", id)
		}
	}
}

func TestLineSlotsOrderedByIndex(t *testing.T) {
	tmpl, _ := TemplateFor("3-5-2")
	slots := tmpl.LineSlots(LineMidfield)
	if len(slots) != 5 {
		t.Fatalf("expected 5 midfield slots, got %d", len(slots))
	}
	for i, s := range slots {
		if s.Index != i {
			t.Fatalf("slot %d has index %d", i, s.Index)
		}
	}
}

func TestLineCountUnknownLineIsZero(t *testing.T) {
	tmpl, _ := TemplateFor(DefaultFormation)
	if got := tmpl.LineCount(Line("BENCH")); got != 0 {
		t.Fatalf("expected 0 for unknown line, got %d", got)
	}
}

func TestTriangleMidFillsFrontRowFirst(t *testing.T) {
	tmpl, _ := TemplateFor("4-3-3")
	byIndex := make(map[int]SlotSpec)
	for _, s := range tmpl.LineSlots(LineMidfield) {
		byIndex[s.Index] = s
	}
	// Holding mid sits at the visual centre but fills last.
	if byIndex[1].FillOrder != 2 {
		t.Fatalf("expected holding mid to fill last, got order %d", byIndex[1].FillOrder)
	}
	if byIndex[0].FillOrder != 0 || byIndex[2].FillOrder != 1 {
		t.Fatalf("unexpected fill order for advanced mids: %d, %d",
			byIndex[0].FillOrder, byIndex[2].FillOrder)
	}
}

func TestKnownContainsNineFormations(t *testing.T) {
	if got := len(Known()); got != 9 {
		t.Fatalf("expected 9 registered formations, got %d", got)
	}
}
