package players

import "testing"

func TestPositionValid(t *testing.T) {
	for _, pos := range All {
		if !pos.Valid() {
			t.Fatalf("expected %s to be valid", pos)
		}
	}
	if Position("SWEEPER").Valid() {
		t.Fatalf("expected unknown position to be invalid")
	}
}

func TestAllCoversFifteenPositions(t *testing.T) {
	if got := len(All); got != 15 {
		t.Fatalf("expected 15 positions, got %d", got)
	}
	seen := make(map[Position]bool, len(All))
	for _, pos := range All {
		if seen[pos] {
			t.Fatalf("duplicate position %s", pos)
		}
		seen[pos] = true
	}
}

func TestPlayerAvailable(t *testing.T) {
	injury := "knee"
	illness := "flu"

	cases := []struct {
		name   string
		player Player
		want   bool
	}{
		{"healthy", Player{ID: "p1"}, true},
		{"injured", Player{ID: "p2", Injury: &injury}, false},
		{"ill", Player{ID: "p3", Illness: &illness}, false},
		{"suspended", Player{ID: "p4", SuspensionGames: 1}, false},
	}
	for _, tc := range cases {
		if got := tc.player.Available(); got != tc.want {
			t.Fatalf("%s: Available() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
