package lineup

import (
	"testing"

	"club-lineup-service/internal/domain/players"
	"club-lineup-service/internal/testutil"
)

func TestAvailableFiltersUnavailablePlayers(t *testing.T) {
	roster := []players.Player{
		testutil.SamplePlayer("fit", players.Striker, 80),
		testutil.Injured(testutil.SamplePlayer("hurt", players.Striker, 85), "ankle"),
		testutil.Ill(testutil.SamplePlayer("sick", players.CentreBack, 78), "flu"),
		testutil.Suspended(testutil.SamplePlayer("banned", players.CentreMidfielder, 82), 1),
	}

	got := Available(roster)
	if len(got) != 1 || got[0].ID != "fit" {
		t.Fatalf("expected only the fit player, got %v", got)
	}
	if len(roster) != 4 {
		t.Fatalf("expected input roster untouched")
	}
}

func TestAvailableEmptyRoster(t *testing.T) {
	if got := Available(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
