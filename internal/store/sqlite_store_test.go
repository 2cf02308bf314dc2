package store

import (
	"path/filepath"
	"testing"

	"club-lineup-service/internal/domain/players"
	"club-lineup-service/internal/domain/squads"
	"club-lineup-service/internal/testutil"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "squads.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreSetAndGet(t *testing.T) {
	s := newTestSQLiteStore(t)

	squad := testutil.FullSquad("sq-1", "4-3-3")
	squad.Players[2] = testutil.Injured(squad.Players[2], "knee")
	squad.Players[3] = testutil.Suspended(squad.Players[3], 2)

	if err := s.SetSquads([]squads.Squad{squad}); err != nil {
		t.Fatalf("SetSquads: %v", err)
	}

	got, ok := s.GetSquad("sq-1")
	if !ok {
		t.Fatalf("expected to find squad sq-1")
	}
	if got.Name != squad.Name || got.Formation != "4-3-3" {
		t.Fatalf("unexpected squad %+v", got)
	}
	if len(got.Players) != len(squad.Players) {
		t.Fatalf("expected %d players, got %d", len(squad.Players), len(got.Players))
	}
	if got.Players[2].Injury == nil || *got.Players[2].Injury != "knee" {
		t.Fatalf("expected injury to round-trip, got %+v", got.Players[2])
	}
	if got.Players[3].SuspensionGames != 2 {
		t.Fatalf("expected suspension to round-trip, got %d", got.Players[3].SuspensionGames)
	}
}

func TestSQLiteStorePreservesRosterOrder(t *testing.T) {
	s := newTestSQLiteStore(t)

	// Same rating throughout so only stored order distinguishes them.
	squad := testutil.SampleSquad("sq-1", "4-3-3",
		testutil.SamplePlayer("z", players.Striker, 70),
		testutil.SamplePlayer("a", players.Striker, 70),
		testutil.SamplePlayer("m", players.Striker, 70),
	)
	if err := s.SetSquads([]squads.Squad{squad}); err != nil {
		t.Fatalf("SetSquads: %v", err)
	}

	got, _ := s.GetSquad("sq-1")
	want := []string{"z", "a", "m"}
	for i, id := range want {
		if got.Players[i].ID != id {
			t.Fatalf("expected roster order %v, got %v", want, got.Players)
		}
	}
}

func TestSQLiteStoreSetReplacesSnapshot(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.SetSquads([]squads.Squad{testutil.FullSquad("old", "4-3-3")}); err != nil {
		t.Fatalf("SetSquads: %v", err)
	}
	if err := s.SetSquads([]squads.Squad{testutil.FullSquad("new", "4-4-2")}); err != nil {
		t.Fatalf("SetSquads: %v", err)
	}

	if _, ok := s.GetSquad("old"); ok {
		t.Fatalf("expected old squad gone after replace")
	}
	list := s.ListSquads()
	if len(list) != 1 || list[0].ID != "new" {
		t.Fatalf("unexpected snapshot %v", list)
	}
}

func TestSQLiteStoreGetNotFound(t *testing.T) {
	s := newTestSQLiteStore(t)
	if _, ok := s.GetSquad("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
}

func TestSQLiteStoreReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "squads.db")

	first, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := first.SetSquads([]squads.Squad{testutil.FullSquad("sq-1", "4-3-3")}); err != nil {
		t.Fatalf("SetSquads: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	got, ok := second.GetSquad("sq-1")
	if !ok || len(got.Players) != 18 {
		t.Fatalf("expected persisted squad after reopen, got %+v ok=%v", got, ok)
	}
}
