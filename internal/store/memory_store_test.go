package store

import (
	"testing"

	"club-lineup-service/internal/domain/squads"
	"club-lineup-service/internal/testutil"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()

	items := []squads.Squad{
		testutil.FullSquad("sq-1", "4-3-3"),
		testutil.FullSquad("sq-2", "4-4-2"),
	}
	if err := s.SetSquads(items); err != nil {
		t.Fatalf("SetSquads: %v", err)
	}

	if got := len(s.ListSquads()); got != 2 {
		t.Fatalf("expected 2 squads, got %d", got)
	}

	sq, ok := s.GetSquad("sq-1")
	if !ok {
		t.Fatalf("expected to find squad sq-1")
	}
	if sq.Formation != "4-3-3" || len(sq.Players) != 18 {
		t.Fatalf("unexpected squad %s with %d players", sq.Formation, len(sq.Players))
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.GetSquad("missing"); ok {
		t.Fatalf("expected missing id to return false")
	}
}

func TestMemoryStoreSetReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	if err := s.SetSquads([]squads.Squad{{ID: "old"}}); err != nil {
		t.Fatalf("SetSquads: %v", err)
	}

	if err := s.SetSquads([]squads.Squad{{ID: "new"}}); err != nil {
		t.Fatalf("SetSquads: %v", err)
	}

	if _, ok := s.GetSquad("old"); ok {
		t.Fatalf("expected old squad to be removed after replace")
	}
	if _, ok := s.GetSquad("new"); !ok {
		t.Fatalf("expected new squad to be present")
	}
}

func TestMemoryStoreListPreservesOrder(t *testing.T) {
	s := NewMemoryStore()
	if err := s.SetSquads([]squads.Squad{{ID: "b"}, {ID: "a"}, {ID: "c"}}); err != nil {
		t.Fatalf("SetSquads: %v", err)
	}

	list := s.ListSquads()
	want := []string{"b", "a", "c"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("expected order %v, got %v", want, list)
		}
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	if err := s.SetSquads([]squads.Squad{testutil.FullSquad("sq-1", "4-3-3")}); err != nil {
		t.Fatalf("SetSquads: %v", err)
	}

	list := s.ListSquads()
	list[0].Players[0].Name = "mutated"

	sq, _ := s.GetSquad("sq-1")
	if sq.Players[0].Name == "mutated" {
		t.Fatalf("expected store to remain unchanged")
	}
}
