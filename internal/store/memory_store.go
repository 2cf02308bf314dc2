package store

import (
	"sync"

	"club-lineup-service/internal/domain/players"
	"club-lineup-service/internal/domain/squads"
)

// MemoryStore keeps a thread-safe snapshot of squads in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	squads map[string]squads.Squad
	order  []string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		squads: make(map[string]squads.Squad),
	}
}

// ListSquads returns a copy of the current squads in insertion order.
func (s *MemoryStore) ListSquads() []squads.Squad {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]squads.Squad, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, copySquad(s.squads[id]))
	}
	return result
}

// GetSquad retrieves a squad by ID.
func (s *MemoryStore) GetSquad(id string) (squads.Squad, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sq, ok := s.squads[id]
	if !ok {
		return squads.Squad{}, false
	}
	return copySquad(sq), true
}

// SetSquads replaces the existing squads with a new snapshot.
func (s *MemoryStore) SetSquads(items []squads.Squad) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.squads = make(map[string]squads.Squad, len(items))
	s.order = make([]string, 0, len(items))
	for _, sq := range items {
		if _, ok := s.squads[sq.ID]; !ok {
			s.order = append(s.order, sq.ID)
		}
		s.squads[sq.ID] = copySquad(sq)
	}
	return nil
}

// copySquad deep-copies the player slice so callers cannot mutate the
// stored snapshot. Roster order is part of the contract: the assignment
// engine breaks rating ties on it.
func copySquad(sq squads.Squad) squads.Squad {
	out := sq
	out.Players = append([]players.Player(nil), sq.Players...)
	return out
}
