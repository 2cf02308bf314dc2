package squads

import "club-lineup-service/internal/domain/squads"

// Store defines the contract for persisting and retrieving squads.
type Store interface {
	ListSquads() []squads.Squad
	GetSquad(id string) (squads.Squad, bool)
	SetSquads([]squads.Squad) error
}

// Service coordinates squad operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Squads returns the current set of squads.
func (s *Service) Squads() []squads.Squad {
	return s.store.ListSquads()
}

// SquadByID returns a single squad if present.
func (s *Service) SquadByID(id string) (squads.Squad, bool) {
	return s.store.GetSquad(id)
}

// ReplaceSquads swaps the stored squads with a new snapshot.
func (s *Service) ReplaceSquads(items []squads.Squad) error {
	return s.store.SetSquads(items)
}
