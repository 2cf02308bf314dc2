package providers

import (
	"context"

	"club-lineup-service/internal/domain/squads"
)

// SquadProvider is the in-process boundary to the roster-owning subsystems
// (transfers, pack openings, season development). Implementations return a
// full snapshot per call; availability flags are already resolved upstream.
type SquadProvider interface {
	FetchSquads(ctx context.Context) ([]squads.Squad, error)
}

// Named lets wrappers report the underlying provider's name in logs and
// metrics without unwrapping it.
type Named interface {
	Name() string
}

// NameOf returns the provider's self-reported name or a fallback.
func NameOf(p SquadProvider, fallback string) string {
	if n, ok := p.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fallback
}
