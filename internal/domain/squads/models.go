package squads

import "club-lineup-service/internal/domain/players"

// Squad is the per-team roster snapshot exposed by the service.
// Player order is the roster order and is preserved end to end; the
// assignment engine uses it to break rating ties deterministically.
type Squad struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Formation string           `json:"formation"`
	Players   []players.Player `json:"players"`
}

// ListResponse is the payload returned by /squads.
type ListResponse struct {
	Squads []Squad `json:"squads"`
}
