package lineup

import "club-lineup-service/internal/domain/players"

// Available returns the players eligible for automatic slot filling:
// nobody injured, ill, or serving a suspension. The roster itself is left
// untouched and manual placements are not subject to this filter.
func Available(roster []players.Player) []players.Player {
	out := make([]players.Player, 0, len(roster))
	for _, p := range roster {
		if p.Available() {
			out = append(out, p)
		}
	}
	return out
}
