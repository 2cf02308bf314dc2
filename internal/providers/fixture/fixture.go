package fixture

import (
	"context"

	"club-lineup-service/internal/domain/players"
	"club-lineup-service/internal/domain/squads"
)

// Provider returns a static pair of squads useful for local runs and tests.
// Output is deterministic: same squads, same roster order, every call.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return "fixture"
}

func str(s string) *string { return &s }

// FetchSquads returns a deterministic set of squads: a full first-team
// roster with a few unavailable players, and a thinner opponent roster.
func (p *Provider) FetchSquads(ctx context.Context) ([]squads.Squad, error) {
	_ = ctx

	home := squads.Squad{
		ID:        "ath-rovers",
		Name:      "Athletic Rovers",
		Formation: "4-3-3",
		Players: []players.Player{
			{ID: "ath-01", Name: "Emil Varga", Position: players.Goalkeeper, Rating: 84},
			{ID: "ath-02", Name: "Dario Kunz", Position: players.Goalkeeper, Rating: 72},
			{ID: "ath-03", Name: "Theo Marchetti", Position: players.LeftBack, Rating: 79},
			{ID: "ath-04", Name: "Iker Balboa", Position: players.CentreBack, Rating: 85},
			{ID: "ath-05", Name: "Ruben Castell", Position: players.CentreBack, Rating: 82},
			{ID: "ath-06", Name: "Janik Weiss", Position: players.CentreBack, Rating: 77, Injury: str("hamstring strain")},
			{ID: "ath-07", Name: "Louis Ferrand", Position: players.RightBack, Rating: 80},
			{ID: "ath-08", Name: "Mats Holvik", Position: players.RightWingBack, Rating: 74},
			{ID: "ath-09", Name: "Sandro Beric", Position: players.DefensiveMidfielder, Rating: 83},
			{ID: "ath-10", Name: "Noah Lindqvist", Position: players.CentreMidfielder, Rating: 81},
			{ID: "ath-11", Name: "Pavel Moreau", Position: players.AttackingMidfielder, Rating: 86},
			{ID: "ath-12", Name: "Cole Brennan", Position: players.AttackingMidfielder, Rating: 78},
			{ID: "ath-13", Name: "Luca Santoro", Position: players.LeftMidfielder, Rating: 75},
			{ID: "ath-14", Name: "Marek Dvorak", Position: players.RightMidfielder, Rating: 76, SuspensionGames: 2},
			{ID: "ath-15", Name: "Yann Okafor", Position: players.LeftWinger, Rating: 88},
			{ID: "ath-16", Name: "Bruno Cavalli", Position: players.RightWinger, Rating: 84},
			{ID: "ath-17", Name: "Oscar Nyman", Position: players.Striker, Rating: 87},
			{ID: "ath-18", Name: "Felix Duarte", Position: players.CentreForward, Rating: 80},
			{ID: "ath-19", Name: "Adrien Sole", Position: players.Striker, Rating: 73, Illness: str("flu")},
		},
	}

	away := squads.Squad{
		ID:        "fc-meridian",
		Name:      "FC Meridian",
		Formation: "4-4-2",
		Players: []players.Player{
			{ID: "mer-01", Name: "Viktor Hansen", Position: players.Goalkeeper, Rating: 78},
			{ID: "mer-02", Name: "Milan Petrov", Position: players.LeftBack, Rating: 74},
			{ID: "mer-03", Name: "Jonas Eriksen", Position: players.CentreBack, Rating: 79},
			{ID: "mer-04", Name: "Andre Fontaine", Position: players.CentreBack, Rating: 76},
			{ID: "mer-05", Name: "Tom Keller", Position: players.RightBack, Rating: 75},
			{ID: "mer-06", Name: "Ilya Sokolov", Position: players.DefensiveMidfielder, Rating: 77},
			{ID: "mer-07", Name: "Dani Vidal", Position: players.CentreMidfielder, Rating: 80},
			{ID: "mer-08", Name: "Sam Whitfield", Position: players.LeftMidfielder, Rating: 73},
			{ID: "mer-09", Name: "Rico Beltran", Position: players.RightMidfielder, Rating: 74},
			{ID: "mer-10", Name: "Aron Gudmund", Position: players.Striker, Rating: 82},
			{ID: "mer-11", Name: "Leon Baptiste", Position: players.Striker, Rating: 78},
			{ID: "mer-12", Name: "Nils Overgaard", Position: players.CentreBack, Rating: 70},
			{ID: "mer-13", Name: "Kofi Mensah", Position: players.RightWinger, Rating: 76},
		},
	}

	return []squads.Squad{home, away}, nil
}
