package testutil

import (
	"fmt"

	"club-lineup-service/internal/domain/players"
	"club-lineup-service/internal/domain/squads"
)

// SamplePlayer returns a healthy player fixture with the provided id, position, and rating.
func SamplePlayer(id string, pos players.Position, rating int) players.Player {
	return players.Player{
		ID:       id,
		Name:     "Player " + id,
		Position: pos,
		Rating:   rating,
	}
}

// Injured marks a copy of the player as injured.
func Injured(p players.Player, injury string) players.Player {
	p.Injury = &injury
	return p
}

// Ill marks a copy of the player as ill.
func Ill(p players.Player, illness string) players.Player {
	p.Illness = &illness
	return p
}

// Suspended marks a copy of the player as suspended for the given number of games.
func Suspended(p players.Player, games int) players.Player {
	p.SuspensionGames = games
	return p
}

// SampleSquad builds a squad fixture around the provided players.
func SampleSquad(id, formation string, roster ...players.Player) squads.Squad {
	return squads.Squad{
		ID:        id,
		Name:      "Squad " + id,
		Formation: formation,
		Players:   roster,
	}
}

// FullSquad returns an eighteen-player roster that can staff any registered
// formation: two keepers, six defenders, six midfielders, four forwards.
// Ratings descend with roster order so assignment outcomes are predictable.
func FullSquad(id, formation string) squads.Squad {
	specs := []struct {
		pos    players.Position
		rating int
	}{
		{players.Goalkeeper, 82}, {players.Goalkeeper, 70},
		{players.LeftBack, 80}, {players.CentreBack, 84}, {players.CentreBack, 81},
		{players.RightBack, 79}, {players.CentreBack, 74}, {players.LeftWingBack, 72},
		{players.DefensiveMidfielder, 83}, {players.CentreMidfielder, 85}, {players.AttackingMidfielder, 82},
		{players.CentreMidfielder, 76}, {players.LeftMidfielder, 75}, {players.RightMidfielder, 73},
		{players.LeftWinger, 86}, {players.Striker, 88}, {players.RightWinger, 84}, {players.CentreForward, 77},
	}
	roster := make([]players.Player, 0, len(specs))
	for i, spec := range specs {
		roster = append(roster, SamplePlayer(fmt.Sprintf("%s-%02d", id, i+1), spec.pos, spec.rating))
	}
	return SampleSquad(id, formation, roster...)
}
