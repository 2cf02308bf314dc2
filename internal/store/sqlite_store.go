package store

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"

	"club-lineup-service/internal/domain/players"
	"club-lineup-service/internal/domain/squads"
)

// SQLiteStore persists squad snapshots in a SQLite database so rosters
// survive restarts. It satisfies the same contract as MemoryStore.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS squads (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	formation TEXT NOT NULL,
	ord       INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS squad_players (
	id               TEXT NOT NULL,
	squad_id         TEXT NOT NULL REFERENCES squads(id) ON DELETE CASCADE,
	name             TEXT NOT NULL,
	position         TEXT NOT NULL,
	rating           INTEGER NOT NULL,
	injury           TEXT,
	illness          TEXT,
	suspension_games INTEGER NOT NULL DEFAULT 0,
	ord              INTEGER NOT NULL,
	PRIMARY KEY (squad_id, id)
);
`

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListSquads returns every stored squad in snapshot order.
func (s *SQLiteStore) ListSquads() []squads.Squad {
	rows, err := s.db.Query(`SELECT id, name, formation FROM squads ORDER BY ord`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var result []squads.Squad
	for rows.Next() {
		var sq squads.Squad
		if err := rows.Scan(&sq.ID, &sq.Name, &sq.Formation); err != nil {
			return nil
		}
		result = append(result, sq)
	}
	for i := range result {
		result[i].Players = s.loadPlayers(result[i].ID)
	}
	return result
}

// GetSquad retrieves a squad by ID.
func (s *SQLiteStore) GetSquad(id string) (squads.Squad, bool) {
	var sq squads.Squad
	err := s.db.QueryRow(`SELECT id, name, formation FROM squads WHERE id = ?`, id).
		Scan(&sq.ID, &sq.Name, &sq.Formation)
	if err != nil {
		return squads.Squad{}, false
	}
	sq.Players = s.loadPlayers(sq.ID)
	return sq, true
}

// SetSquads replaces the stored snapshot atomically.
func (s *SQLiteStore) SetSquads(items []squads.Squad) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM squad_players`); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM squads`); err != nil {
		return fmt.Errorf("clear squads: %w", err)
	}

	for i, sq := range items {
		if _, err := tx.Exec(
			`INSERT INTO squads (id, name, formation, ord) VALUES (?, ?, ?, ?)`,
			sq.ID, sq.Name, sq.Formation, i,
		); err != nil {
			return fmt.Errorf("insert squad %s: %w", sq.ID, err)
		}
		for j, p := range sq.Players {
			if _, err := tx.Exec(
				`INSERT INTO squad_players (id, squad_id, name, position, rating, injury, illness, suspension_games, ord)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				p.ID, sq.ID, p.Name, string(p.Position), p.Rating, p.Injury, p.Illness, p.SuspensionGames, j,
			); err != nil {
				return fmt.Errorf("insert player %s: %w", p.ID, err)
			}
		}
	}

	return tx.Commit()
}

// loadPlayers returns a squad's roster in stored order, which is the
// original roster order and feeds the engine's deterministic tie-break.
func (s *SQLiteStore) loadPlayers(squadID string) []players.Player {
	rows, err := s.db.Query(
		`SELECT id, name, position, rating, injury, illness, suspension_games
		 FROM squad_players WHERE squad_id = ? ORDER BY ord`, squadID)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var roster []players.Player
	for rows.Next() {
		var p players.Player
		var pos string
		if err := rows.Scan(&p.ID, &p.Name, &pos, &p.Rating, &p.Injury, &p.Illness, &p.SuspensionGames); err != nil {
			return roster
		}
		p.Position = players.Position(pos)
		roster = append(roster, p)
	}
	return roster
}
