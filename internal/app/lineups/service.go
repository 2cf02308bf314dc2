package lineups

import (
	"errors"
	"log/slog"
	"time"

	"club-lineup-service/internal/domain/players"
	"club-lineup-service/internal/domain/squads"
	"club-lineup-service/internal/formation"
	"club-lineup-service/internal/lineup"
	"club-lineup-service/internal/logging"
	"club-lineup-service/internal/metrics"
	"club-lineup-service/internal/tactics"
)

// The consuming views. Every one of them runs the same assignment engine;
// they differ only in option flags and in whether session overrides apply.
const (
	ViewBoard    = "board"
	ViewPreMatch = "prematch"
	ViewPreview  = "preview"
	ViewOpponent = "opponent"
)

// ErrSquadNotFound reports an unknown squad id.
var ErrSquadNotFound = errors.New("squad not found")

// SquadSource supplies roster snapshots.
type SquadSource interface {
	SquadByID(id string) (squads.Squad, bool)
}

// SessionSource supplies the lineup-board state for a squad.
type SessionSource interface {
	Session(squadID string) tactics.Session
}

// Service computes the lineup views consumed by the UI and by match
// simulation. It owns no state of its own; every call recomputes the
// assignment from the current roster, formation, and session.
type Service struct {
	squads   SquadSource
	sessions SessionSource
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewService constructs the view service.
func NewService(squadSource SquadSource, sessions SessionSource, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		squads:   squadSource,
		sessions: sessions,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Board is the interactive lineup-editing view: every slot present (empty
// ones render as drop targets), session overrides applied, bench listed.
type Board struct {
	SquadID    string            `json:"squadId"`
	Formation  string            `json:"formation"`
	Assignment lineup.Assignment `json:"assignment"`
	Bench      []players.Player  `json:"bench"`
}

// PreMatch is the match-simulation seed payload: a dense Starting XI plus
// line ratings. Unavailable manual placements are evicted here; an injured
// player cannot take the pitch no matter what the board says.
type PreMatch struct {
	SquadID    string            `json:"squadId"`
	Formation  string            `json:"formation"`
	StartingXI lineup.Assignment `json:"startingXI"`
	Ratings    lineup.Ratings    `json:"ratings"`
}

// Preview is the team-selection view: a what-if board for any formation,
// ignoring session state.
type Preview struct {
	SquadID    string            `json:"squadId"`
	Formation  string            `json:"formation"`
	Assignment lineup.Assignment `json:"assignment"`
	Ratings    lineup.Ratings    `json:"ratings"`
}

// Opponent is the scouting view of another club: automatic fill only.
type Opponent struct {
	SquadID    string            `json:"squadId"`
	SquadName  string            `json:"squadName"`
	Formation  string            `json:"formation"`
	Assignment lineup.Assignment `json:"assignment"`
	Ratings    lineup.Ratings    `json:"ratings"`
}

// Board computes the interactive lineup board. formationID may be empty, in
// which case the session's formation (or the squad default) is used.
func (s *Service) Board(squadID, formationID string) (Board, error) {
	squad, ok := s.squads.SquadByID(squadID)
	if !ok {
		return Board{}, ErrSquadNotFound
	}
	session := s.session(squadID)
	id := firstNonEmpty(formationID, session.Formation, squad.Formation)

	assignment := s.assign(ViewBoard, squad, id, session.Placements, lineup.Options{
		ShowEmptySlots: true,
	})

	return Board{
		SquadID:    squadID,
		Formation:  assignment.Formation,
		Assignment: assignment,
		Bench:      bench(squad.Players, assignment),
	}, nil
}

// PreMatch computes the Starting XI handed to match simulation.
func (s *Service) PreMatch(squadID string) (PreMatch, error) {
	squad, ok := s.squads.SquadByID(squadID)
	if !ok {
		return PreMatch{}, ErrSquadNotFound
	}
	session := s.session(squadID)
	id := firstNonEmpty(session.Formation, squad.Formation)

	assignment := s.assign(ViewPreMatch, squad, id, session.Placements, lineup.Options{
		BackfillAnyLine:           true,
		EvictUnavailableOverrides: true,
	})

	return PreMatch{
		SquadID:    squadID,
		Formation:  assignment.Formation,
		StartingXI: assignment,
		Ratings:    lineup.Aggregate(assignment),
	}, nil
}

// Preview computes a what-if lineup for an arbitrary formation.
func (s *Service) Preview(squadID, formationID string) (Preview, error) {
	squad, ok := s.squads.SquadByID(squadID)
	if !ok {
		return Preview{}, ErrSquadNotFound
	}
	id := firstNonEmpty(formationID, squad.Formation)

	assignment := s.assign(ViewPreview, squad, id, nil, lineup.Options{
		ShowEmptySlots: true,
	})

	return Preview{
		SquadID:    squadID,
		Formation:  assignment.Formation,
		Assignment: assignment,
		Ratings:    lineup.Aggregate(assignment),
	}, nil
}

// Opponent computes the scouting view of another club's likely XI.
func (s *Service) Opponent(squadID string) (Opponent, error) {
	squad, ok := s.squads.SquadByID(squadID)
	if !ok {
		return Opponent{}, ErrSquadNotFound
	}

	assignment := s.assign(ViewOpponent, squad, squad.Formation, nil, lineup.Options{})

	return Opponent{
		SquadID:    squadID,
		SquadName:  squad.Name,
		Formation:  assignment.Formation,
		Assignment: assignment,
		Ratings:    lineup.Aggregate(assignment),
	}, nil
}

func (s *Service) assign(view string, squad squads.Squad, formationID string, overrides []lineup.Placement, opts lineup.Options) lineup.Assignment {
	start := s.now()
	assignment := lineup.Assign(squad.Players, formationID, overrides, opts)
	duration := s.now().Sub(start)

	flags := assignment.Flags
	s.metrics.RecordAssignment(view, assignment.Formation, duration, flags.FormationFallback, len(flags.RejectedOverrides), flags.BackfillUsed)

	if flags.FormationFallback {
		logging.Warn(s.logger, "unknown formation, using default",
			logging.FieldSquad, squad.ID,
			logging.FieldFormation, formationID,
			logging.FieldView, view,
		)
	}
	if len(flags.RejectedOverrides) > 0 {
		logging.Warn(s.logger, "rejected manual placements",
			logging.FieldSquad, squad.ID,
			logging.FieldView, view,
			logging.FieldCount, len(flags.RejectedOverrides),
		)
	}
	if flags.BackfillUsed {
		logging.Warn(s.logger, "lineup backfilled across lines",
			logging.FieldSquad, squad.ID,
			logging.FieldView, view,
		)
	}
	return assignment
}

func (s *Service) session(squadID string) tactics.Session {
	if s.sessions == nil {
		return tactics.Session{SquadID: squadID}
	}
	return s.sessions.Session(squadID)
}

// bench lists the roster players left out of the assignment, in roster order.
func bench(roster []players.Player, assignment lineup.Assignment) []players.Player {
	placed := make(map[string]bool)
	for _, line := range formation.Lines() {
		for _, slot := range assignment.LineSlots(line) {
			if slot.Player != nil {
				placed[slot.Player.ID] = true
			}
		}
	}
	out := make([]players.Player, 0, len(roster))
	for _, p := range roster {
		if !placed[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
