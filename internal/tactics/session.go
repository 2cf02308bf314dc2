package tactics

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"club-lineup-service/internal/formation"
	"club-lineup-service/internal/lineup"
	"club-lineup-service/internal/logging"
)

var (
	// ErrUnknownFormation rejects board writes naming an unregistered
	// formation. Reads fall back to 4-3-3; writes must be explicit.
	ErrUnknownFormation = errors.New("unknown formation")
	// ErrSlotOutOfRange rejects a placement outside the formation's slot
	// range for the target line.
	ErrSlotOutOfRange = errors.New("slot out of range")
	// ErrUnknownLine rejects a placement naming an invalid line.
	ErrUnknownLine = errors.New("unknown line")
)

// Session is one squad's lineup-board state: the chosen formation and the
// drag/drop history. Placements stay in drop order; the assignment engine
// applies them first-to-last with last-write-wins semantics.
type Session struct {
	SquadID    string             `json:"squadId"`
	Formation  string             `json:"formation"`
	Placements []lineup.Placement `json:"placements"`
}

// Store defines how sessions are persisted.
type Store interface {
	Load(squadID string) (Session, bool, error)
	Save(session Session) error
	Delete(squadID string) error
}

// Manager is the single writer over tactics sessions. Placements are
// validated against the formation's slot ranges at write time so the
// assignment engine stays total and side-effect-free at read time.
type Manager struct {
	mu     sync.Mutex
	store  Store
	cache  map[string]Session
	logger *slog.Logger
}

// NewManager constructs a Manager over the given store.
func NewManager(store Store, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		cache:  make(map[string]Session),
		logger: logger,
	}
}

// Session returns a copy of the squad's session, empty if none exists.
func (m *Manager) Session(squadID string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.load(squadID)
	if !ok {
		return Session{SquadID: squadID}
	}
	return copySession(s)
}

// SetFormation switches the board's formation. The drag/drop history is
// kept: placements whose slots fall outside the new formation's ranges are
// rejected by the engine at assignment time, matching the board behavior
// of players dropping back to the bench.
func (m *Manager) SetFormation(squadID, formationID string) error {
	if _, known := formation.TemplateFor(formationID); !known {
		return fmt.Errorf("%w: %s", ErrUnknownFormation, formationID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, _ := m.load(squadID)
	s.SquadID = squadID
	s.Formation = formationID
	return m.save(s)
}

// Place appends a drag/drop placement after validating it against the
// session's formation. Earlier placements by the same player or onto the
// same slot are compacted away; the surviving list is equivalent under the
// engine's last-write-wins seeding.
func (m *Manager) Place(squadID string, p lineup.Placement) error {
	if !p.Line.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownLine, p.Line)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, _ := m.load(squadID)
	s.SquadID = squadID
	if s.Formation == "" {
		s.Formation = formation.DefaultFormation
	}

	tmpl, _ := formation.TemplateFor(s.Formation)
	if p.Slot < 0 || p.Slot >= tmpl.LineCount(p.Line) {
		return fmt.Errorf("%w: line %s slot %d in %s", ErrSlotOutOfRange, p.Line, p.Slot, tmpl.ID)
	}

	kept := s.Placements[:0]
	for _, existing := range s.Placements {
		if existing.PlayerID == p.PlayerID {
			continue
		}
		if existing.Line == p.Line && existing.Slot == p.Slot {
			continue
		}
		kept = append(kept, existing)
	}
	s.Placements = append(kept, p)
	return m.save(s)
}

// Clear wipes the squad's session.
func (m *Manager) Clear(squadID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cache, squadID)
	if m.store == nil {
		return nil
	}
	return m.store.Delete(squadID)
}

// load must be called with the mutex held.
func (m *Manager) load(squadID string) (Session, bool) {
	if s, ok := m.cache[squadID]; ok {
		return s, true
	}
	if m.store == nil {
		return Session{}, false
	}
	s, ok, err := m.store.Load(squadID)
	if err != nil {
		logging.Warn(m.logger, "tactics session load failed", logging.FieldSquad, squadID, "error", err)
		return Session{}, false
	}
	if ok {
		m.cache[squadID] = s
	}
	return s, ok
}

// save must be called with the mutex held.
func (m *Manager) save(s Session) error {
	m.cache[s.SquadID] = s
	if m.store == nil {
		return nil
	}
	if err := m.store.Save(copySession(s)); err != nil {
		return fmt.Errorf("persist tactics session: %w", err)
	}
	return nil
}

func copySession(s Session) Session {
	out := s
	out.Placements = append([]lineup.Placement(nil), s.Placements...)
	return out
}
