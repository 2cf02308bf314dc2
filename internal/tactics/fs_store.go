package tactics

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FSStore persists tactics sessions as JSON files, one per squad, so a
// board survives restarts. Files live at {basePath}/{squadID}.json.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed session store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// Load reads a squad's session from disk. The second return is false when
// no session has been saved yet.
func (s *FSStore) Load(squadID string) (Session, bool, error) {
	if s == nil {
		return Session{}, false, errors.New("session store not configured")
	}
	if squadID == "" {
		return Session{}, false, errors.New("squad id required")
	}

	f, err := os.Open(s.path(squadID))
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, false, nil
		}
		return Session{}, false, err
	}
	defer f.Close()

	var session Session
	if err := json.NewDecoder(f).Decode(&session); err != nil {
		return Session{}, false, fmt.Errorf("decode session %s: %w", squadID, err)
	}
	if session.SquadID == "" {
		session.SquadID = squadID
	}
	return session, true, nil
}

// Save writes a session atomically (write temp file, then rename).
func (s *FSStore) Save(session Session) error {
	if s == nil {
		return errors.New("session store not configured")
	}
	if session.SquadID == "" {
		return errors.New("squad id required")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.basePath, "session-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := json.NewEncoder(tmp).Encode(session); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path(session.SquadID))
}

// Delete removes a squad's session file; missing files are not an error.
func (s *FSStore) Delete(squadID string) error {
	if s == nil || squadID == "" {
		return nil
	}
	err := os.Remove(s.path(squadID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FSStore) path(squadID string) string {
	return filepath.Join(s.basePath, fmt.Sprintf("%s.json", squadID))
}
