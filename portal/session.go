package portal

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrNoSession is the typed "not logged in" sentinel. A corrupted session
// file is reported the same way: both mean the user must log in again.
var ErrNoSession = errors.New("no session")

// Storage keys, kept verbatim from the deployed portal.
const (
	sessionFileName = "greencloset-finance-portal.json"
	profileFileName = "yuancity_user.json"
)

// SessionStore persists one session across runs.
type SessionStore interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}

// FileSessionStore keeps the session blob in a directory, one file per key.
type FileSessionStore struct {
	dir string
}

func NewFileSessionStore(dir string) *FileSessionStore {
	return &FileSessionStore{dir: dir}
}

func (s *FileSessionStore) Load() (*Session, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, sessionFileName))
	if err != nil {
		return nil, ErrNoSession
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// Malformed blobs are treated as absent, never surfaced as errors.
		return nil, ErrNoSession
	}
	if session.Access == "" || session.User.Email == "" {
		return nil, ErrNoSession
	}
	return &session, nil
}

func (s *FileSessionStore) Save(session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, sessionFileName), raw, 0o600)
}

// Clear removes the session and any cached user profile.
func (s *FileSessionStore) Clear() error {
	err := os.Remove(filepath.Join(s.dir, sessionFileName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	err = os.Remove(filepath.Join(s.dir, profileFileName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemorySessionStore is the in-process equivalent, used by tests and
// embedders that manage persistence themselves.
type MemorySessionStore struct {
	session *Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load() (*Session, error) {
	if s.session == nil {
		return nil, ErrNoSession
	}
	copied := *s.session
	return &copied, nil
}

func (s *MemorySessionStore) Save(session *Session) error {
	copied := *session
	s.session = &copied
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.session = nil
	return nil
}
