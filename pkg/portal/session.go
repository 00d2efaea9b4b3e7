package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/techconnect/club-portal/internal/core/domain"
)

// ErrNoSession is returned when no usable credential is stored locally.
// Callers should route the user to login before fetching anything.
var ErrNoSession = errors.New("no stored session")

// Session is the locally persisted credential record: the token plus the
// identity needed to render role-gated views, written as one "user" slot.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// CanManage reports whether the session's role manages the given club.
// Views use it to decide between the board and a redirect, before any fetch.
func (s *Session) CanManage(club domain.Club) bool {
	return s != nil && domain.Role(s.Role).CanManage(club)
}

// SessionStore persists the session under a "user" file in dir.
type SessionStore struct {
	path string
}

func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, "user")}
}

// Load reads the stored session. A missing file or a record without a token
// yields ErrNoSession.
func (s *SessionStore) Load() (*Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if sess.Token == "" {
		return nil, ErrNoSession
	}
	return &sess, nil
}

// Save writes the session record.
func (s *SessionStore) Save(sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear removes the stored session. Clearing an absent session is a no-op.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
