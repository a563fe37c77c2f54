// Package session holds the client-side identity: at most one logged-in user,
// persisted as a single JSON file so it survives restarts.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the persisted session record. Token is carried for servers that
// issue one; this storefront does not.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Guest is the identity assumed when nobody is logged in, mirroring the
// server's fallback for requests without identity headers.
func Guest() Identity {
	return Identity{ID: "user1", Username: "user1", Role: RoleUser}
}

// Store owns the current identity. The value is nil exactly when logged out.
type Store struct {
	path    string
	mu      sync.RWMutex
	current *Identity
}

// DefaultPath places the session file under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "storectl", "session.json"), nil
}

// NewStore loads any persisted identity from path. A missing file means
// logged out, not an error.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	s.current = &id
	return s, nil
}

// SetIdentity persists id and makes it current.
func (s *Store) SetIdentity(id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	s.current = &id
	return nil
}

// Clear logs out: removes the file and the in-memory identity.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	s.current = nil
	return nil
}

// Current returns a copy of the logged-in identity, or nil when logged out.
func (s *Store) Current() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	id := *s.current
	return &id
}

// IsAdmin is a routing hint only; the server checks roles on its own.
func (s *Store) IsAdmin() bool {
	id := s.Current()
	return id != nil && id.IsAdmin()
}

// RouteFor names the surface a freshly logged-in user should land on.
func (s *Store) RouteFor() string {
	if s.IsAdmin() {
		return "/admin"
	}
	return "/"
}
