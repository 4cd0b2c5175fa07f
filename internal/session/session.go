// Package session holds the auth token bundle for the current user. The store
// is an explicit object injected into the API client rather than a process-wide
// singleton, so tests can inject a fake and callers control its lifecycle.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/jobboard-client/internal/types"
)

// Store is the interface the API client depends on. AccessToken returns an
// empty string when no session is active; that is not an error, since some
// endpoints are public.
type Store interface {
	AccessToken() string
	Current() *types.TokenBundle
	Set(bundle *types.TokenBundle) error
	Clear() error
}

// MemStore is an in-memory session store, used in tests and for one-shot runs.
type MemStore struct {
	mu     sync.RWMutex
	bundle *types.TokenBundle
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// AccessToken returns the current access token, or "" when logged out.
func (s *MemStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bundle == nil {
		return ""
	}
	return s.bundle.AccessToken
}

// Current returns the current bundle, or nil when logged out.
func (s *MemStore) Current() *types.TokenBundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Set stores a bundle.
func (s *MemStore) Set(bundle *types.TokenBundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = bundle
	return nil
}

// Clear drops the current bundle.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = nil
	return nil
}

// FileStore persists the bundle as JSON under the user config directory so a
// login survives across CLI invocations.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	bundle *types.TokenBundle
}

// DefaultSessionPath returns the session file location under the user config dir.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "jobboard", "session.json"), nil
}

// NewFileStore creates a file-backed store at path. An empty path uses
// DefaultSessionPath.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		var err error
		path, err = DefaultSessionPath()
		if err != nil {
			return nil, err
		}
	}
	return &FileStore{path: path}, nil
}

// Load reads the session file into memory. A missing file is a logged-out
// state, not an error.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.bundle = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session file %s: %w", s.path, err)
	}

	var bundle types.TokenBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("failed to parse session file %s: %w", s.path, err)
	}
	s.bundle = &bundle
	return nil
}

// AccessToken returns the current access token, or "" when logged out.
func (s *FileStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bundle == nil {
		return ""
	}
	return s.bundle.AccessToken
}

// Current returns the current bundle, or nil when logged out.
func (s *FileStore) Current() *types.TokenBundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// Set stores the bundle and writes it to disk with owner-only permissions.
func (s *FileStore) Set(bundle *types.TokenBundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", s.path, err)
	}
	s.bundle = bundle
	return nil
}

// Clear drops the in-memory bundle and removes the session file. A missing
// file is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bundle = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file %s: %w", s.path, err)
	}
	return nil
}

// Expired reports whether the bundle's access token has expired. It prefers
// the exp claim embedded in the JWT; the token is not verified locally because
// the client does not hold the signing secret. Falls back to the bundle's
// expires_at field when the token is not a parseable JWT.
func Expired(bundle *types.TokenBundle, now time.Time) bool {
	if bundle == nil {
		return true
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(bundle.AccessToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return now.After(exp.Time)
		}
	}

	if bundle.ExpiresAt.IsZero() {
		return false
	}
	return now.After(bundle.ExpiresAt)
}
