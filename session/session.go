// Package session persists the opaque bearer token between invocations.
//
// The token is issued by the backend after the Google OAuth redirect and is
// never inspected client-side: it is loaded at startup, saved on login, and
// cleared on logout or on the first authorization failure.
package session

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const tokenFileName = "token"

// DefaultPath returns the default token location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config dir: %w", err)
	}
	return filepath.Join(dir, "mc", tokenFileName), nil
}

// Store reads and writes the token file.
type Store struct {
	path string
}

// NewStore returns a store over the given token file path.
func NewStore(path string) *Store { return &Store{path: path} }

// Load returns the stored token, or "" when no session exists.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cannot read session file %q: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save persists the token, creating the parent directory if needed.
func (s *Store) Save(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to save an empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("cannot create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("cannot write session file %q: %w", s.path, err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot remove session file %q: %w", s.path, err)
	}
	return nil
}

// ExtractToken accepts what the user pastes after the OAuth dance: either the
// bare token, or the full redirect URL carrying it as the `token` query
// parameter.
func ExtractToken(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty token")
	}
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("cannot parse redirect URL: %w", err)
		}
		token := u.Query().Get("token")
		if token == "" {
			return "", fmt.Errorf("redirect URL carries no token parameter")
		}
		return token, nil
	}
	return raw, nil
}
