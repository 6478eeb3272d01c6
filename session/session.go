// Package session holds the bearer credential of the invest-ai client. The
// credential is the only state the client persists: it is mirrored into a
// file so a new process does not force a re-login, the terminal analogue of
// the browser's local storage.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyToken reports an attempt to store an empty credential. Malformed
// or empty tokens are treated as absent, never stored.
var ErrEmptyToken = errors.New("refusing to store an empty credential")

const sessionFileName = "session"

// DefaultPath returns the session file location: INVESTFOLIO_SESSION if set,
// otherwise a file under the user configuration directory.
func DefaultPath() string {
	if p := os.Getenv("INVESTFOLIO_SESSION"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "investfolio-"+sessionFileName)
	}
	return filepath.Join(dir, "investfolio", sessionFileName)
}

// Store is the single source of truth for "is this client authenticated".
// It holds at most one credential, kept in memory and mirrored to disk on
// every mutation. Observers are notified synchronously so no consumer ever
// acts on a stale authentication decision.
type Store struct {
	path      string
	token     string
	observers []func()
}

// Open reads the credential persisted at path, if any. A missing file is a
// logged-out store, not an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session file %q: %w", path, err)
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token returns the current credential, empty when logged out. The token is
// opaque: the client never inspects its contents, trust is deferred to the
// backend on each call.
func (s *Store) Token() string { return s.token }

// Authenticated reports whether a non-empty credential is present.
func (s *Store) Authenticated() bool { return s.token != "" }

// Set stores the credential in memory and on disk, then notifies observers.
func (s *Store) Set(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("saving session file %q: %w", s.path, err)
	}
	s.token = token
	s.notify()
	return nil
}

// Clear removes the credential from memory and disk, then notifies
// observers. Clearing an already logged-out store is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file %q: %w", s.path, err)
	}
	s.token = ""
	s.notify()
	return nil
}

// Observe registers fn to run synchronously after every mutation.
func (s *Store) Observe(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *Store) notify() {
	for _, fn := range s.observers {
		fn()
	}
}
