package session

import (
	"errors"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return s, path
}

func TestStoreSetAndClear(t *testing.T) {
	s, _ := tempStore(t)

	if s.Authenticated() {
		t.Fatal("fresh store reports authenticated")
	}
	if err := s.Set("tok123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !s.Authenticated() {
		t.Error("Authenticated() = false after Set")
	}
	if s.Token() != "tok123" {
		t.Errorf("Token() = %q, want %q", s.Token(), "tok123")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if s.Authenticated() {
		t.Error("Authenticated() = true after Clear")
	}
	if s.Token() != "" {
		t.Errorf("Token() = %q after Clear, want empty", s.Token())
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	s, path := tempStore(t)
	if err := s.Set("tok123"); err != nil {
		t.Fatal(err)
	}

	// Simulated reload: a fresh store on the same file.
	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reopened.Authenticated() || reopened.Token() != "tok123" {
		t.Errorf("reopened store token = %q, want %q", reopened.Token(), "tok123")
	}

	if err := reopened.Clear(); err != nil {
		t.Fatal(err)
	}
	cleared, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if cleared.Authenticated() {
		t.Error("cleared credential survived a reopen")
	}
}

func TestStoreRejectsEmptyToken(t *testing.T) {
	s, _ := tempStore(t)
	for _, tok := range []string{"", "   ", "\n"} {
		if err := s.Set(tok); !errors.Is(err, ErrEmptyToken) {
			t.Errorf("Set(%q) error = %v, want ErrEmptyToken", tok, err)
		}
	}
	if s.Authenticated() {
		t.Error("empty credential was stored")
	}
}

func TestStoreNotifiesObserversSynchronously(t *testing.T) {
	s, _ := tempStore(t)
	var seen []bool
	s.Observe(func() { seen = append(seen, s.Authenticated()) })

	if err := s.Set("tok123"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 || seen[0] != true || seen[1] != false {
		t.Errorf("observer saw %v, want [true false]", seen)
	}
}

func TestGate(t *testing.T) {
	s, _ := tempStore(t)
	gate := NewGate(s)

	if err := gate.Require(); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Require() while logged out = %v, want ErrNotAuthenticated", err)
	}
	if err := gate.RequireAnonymous(); err != nil {
		t.Errorf("RequireAnonymous() while logged out = %v, want nil", err)
	}

	if err := s.Set("tok123"); err != nil {
		t.Fatal(err)
	}
	if err := gate.Require(); err != nil {
		t.Errorf("Require() while logged in = %v, want nil", err)
	}
	if err := gate.RequireAnonymous(); !errors.Is(err, ErrAlreadyAuthenticated) {
		t.Errorf("RequireAnonymous() while logged in = %v, want ErrAlreadyAuthenticated", err)
	}

	// The gate must see a logout immediately, with no cached decision.
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := gate.Require(); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Require() right after logout = %v, want ErrNotAuthenticated", err)
	}
}
