package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/vtorres/investfolio/session"
)

// decode unmarshals a request body for assertions.
func decode(t *testing.T, r *http.Request, out any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		t.Fatal(err)
	}
}

// newTestClient wires a client and a fresh session store against a test
// backend.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := session.Open(filepath.Join(t.TempDir(), "session"))
	if err != nil {
		t.Fatal(err)
	}
	client, err := New(srv.URL, store)
	if err != nil {
		t.Fatal(err)
	}
	return client, store
}

func TestBearerInjection(t *testing.T) {
	var got string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	// Logged out: no Authorization header at all.
	if _, err := client.Holdings(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("Authorization = %q while logged out, want empty", got)
	}

	// Logged in: bearer credential on every request.
	if err := store.Set("tok123"); err != nil {
		t.Fatal(err)
	}
	if _, err := client.Holdings(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer tok123")
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Could not validate credentials"}`, http.StatusUnauthorized)
	}))
	if err := store.Set("stale-token"); err != nil {
		t.Fatal(err)
	}

	_, err := client.Holdings(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("Holdings() error = %v, want ErrSessionExpired", err)
	}
	if store.Authenticated() {
		t.Error("credential survived a 401")
	}
}

func TestNetworkFaultSurfaces(t *testing.T) {
	// Point the client at a closed port.
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closed.Close()
	client, err := New(closed.URL, clientStore(t))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := client.Holdings(context.Background()); err == nil {
		t.Fatal("Holdings() = nil against a dead backend, want error")
	}
}

func clientStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "session"))
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestLogin(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/access-token" {
			t.Errorf("path = %q, want /auth/access-token", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q, want form encoding", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("username") != "m@example.com" || r.PostForm.Get("password") != "s3cret" {
			http.Error(w, `{"detail":"Incorrect email or password"}`, http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"access_token":"tok123","token_type":"bearer"}`))
	}))

	token, err := client.Login(context.Background(), "m@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token != "tok123" {
		t.Errorf("Login() = %q, want %q", token, "tok123")
	}

	_, err = client.Login(context.Background(), "m@example.com", "wrong")
	if !errors.Is(err, ErrCredentials) {
		t.Errorf("Login() with bad password error = %v, want ErrCredentials", err)
	}
}

func TestSignup(t *testing.T) {
	var body map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/signup" {
			t.Errorf("path = %q, want /auth/signup", r.URL.Path)
		}
		decode(t, r, &body)
		w.Write([]byte(`{"id":"u1","email":"m@example.com"}`))
	}))

	if err := client.Signup(context.Background(), "Maria Silva", "m@example.com", "s3cret"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	want := map[string]string{"full_name": "Maria Silva", "email": "m@example.com", "password": "s3cret"}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("signup body[%q] = %q, want %q", k, body[k], v)
		}
	}
}

func TestGoogleLoginURL(t *testing.T) {
	client, err := New("http://localhost:8000", clientStore(t))
	if err != nil {
		t.Fatal(err)
	}
	got := client.GoogleLoginURL("http://127.0.0.1:9999/auth/callback")
	want := "http://localhost:8000/auth/google/login?redirect_uri=http%3A%2F%2F127.0.0.1%3A9999%2Fauth%2Fcallback"
	if got != want {
		t.Errorf("GoogleLoginURL() = %q, want %q", got, want)
	}
}
