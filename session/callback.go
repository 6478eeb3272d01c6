package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ErrCallbackToken reports a callback request that carried no usable token.
// A missing token is a failed login, not a transient error: there is no
// retry.
var ErrCallbackToken = errors.New("login failed: callback carried no token")

// CallbackServer completes the browser leg of the Google login. The backend
// performs the provider round trip and redirects back with the issued
// credential in a `token` query parameter; this server receives that single
// redirect on the loopback interface, commits the credential to the store
// and hands the outcome back to the waiting command.
type CallbackServer struct {
	store    *Store
	listener net.Listener
	server   *http.Server
	result   chan callbackResult
}

type callbackResult struct {
	token string
	err   error
}

// NewCallbackServer binds a loopback listener on an ephemeral port.
func NewCallbackServer(store *Store) (*CallbackServer, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("binding callback listener: %w", err)
	}

	s := &CallbackServer{
		store:    store,
		listener: ln,
		result:   make(chan callbackResult, 1),
	}

	r := chi.NewRouter()
	r.Get("/auth/callback", s.handleCallback)
	s.server = &http.Server{Handler: r}

	go s.server.Serve(ln) //nolint:errcheck // closed by Wait

	return s, nil
}

// URL returns the callback address to hand to the backend as redirect
// target.
func (s *CallbackServer) URL() string {
	return fmt.Sprintf("http://%s/auth/callback", s.listener.Addr())
}

// Wait blocks until the callback arrives or ctx expires, and returns the
// committed token. The server runs exactly once: the first request decides
// the outcome and the listener is closed on return.
func (s *CallbackServer) Wait(ctx context.Context) (string, error) {
	defer s.server.Close()
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for login callback: %w", ctx.Err())
	case res := <-s.result:
		return res.token, res.err
	}
}

func (s *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		http.Error(w, "Login failed: no token received. You can close this window.", http.StatusBadRequest)
		s.deliver("", ErrCallbackToken)
		return
	}
	if err := s.store.Set(token); err != nil {
		http.Error(w, "Login failed: could not save the session.", http.StatusInternalServerError)
		s.deliver("", err)
		return
	}
	fmt.Fprintln(w, "Login complete. You can close this window and return to the terminal.")
	s.deliver(token, nil)
}

// deliver reports the first outcome only; stray repeated requests are
// dropped.
func (s *CallbackServer) deliver(token string, err error) {
	select {
	case s.result <- callbackResult{token: token, err: err}:
	default:
	}
}
