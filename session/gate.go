package session

import "errors"

// ErrNotAuthenticated turns an unauthenticated invocation of a protected
// command away toward login.
var ErrNotAuthenticated = errors.New("not logged in: run 'ifo login' first")

// ErrAlreadyAuthenticated turns an authenticated invocation away from the
// login flow.
var ErrAlreadyAuthenticated = errors.New("already logged in: run 'ifo logout' first")

// Gate guards the protected surface of the client. It never caches its
// decision: every check consults the store, so a logout is visible to the
// very next command.
type Gate struct {
	store *Store
}

func NewGate(store *Store) *Gate { return &Gate{store: store} }

// Require allows a protected action only with a live credential.
func (g *Gate) Require() error {
	if !g.store.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireAnonymous allows the login and signup flows only without one.
func (g *Gate) RequireAnonymous() error {
	if g.store.Authenticated() {
		return ErrAlreadyAuthenticated
	}
	return nil
}
