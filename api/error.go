package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrCredentials reports a rejected username/password pair at login.
var ErrCredentials = errors.New("invalid credentials")

// ErrSessionExpired reports a 401 on an authenticated call. The gateway has
// already cleared the stored credential when this surfaces.
var ErrSessionExpired = errors.New("session expired: log in again")

// ErrQuota reports a rate-limited analysis generation.
var ErrQuota = errors.New("analysis quota exceeded, try again later")

// Error is an HTTP-level failure from the backend. The gateway attaches the
// status and the backend's detail message and passes it through untouched;
// interpreting it is the caller's business.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned %d %s", e.Status, http.StatusText(e.Status))
}

// Conflict reports a business-level validation failure, the backend's way of
// saying "already exists".
func (e *Error) Conflict() bool {
	return e.Status == http.StatusBadRequest || e.Status == http.StatusConflict
}

// newError builds an Error from a non-2xx response body. FastAPI wraps its
// messages as {"detail": ...}.
func newError(status int, body []byte) *Error {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		return &Error{Status: status}
	}
	return &Error{Status: status, Detail: payload.Detail}
}
