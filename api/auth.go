package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Login exchanges a username/password pair for a bearer token. The endpoint
// speaks OAuth2 password-grant form encoding. The token is returned, not
// stored: committing it to the session is the caller's decision.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	err := c.postForm(ctx, "/auth/access-token", form, &payload)
	var apiErr *Error
	if errors.As(err, &apiErr) && (apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized) {
		return "", fmt.Errorf("%s: %w", username, ErrCredentials)
	}
	if err != nil {
		return "", err
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("login succeeded but no access token was issued")
	}
	return payload.AccessToken, nil
}

// Signup creates a new account. The created-user payload is of no use to the
// client: the user still logs in afterwards.
func (c *Client) Signup(ctx context.Context, fullName, email, password string) error {
	in := struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{fullName, email, password}
	return c.postJSON(ctx, "/auth/signup", nil, in, nil)
}
