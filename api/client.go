// Package api is the outbound gateway of the invest-ai client. Every
// request goes through one path that injects the bearer credential, maps
// non-2xx answers to typed errors and clears the session on authorization
// expiry. The gateway itself performs no business logic: resolving assets,
// recording trades and interpreting analysis payloads sit in the methods
// built on top of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vtorres/investfolio/session"
)

// DefaultBaseURL is the backend address used when nothing is configured.
const DefaultBaseURL = "http://localhost:8000"

// Client talks to the invest-ai backend.
type Client struct {
	base    *url.URL
	http    *http.Client
	session *session.Store
}

// New builds a client bound to the given session store. The store supplies
// the credential for every request and absorbs the forced logout on 401.
func New(baseURL string, store *session.Store) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL %q: %w", baseURL, err)
	}
	return &Client{
		base:    base,
		session: store,
		http: &http.Client{
			Transport: &bearerTransport{base: http.DefaultTransport, session: store},
		},
	}, nil
}

// bearerTransport attaches the stored credential to every outgoing request
// and clears it when the backend answers 401 to an authenticated call, so
// every later authentication check sees the logout.
type bearerTransport struct {
	base    http.RoundTripper
	session *session.Store
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.session.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := t.base.RoundTrip(req)
	if err == nil && resp.StatusCode == http.StatusUnauthorized && token != "" {
		if cerr := t.session.Clear(); cerr != nil {
			return resp, fmt.Errorf("clearing expired session: %w", cerr)
		}
	}
	return resp, err
}

// GoogleLoginURL is the address the user's browser must visit to start the
// Google login. It is navigated to, not fetched: the backend drives the
// provider round trip and redirects back to redirectURL with the token.
func (c *Client) GoogleLoginURL(redirectURL string) string {
	u := c.base.JoinPath("/auth/google/login")
	if redirectURL != "" {
		q := u.Query()
		q.Set("redirect_uri", redirectURL)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// do runs one request and decodes the JSON answer into out (when out is not
// nil). Network faults and non-2xx statuses surface immediately as errors;
// there is no queueing and no retry at this layer.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("building request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	authed := c.session.Authenticated()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response of %s %s: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && authed {
		// The transport has already cleared the credential.
		return fmt.Errorf("%s %s: %w", method, path, ErrSessionExpired)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response of %s %s: %w", method, path, err)
	}
	return nil
}

// postJSON posts a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, query url.Values, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request for %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, query, bytes.NewReader(data), "application/json", out)
}

// postForm posts a form-encoded body.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, nil, body, "application/x-www-form-urlencoded", out)
}

// get fetches a JSON resource.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, "", out)
}
