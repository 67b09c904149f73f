// Package api is the typed client for the portfolio backend. Every call
// attaches the stored bearer token; an authorization failure clears the
// session and surfaces ErrUnauthorized so the command layer can send the user
// back through login exactly once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/etnz/carteira/session"
)

// DefaultBaseURL is where the backend listens when nothing is configured.
const DefaultBaseURL = "http://localhost:8080"

// ErrUnauthorized reports that the backend rejected the session token. The
// token has already been cleared when this is returned.
var ErrUnauthorized = errors.New("session expired or not logged in")

// StatusError is any non-2xx response that is not an authorization failure.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Code)
}

// Client talks to the portfolio backend.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// WithLogger attaches a logger for per-request debug lines.
func WithLogger(log zerolog.Logger) Option { return func(c *Client) { c.log = log } }

// New returns a client for the backend at baseURL, reading the bearer token
// from store on every request.
func New(baseURL string, store *session.Store, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		session: store,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string { return c.baseURL }

// LoginURL is the address the user opens in a browser to start the Google
// OAuth flow; the backend redirects back with a token query parameter.
func (c *Client) LoginURL() string { return c.baseURL + "/oauth2/authorization/google" }

// newRequest builds a request with the bearer token attached when a session
// exists. contentType is left empty for multipart bodies, where the writer
// sets its own boundary-carrying value.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("cannot create request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.session != nil {
		token, err := c.session.Load()
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// send executes the request and applies the auth gate. The caller owns the
// returned body on success.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", req.Method).Str("path", req.URL.Path).Err(err).Msg("request failed")
		return nil, fmt.Errorf("cannot reach backend: %w", err)
	}
	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request")

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		resp.Body.Close()
		if c.session != nil {
			if err := c.session.Clear(); err != nil {
				c.log.Warn().Err(err).Msg("cannot clear session")
			}
		}
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	return resp, nil
}

// errorMessage extracts the backend's {"message": ...} body, best effort.
func errorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 8<<10)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode %s response: %w", path, err)
	}
	return nil
}

// postJSON performs a POST with a JSON body; out may be nil when the response
// body does not matter.
func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return fmt.Errorf("cannot encode %s payload: %w", path, err)
		}
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &body, "application/json")
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode %s response: %w", path, err)
	}
	return nil
}

// delete performs a DELETE and discards the response body.
func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, query, nil, "")
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
