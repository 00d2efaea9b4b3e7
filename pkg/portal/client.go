// Package portal is the Go client for the club portal API. It persists the
// login credential in a local session slot, attaches it to every request,
// and exposes a per-club Board view model that applies optimistic updates
// and reconciles them against the server's canonical state.
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/techconnect/club-portal/internal/core/domain"
)

var (
	// ErrUnauthenticated means the credential is missing, expired, or
	// rejected. The stored session is cleared when it occurs.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the session's role does not manage the club.
	ErrForbidden = errors.New("forbidden")
)

// APIError carries a structured error response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client talks to the portal API. The session is loaded once at construction
// and invalidated on logout or credential rejection, never re-read per call.
type Client struct {
	base  string
	http  *http.Client
	store *SessionStore

	mu   sync.Mutex
	sess *Session
}

// New creates a Client against baseURL, loading any stored session from
// store. An absent session is fine; only protected calls require one.
func New(baseURL string, store *SessionStore) *Client {
	c := &Client{
		base:  strings.TrimRight(baseURL, "/"),
		http:  &http.Client{Timeout: 10 * time.Second},
		store: store,
	}
	if sess, err := store.Load(); err == nil {
		c.sess = sess
	}
	return c
}

// Session returns the current session, or nil when logged out.
func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

// Register creates a new account. It does not log in.
func (c *Client) Register(ctx context.Context, name, email, password, role string) error {
	body := map[string]string{"name": name, "email": email, "password": password, "role": role}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

// Login authenticates and persists the resulting session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}

	sess := &Session{
		Token:  resp.Token,
		UserID: resp.User.ID,
		Name:   resp.User.Name,
		Email:  resp.User.Email,
		Role:   resp.User.Role,
	}
	if err := c.store.Save(sess); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.sess = sess
	c.mu.Unlock()
	return sess, nil
}

// Logout clears the session locally. The token itself is stateless and
// simply expires server-side.
func (c *Client) Logout() error {
	c.mu.Lock()
	c.sess = nil
	c.mu.Unlock()
	return c.store.Clear()
}

// Clubs fetches the public club directory.
func (c *Client) Clubs(ctx context.Context) ([]domain.CatalogEntry, error) {
	var entries []domain.CatalogEntry
	if err := c.do(ctx, http.MethodGet, "/api/clubs", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Announcements fetches the club's canonical announcement list.
func (c *Client) Announcements(ctx context.Context, club domain.Club) ([]domain.Announcement, error) {
	var items []domain.Announcement
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/%s/get", club), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateAnnouncement posts a new announcement and returns the stored record
// including its assigned id.
func (c *Client) CreateAnnouncement(ctx context.Context, club domain.Club, title, message string) (*domain.Announcement, error) {
	var created domain.Announcement
	body := map[string]string{"title": title, "message": message}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/%s/add", club), body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteAnnouncement removes an announcement by id.
func (c *Client) DeleteAnnouncement(ctx context.Context, club domain.Club, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/%s/delete/%s", club, id), nil, nil)
}

// do performs one API call: encodes body, attaches the bearer credential,
// and decodes either the response or the {"error": ...} envelope.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sess := c.Session(); sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.resolveError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) resolveError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// The credential is no longer usable; invalidate the session so
		// views redirect to login instead of retrying with a dead token.
		c.mu.Lock()
		c.sess = nil
		c.mu.Unlock()
		_ = c.store.Clear()
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrForbidden
	}

	msg := envelope.Error
	if msg == "" {
		msg = resp.Status
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
