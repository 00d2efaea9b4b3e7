package portal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/techconnect/club-portal/internal/core/domain"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	store := NewSessionStore(t.TempDir())

	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession before save, got %v", err)
	}

	sess := &Session{Token: "tok", UserID: "u1", Name: "Alice", Email: "alice@example.com", Role: "iet"}
	if err := store.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *sess {
		t.Fatalf("round-trip mismatch: %+v != %+v", loaded, sess)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}

func TestSessionStore_EmptyTokenIsNoSession(t *testing.T) {
	store := NewSessionStore(t.TempDir())
	if err := store.Save(&Session{Name: "Alice"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for tokenless record, got %v", err)
	}
}

func TestSession_CanManage(t *testing.T) {
	sess := &Session{Role: "iet"}
	if !sess.CanManage(domain.ClubIET) {
		t.Fatalf("iet session should manage iet board")
	}
	if sess.CanManage(domain.ClubIEEE) {
		t.Fatalf("iet session must not manage ieee board")
	}
	var nilSess *Session
	if nilSess.CanManage(domain.ClubIET) {
		t.Fatalf("nil session must not manage anything")
	}
}

func TestClient_LoginPersistsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok123",
			"user": map[string]string{
				"id": "u1", "name": "Alice", "email": "alice@example.com", "role": "iet",
			},
		})
	}))
	defer srv.Close()

	store := NewSessionStore(t.TempDir())
	client := New(srv.URL, store)

	sess, err := client.Login(context.Background(), "alice@example.com", "pass1234")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if sess.Token != "tok123" || sess.Role != "iet" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	stored, err := store.Load()
	if err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if stored.Token != "tok123" {
		t.Fatalf("persisted session mismatch: %+v", stored)
	}
	if client.Session() == nil {
		t.Fatalf("client should hold the session in memory")
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]domain.Announcement{})
	}))
	defer srv.Close()

	store := NewSessionStore(t.TempDir())
	if err := store.Save(&Session{Token: "tok456", Role: "iet"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	client := New(srv.URL, store)

	if _, err := client.Announcements(context.Background(), domain.ClubIET); err != nil {
		t.Fatalf("Announcements failed: %v", err)
	}
	if gotAuth != "Bearer tok456" {
		t.Fatalf("expected stored credential on request, got %q", gotAuth)
	}
}

func TestClient_ClearsSessionOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	}))
	defer srv.Close()

	store := NewSessionStore(t.TempDir())
	if err := store.Save(&Session{Token: "expired", Role: "iet"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	client := New(srv.URL, store)

	_, err := client.Announcements(context.Background(), domain.ClubIET)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if client.Session() != nil {
		t.Fatalf("in-memory session should be invalidated")
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("stored session should be cleared, got %v", err)
	}
}

func TestClient_ForbiddenKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
	}))
	defer srv.Close()

	store := NewSessionStore(t.TempDir())
	if err := store.Save(&Session{Token: "tok", Role: "iet"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	client := New(srv.URL, store)

	_, err := client.CreateAnnouncement(context.Background(), domain.ClubIEEE, "t", "m")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	// The credential is still valid, only the role check failed.
	if client.Session() == nil {
		t.Fatalf("session must survive a 403")
	}
}

func TestClient_APIErrorCarriesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
	}))
	defer srv.Close()

	client := New(srv.URL, NewSessionStore(t.TempDir()))

	err := client.Register(context.Background(), "Alice", "alice@example.com", "pass1234", "user")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "email already registered" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestClient_Logout(t *testing.T) {
	store := NewSessionStore(t.TempDir())
	if err := store.Save(&Session{Token: "tok", Role: "iet"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	client := New("http://localhost:0", store)

	if err := client.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if client.Session() != nil {
		t.Fatalf("session should be nil after logout")
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("stored session should be removed, got %v", err)
	}
}
