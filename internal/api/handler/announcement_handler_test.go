package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techconnect/club-portal/internal/core/domain"
	"github.com/techconnect/club-portal/internal/core/ports"
)

type stubAnnouncementService struct {
	items     []domain.Announcement
	listErr   error
	created   *domain.Announcement
	createErr error
	deleteErr error

	gotCreate ports.CreateAnnouncementInput
	gotDelete ports.DeleteAnnouncementInput
}

func (s *stubAnnouncementService) List(_ context.Context, _ domain.Club) ([]domain.Announcement, error) {
	return s.items, s.listErr
}

func (s *stubAnnouncementService) Create(_ context.Context, in ports.CreateAnnouncementInput) (*domain.Announcement, error) {
	s.gotCreate = in
	return s.created, s.createErr
}

func (s *stubAnnouncementService) Delete(_ context.Context, in ports.DeleteAnnouncementInput) error {
	s.gotDelete = in
	return s.deleteErr
}

type stubAuditReader struct {
	events   []domain.AuditEvent
	gotLimit int
}

func (s *stubAuditReader) Record(_ context.Context, _ domain.AuditEvent) error { return nil }

func (s *stubAuditReader) Recent(_ context.Context, _ domain.Club, limit int) ([]domain.AuditEvent, error) {
	s.gotLimit = limit
	return s.events, nil
}

func newBoardContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setClaims(c echo.Context, role, email string) {
	c.Set("user_id", "u1")
	c.Set("name", "Alice")
	c.Set("email", email)
	c.Set("role", role)
}

func TestAnnouncementHandler_List(t *testing.T) {
	svc := &stubAnnouncementService{items: []domain.Announcement{
		{ID: "a1", Club: domain.ClubIET, Title: "Workshop", Message: "5pm"},
	}}
	h := NewAnnouncementHandler(svc, &stubAuditReader{})

	c, rec := newBoardContext(t, http.MethodGet, "/api/iet/get", "")
	setClaims(c, "user", "member@example.com")

	if err := h.List(domain.ClubIET)(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []domain.Announcement
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].ID != "a1" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestAnnouncementHandler_Create(t *testing.T) {
	svc := &stubAnnouncementService{created: &domain.Announcement{
		ID: "a1", Club: domain.ClubIET, Title: "Workshop", Message: "5pm", CreatedAt: time.Now().UTC(),
	}}
	h := NewAnnouncementHandler(svc, &stubAuditReader{})

	c, rec := newBoardContext(t, http.MethodPost, "/api/iet/add", `{"title":"Workshop","message":"5pm"}`)
	setClaims(c, "iet", "lead@iet.example.com")

	if err := h.Create(domain.ClubIET)(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotCreate.Club != domain.ClubIET {
		t.Fatalf("club should come from the route binding, got %s", svc.gotCreate.Club)
	}
	if svc.gotCreate.CallerRole != domain.RoleIET || svc.gotCreate.Actor != "lead@iet.example.com" {
		t.Fatalf("claims not forwarded: %+v", svc.gotCreate)
	}
}

func TestAnnouncementHandler_Create_ValidationFailure(t *testing.T) {
	h := NewAnnouncementHandler(&stubAnnouncementService{}, &stubAuditReader{})

	for _, body := range []string{`{"title":"only title"}`, `{"message":"only message"}`, `{}`} {
		c, _ := newBoardContext(t, http.MethodPost, "/api/iet/add", body)
		setClaims(c, "iet", "lead@iet.example.com")

		err := h.Create(domain.ClubIET)(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422 HTTPError, got %v", body, err)
		}
	}
}

func TestAnnouncementHandler_Create_MissingClaims(t *testing.T) {
	h := NewAnnouncementHandler(&stubAnnouncementService{}, &stubAuditReader{})

	c, _ := newBoardContext(t, http.MethodPost, "/api/iet/add", `{"title":"t","message":"m"}`)

	err := h.Create(domain.ClubIET)(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAnnouncementHandler_Create_Forbidden(t *testing.T) {
	h := NewAnnouncementHandler(&stubAnnouncementService{createErr: domain.ErrForbidden}, &stubAuditReader{})

	c, _ := newBoardContext(t, http.MethodPost, "/api/ieee/add", `{"title":"t","message":"m"}`)
	setClaims(c, "iet", "lead@iet.example.com")

	if err := h.Create(domain.ClubIEEE)(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden passthrough, got %v", err)
	}
}

func TestAnnouncementHandler_Delete(t *testing.T) {
	svc := &stubAnnouncementService{}
	h := NewAnnouncementHandler(svc, &stubAuditReader{})

	c, rec := newBoardContext(t, http.MethodDelete, "/api/iet/delete/a1", "")
	setClaims(c, "iet", "lead@iet.example.com")
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := h.Delete(domain.ClubIET)(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotDelete.ID != "a1" || svc.gotDelete.Club != domain.ClubIET {
		t.Fatalf("delete input not forwarded: %+v", svc.gotDelete)
	}

	var resp deletedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "a1" {
		t.Fatalf("expected deleted id echoed back, got %q", resp.ID)
	}
}

func TestAnnouncementHandler_Delete_NotFound(t *testing.T) {
	h := NewAnnouncementHandler(&stubAnnouncementService{deleteErr: domain.ErrAnnouncementNotFound}, &stubAuditReader{})

	c, _ := newBoardContext(t, http.MethodDelete, "/api/iet/delete/missing", "")
	setClaims(c, "iet", "lead@iet.example.com")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(domain.ClubIET)(c); !errors.Is(err, domain.ErrAnnouncementNotFound) {
		t.Fatalf("expected ErrAnnouncementNotFound, got %v", err)
	}
}

func TestAnnouncementHandler_Activity(t *testing.T) {
	audit := &stubAuditReader{events: []domain.AuditEvent{
		{Club: domain.ClubIET, Action: domain.AuditCreated, AnnouncementID: "a1"},
	}}
	h := NewAnnouncementHandler(&stubAnnouncementService{}, audit)

	c, rec := newBoardContext(t, http.MethodGet, "/api/iet/activity?limit=5", "")
	setClaims(c, "iet", "lead@iet.example.com")

	if err := h.Activity(domain.ClubIET)(c); err != nil {
		t.Fatalf("Activity returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if audit.gotLimit != 5 {
		t.Fatalf("expected limit 5, got %d", audit.gotLimit)
	}
}

func TestAnnouncementHandler_Activity_LimitDefaultsAndCaps(t *testing.T) {
	audit := &stubAuditReader{}
	h := NewAnnouncementHandler(&stubAnnouncementService{}, audit)

	c, _ := newBoardContext(t, http.MethodGet, "/api/iet/activity", "")
	setClaims(c, "iet", "lead@iet.example.com")
	if err := h.Activity(domain.ClubIET)(c); err != nil {
		t.Fatalf("Activity returned error: %v", err)
	}
	if audit.gotLimit != 20 {
		t.Fatalf("expected default limit 20, got %d", audit.gotLimit)
	}

	c, _ = newBoardContext(t, http.MethodGet, "/api/iet/activity?limit=5000", "")
	setClaims(c, "iet", "lead@iet.example.com")
	if err := h.Activity(domain.ClubIET)(c); err != nil {
		t.Fatalf("Activity returned error: %v", err)
	}
	if audit.gotLimit != 20 {
		t.Fatalf("out-of-range limit should fall back to default, got %d", audit.gotLimit)
	}
}
