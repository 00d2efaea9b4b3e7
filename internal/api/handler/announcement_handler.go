package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/techconnect/club-portal/internal/api/metrics"
	"github.com/techconnect/club-portal/internal/core/domain"
	"github.com/techconnect/club-portal/internal/core/ports"
)

// AnnouncementHandler serves one club's announcement board per registered
// route group. The club is bound at route registration, never read from the
// request body, so a caller cannot redirect a write to another namespace.
type AnnouncementHandler struct {
	service ports.AnnouncementService
	audit   ports.AuditService
}

func NewAnnouncementHandler(service ports.AnnouncementService, audit ports.AuditService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service, audit: audit}
}

// List handles GET /api/{club}/get.
//
// @Summary      List a club's announcements
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        club  path      string  true  "Club namespace (iet, ieee, acm, ie, iste)"
// @Success      200   {array}   domain.Announcement
// @Failure      401   {object}  errorResponse
// @Router       /api/{club}/get [get]
func (h *AnnouncementHandler) List(club domain.Club) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := h.service.List(c.Request().Context(), club)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, items)
	}
}

// Create handles POST /api/{club}/add.
//
// @Summary      Post an announcement to a club board
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        club  path      string                     true  "Club namespace"
// @Param        body  body      createAnnouncementRequest  true  "Announcement"
// @Success      201   {object}  domain.Announcement
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/{club}/add [post]
func (h *AnnouncementHandler) Create(club domain.Club) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createAnnouncementRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}

		role, actor, err := ctxClaims(c)
		if err != nil {
			return err
		}

		created, err := h.service.Create(c.Request().Context(), ports.CreateAnnouncementInput{
			Club:       club,
			Title:      req.Title,
			Message:    req.Message,
			CallerRole: role,
			Actor:      actor,
		})
		if err != nil {
			return err
		}

		metrics.AnnouncementsCreatedTotal.WithLabelValues(string(club)).Inc()
		return c.JSON(http.StatusCreated, created)
	}
}

// Delete handles DELETE /api/{club}/delete/{id}.
//
// @Summary      Delete an announcement from a club board
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        club  path      string  true  "Club namespace"
// @Param        id    path      string  true  "Announcement id"
// @Success      200   {object}  deletedResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/{club}/delete/{id} [delete]
func (h *AnnouncementHandler) Delete(club domain.Club) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, actor, err := ctxClaims(c)
		if err != nil {
			return err
		}

		id := c.Param("id")
		if err := h.service.Delete(c.Request().Context(), ports.DeleteAnnouncementInput{
			Club:       club,
			ID:         id,
			CallerRole: role,
			Actor:      actor,
		}); err != nil {
			return err
		}

		metrics.AnnouncementsDeletedTotal.WithLabelValues(string(club)).Inc()
		return c.JSON(http.StatusOK, deletedResponse{Message: "announcement deleted", ID: id})
	}
}

// Activity handles GET /api/{club}/activity, the club's recent audit trail.
//
// @Summary      Recent board activity for a club
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Param        club   path      string  true   "Club namespace"
// @Param        limit  query     int     false  "Max events to return (default 20)"
// @Success      200    {array}   domain.AuditEvent
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /api/{club}/activity [get]
func (h *AnnouncementHandler) Activity(club domain.Club) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 20
		if raw := c.QueryParam("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
				limit = n
			}
		}

		events, err := h.audit.Recent(c.Request().Context(), club, limit)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, events)
	}
}
