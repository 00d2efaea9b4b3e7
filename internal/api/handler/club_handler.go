package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techconnect/club-portal/internal/core/domain"
)

// ClubHandler serves the public club directory.
type ClubHandler struct{}

func NewClubHandler() *ClubHandler {
	return &ClubHandler{}
}

// Catalog handles GET /api/clubs.
//
// @Summary      List all clubs
// @Tags         clubs
// @Produce      json
// @Success      200  {array}  domain.CatalogEntry
// @Router       /api/clubs [get]
func (h *ClubHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Catalog())
}
