package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techconnect/club-portal/internal/api/middleware"
	"github.com/techconnect/club-portal/internal/core/domain"
)

// ctxClaims extracts the identity injected by the Auth middleware. Role must
// be present (it proves the middleware ran); a missing role is treated as an
// unauthenticated request. Actor is the display identity recorded in the
// audit trail, preferring email over name.
func ctxClaims(c echo.Context) (role domain.Role, actor string, err error) {
	raw, _ := c.Get(middleware.CtxRole).(string)
	if raw == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	actor, _ = c.Get(middleware.CtxEmail).(string)
	if actor == "" {
		actor, _ = c.Get(middleware.CtxName).(string)
	}

	return domain.Role(raw), actor, nil
}
