package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techconnect/club-portal/internal/core/domain"
)

// RequireClub restricts a route to callers whose validated role manages the
// given club namespace. The match is exact and case-insensitive; neither
// "admin" nor "user" passes for any club. Must run after Auth.
func RequireClub(club domain.Club) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if !domain.Role(role).CanManage(club) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
