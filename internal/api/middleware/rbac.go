package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Role rejects requests whose token carries a role outside allowedRoles.
// Tokens without a readable role are let through; the backend has the final
// word on authorization.
func Role(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(RoleKey).(string)
			if role == "" {
				return next(c)
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden for role "+role)
			}
			return next(c)
		}
	}
}
