package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/castmate/castmate-client/internal/core/ports"
	"github.com/castmate/castmate-client/internal/infrastructure/auth"
	"github.com/castmate/castmate-client/internal/infrastructure/tokenstore"
)

// Context keys set by Session.
const (
	TokenKey = "access_token"
	RoleKey  = "role"
)

// Session resolves the access token for the request. An explicit bearer header
// wins; otherwise the token persisted in store is used. A stored token that can
// no longer be decrypted counts as signed out. The role claim is exposed when
// the token is a readable JWT.
func Session(store ports.TokenStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}

			if token == "" {
				token, err = store.Get(c.Request().Context())
				if errors.Is(err, ports.ErrTokenNotFound) || errors.Is(err, tokenstore.ErrSealedTokenInvalid) ||
					(err == nil && strings.TrimSpace(token) == "") {
					return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
				}
				if err != nil {
					return err
				}
			}

			c.Set(TokenKey, token)
			if info, err := auth.Inspect(token); err == nil && info.Role != "" {
				c.Set(RoleKey, info.Role)
			}
			return next(c)
		}
	}
}

func bearer(header string) (string, error) {
	if header == "" {
		return "", nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
