package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/castmate/castmate-client/internal/api/middleware"
)

// ctxToken returns the access token resolved by the Session middleware.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get(middleware.TokenKey).(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	return token, nil
}

// bindValid binds the request body into dst and runs the registered validator.
func bindValid(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func pathID(c echo.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	return id, nil
}
