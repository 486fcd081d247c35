package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/castmate/castmate-client/internal/core/domain"
)

// errorResponse is the canonical error envelope for all gateway errors.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps backend
// client failures to gateway statuses and renders {"error", "kind"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		code := statusFor(apiErr)
		if code >= http.StatusInternalServerError {
			log.Warn().
				Err(err).
				Str("kind", string(apiErr.Kind)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("backend call failed")
		}
		return code, errorResponse{Error: apiErr.Error(), Kind: string(apiErr.Kind)}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}

func statusFor(err *domain.APIError) int {
	switch err.Kind {
	case domain.KindRequestFailed:
		if err.StatusCode >= http.StatusBadRequest && err.StatusCode <= 599 {
			return err.StatusCode
		}
		return http.StatusBadGateway
	case domain.KindNetworkFailure:
		return http.StatusServiceUnavailable
	case domain.KindMissingAccessToken, domain.KindDecodingFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
