package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/castmate/castmate-client/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
		kind string
	}{
		{name: "upstream not found", err: domain.NewRequestFailed(404, "Casting introuvable"), code: 404, msg: "Casting introuvable", kind: "request_failed"},
		{name: "upstream conflict", err: domain.NewRequestFailed(409, ""), code: 409, msg: "request failed with status 409", kind: "request_failed"},
		{name: "upstream redirect", err: domain.NewRequestFailed(302, ""), code: 502, kind: "request_failed"},
		{name: "network", err: domain.NewNetworkFailure(io.EOF), code: 503, kind: "network_failure"},
		{name: "decoding", err: domain.NewDecodingFailed(errors.New("bad json")), code: 502, kind: "decoding_failed"},
		{name: "missing token", err: domain.NewMissingAccessToken(), code: 502, kind: "missing_access_token"},
		{name: "encoding", err: domain.NewEncodingFailed(errors.New("chan")), code: 500, kind: "encoding_failed"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), code: 400, msg: "invalid payload"},
		{name: "unknown", err: errors.New("boom"), code: 500, msg: "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Kind != tt.kind {
				t.Fatalf("expected kind %q, got %q", tt.kind, body.Kind)
			}
			if tt.msg != "" && body.Error != tt.msg {
				t.Fatalf("expected message %q, got %q", tt.msg, body.Error)
			}
		})
	}
}
