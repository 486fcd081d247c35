package ports

import (
	"context"
	"net/http"
)

const (
	MethodGet   = http.MethodGet
	MethodPost  = http.MethodPost
	MethodPatch = http.MethodPatch
)

// Request describes one outbound API call. Path is relative to the configured
// base endpoint. A nil Body means the request carries no body. Operation is a
// low-cardinality name used for logs and metrics.
type Request struct {
	Operation string
	Method    string
	Path      string
	Headers   map[string]string
	Body      any
}

// Response is the raw outcome of a call that reached the server.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs a single HTTP attempt.
// Failures are *domain.APIError of kind encoding_failed or network_failure.
type Transport interface {
	Send(ctx context.Context, req Request) (*Response, error)
}
