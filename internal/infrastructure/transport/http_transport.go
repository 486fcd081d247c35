package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/castmate/castmate-client/internal/core/domain"
	"github.com/castmate/castmate-client/internal/core/ports"
)

const (
	defaultTimeout  = 15 * time.Second
	headerRequestID = "X-Request-ID"
	mimeJSON        = "application/json"
)

// HTTPTransport sends requests to a fixed base endpoint, one attempt each.
type HTTPTransport struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        zerolog.Logger
}

// Option customises an HTTPTransport.
type Option func(*HTTPTransport)

// WithHTTPClient replaces the default client. Its transport is used as is.
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTransport) {
		if c != nil {
			t.httpClient = c
		}
	}
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(t *HTTPTransport) {
		if d > 0 {
			t.httpClient.Timeout = d
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(t *HTTPTransport) {
		t.log = l
	}
}

// New validates base and builds a transport. A base that is not an absolute
// http(s) URL yields a KindInvalidConfiguration error.
func New(base string, opts ...Option) (*HTTPTransport, error) {
	u, err := parseBase(base)
	if err != nil {
		return nil, domain.NewInvalidConfiguration(err)
	}
	t := &HTTPTransport{
		baseURL: u,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func parseBase(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, fmt.Errorf("base url is empty")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must use http or https", trimmed)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", trimmed)
	}
	return u, nil
}

// BaseURL returns the endpoint requests are resolved against.
func (t *HTTPTransport) BaseURL() string {
	return t.baseURL.String()
}

// Send implements ports.Transport.
func (t *HTTPTransport) Send(ctx context.Context, in ports.Request) (*ports.Response, error) {
	var body io.Reader
	if in.Body != nil {
		payload, err := json.Marshal(in.Body)
		if err != nil {
			return nil, domain.NewEncodingFailed(err)
		}
		body = bytes.NewReader(payload)
	}

	method := in.Method
	if method == "" {
		method = http.MethodGet
	}
	endpoint := t.baseURL.JoinPath(in.Path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, domain.NewNetworkFailure(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Accept", mimeJSON)
	for k, v := range in.Headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", mimeJSON)
	}
	if req.Header.Get(headerRequestID) == "" {
		req.Header.Set(headerRequestID, uuid.NewString())
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.log.Debug().Err(err).
			Str("method", method).
			Str("path", in.Path).
			Str("request_id", req.Header.Get(headerRequestID)).
			Msg("request failed before response")
		return nil, domain.NewNetworkFailure(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewNetworkFailure(fmt.Errorf("read response: %w", err))
	}

	t.log.Debug().
		Str("method", method).
		Str("path", in.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", req.Header.Get(headerRequestID)).
		Msg("request completed")

	return &ports.Response{StatusCode: resp.StatusCode, Body: raw}, nil
}

var _ ports.Transport = (*HTTPTransport)(nil)
