package apiclient

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/castmate/castmate-client/internal/pkg/metrics"
	"github.com/castmate/castmate-client/internal/core/domain"
	"github.com/castmate/castmate-client/internal/core/ports"
)

// Client composes a Transport with the response decoder.
type Client struct {
	transport ports.Transport
	log       zerolog.Logger
}

// New returns a Client sending through t.
func New(t ports.Transport, log zerolog.Logger) *Client {
	return &Client{transport: t, log: log}
}

// Call implements ports.APIClient. Transport and decoder failures are
// returned unchanged.
func (c *Client) Call(ctx context.Context, req ports.Request, out any) error {
	start := time.Now()
	err := c.call(ctx, req, out)

	outcome := "ok"
	if err != nil {
		outcome = string(domain.KindOf(err))
		ev := c.log.Warn()
		if domain.KindOf(err) == domain.KindRequestFailed {
			ev = c.log.Debug()
		}
		ev.Err(err).
			Str("operation", req.Operation).
			Str("method", req.Method).
			Str("path", req.Path).
			Int("status", domain.StatusOf(err)).
			Msg("api call failed")
	}
	metrics.ObserveClientRequest(req.Operation, outcome, time.Since(start))
	return err
}

func (c *Client) call(ctx context.Context, req ports.Request, out any) error {
	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return err
	}
	return Decode(resp.StatusCode, resp.Body, out)
}

var _ ports.APIClient = (*Client)(nil)
