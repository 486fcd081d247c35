package tokenstore

import (
	"context"
	"errors"

	"github.com/castmate/castmate-client/internal/pkg/metrics"
	"github.com/castmate/castmate-client/internal/core/ports"
)

// Instrumented counts operations of the wrapped store.
type Instrumented struct {
	next ports.TokenStore
}

func NewInstrumented(next ports.TokenStore) *Instrumented {
	return &Instrumented{next: next}
}

func (i *Instrumented) Get(ctx context.Context) (string, error) {
	token, err := i.next.Get(ctx)
	observe("get", err)
	return token, err
}

func (i *Instrumented) Set(ctx context.Context, token string) error {
	err := i.next.Set(ctx, token)
	observe("set", err)
	return err
}

func (i *Instrumented) Clear(ctx context.Context) error {
	err := i.next.Clear(ctx)
	observe("clear", err)
	return err
}

func observe(op string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, ports.ErrTokenNotFound):
		result = "miss"
	case err != nil:
		result = "error"
	}
	metrics.TokenStoreOpsTotal.WithLabelValues(op, result).Inc()
}

var _ ports.TokenStore = (*Instrumented)(nil)
