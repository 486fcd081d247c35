package ports

import (
	"context"
	"errors"
)

// ErrTokenNotFound is returned by TokenStore.Get when no token is stored.
var ErrTokenNotFound = errors.New("no stored access token")

// TokenStore persists the session access token on behalf of the caller.
// The client core never reads it; the token is always passed explicitly.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
