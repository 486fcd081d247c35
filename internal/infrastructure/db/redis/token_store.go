package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/castmate/castmate-client/internal/core/ports"
)

const keyPrefix = "castmate:authToken:"

// TokenStore keeps the access token under castmate:authToken:<namespace>.
// A zero ttl stores it without expiry.
type TokenStore struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

func NewTokenStore(client *redis.Client, namespace string, ttl time.Duration) *TokenStore {
	if namespace == "" {
		namespace = "default"
	}
	return &TokenStore{client: client, namespace: namespace, ttl: ttl}
}

func (s *TokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key()).Result()
	if errors.Is(err, redis.Nil) {
		return "", ports.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get token: %w", err)
	}
	if token == "" {
		return "", ports.ErrTokenNotFound
	}
	return token, nil
}

func (s *TokenStore) Set(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key(), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("redis clear token: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (s *TokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *TokenStore) key() string {
	return keyPrefix + s.namespace
}

var _ ports.TokenStore = (*TokenStore)(nil)
