package redis

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/castmate/castmate-client/internal/core/ports"
)

func TestTokenStore_Key(t *testing.T) {
	s := NewTokenStore(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), "", 0)
	if got := s.key(); got != "castmate:authToken:default" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestTokenStore_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	s := NewTokenStore(client, "test", 0)

	err := s.Set(context.Background(), "tok")
	if err == nil || !strings.Contains(err.Error(), "redis set token") {
		t.Fatalf("expected wrapped set error, got %v", err)
	}
	if _, err := s.Get(context.Background()); err == nil || errors.Is(err, ports.ErrTokenNotFound) {
		t.Fatalf("connection failure must not look like a miss, got %v", err)
	}
	if _, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond}); err == nil {
		t.Fatalf("expected connect error")
	}
}

// TestTokenStore_RoundTrip runs against a live server when CASTMATE_TEST_REDIS_ADDR is set.
func TestTokenStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("CASTMATE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CASTMATE_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := Connect(ctx, Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	s := NewTokenStore(client, "test-"+t.Name(), time.Minute)
	t.Cleanup(func() { _ = s.Clear(ctx) })

	if _, err := s.Get(ctx); !errors.Is(err, ports.ErrTokenNotFound) {
		t.Fatalf("expected miss, got %v", err)
	}
	if err := s.Set(ctx, "tok"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, err := s.Get(ctx); err != nil || got != "tok" {
		t.Fatalf("get: %q %v", got, err)
	}
	if ttl := client.TTL(ctx, s.key()).Val(); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("unexpected ttl %s", ttl)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := s.Get(ctx); !errors.Is(err, ports.ErrTokenNotFound) {
		t.Fatalf("expected miss after clear, got %v", err)
	}
}
