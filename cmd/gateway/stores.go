package main

import (
	"context"
	"fmt"

	"github.com/castmate/castmate-client/internal/api/handler"
	"github.com/castmate/castmate-client/internal/core/ports"
	"github.com/castmate/castmate-client/internal/infrastructure/config"
	mongostore "github.com/castmate/castmate-client/internal/infrastructure/db/mongo"
	redisstore "github.com/castmate/castmate-client/internal/infrastructure/db/redis"
	"github.com/castmate/castmate-client/internal/infrastructure/tokenstore"
	"github.com/castmate/castmate-client/pkg/logger"
)

type tokenStores struct {
	store  ports.TokenStore
	health map[string]handler.Pinger
	close  func()
}

// openTokenStore builds the configured backend, seals it when a key is set
// and wraps it with metrics.
func openTokenStore(ctx context.Context, cfg *config.Config) (*tokenStores, error) {
	out := &tokenStores{health: map[string]handler.Pinger{}, close: func() {}}

	var base ports.TokenStore
	switch cfg.Token.Store {
	case config.StoreRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		rs := redisstore.NewTokenStore(client, cfg.Token.Namespace, cfg.Token.TTL)
		base = rs
		out.health["redis"] = rs
		out.close = func() { _ = client.Close() }
	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		ms := mongostore.NewTokenStore(db, cfg.Token.Namespace)
		base = ms
		out.health["mongodb"] = ms
		out.close = func() { _ = client.Disconnect(context.Background()) }
	case config.StoreMemory:
		base = tokenstore.NewMemory()
	default:
		return nil, fmt.Errorf("unknown token store %q", cfg.Token.Store)
	}

	if cfg.Token.SealKey != "" {
		sealed, err := tokenstore.NewSealed(base, cfg.Token.SealKey)
		if err != nil {
			out.close()
			return nil, err
		}
		base = sealed
	} else if cfg.Token.Store != config.StoreMemory {
		l := logger.Component("tokenstore")
		l.Warn().Msg("TOKEN_SEAL_KEY not set, tokens are stored in clear text")
	}

	out.store = tokenstore.NewInstrumented(base)
	return out, nil
}
