// @title        CastMate Gateway API
// @version      1.0
// @description  Local gateway exposing the CastMate backend session, profile and casting operations.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/castmate/castmate-client/internal/api"
	"github.com/castmate/castmate-client/internal/core/service"
	"github.com/castmate/castmate-client/internal/infrastructure/apiclient"
	"github.com/castmate/castmate-client/internal/infrastructure/config"
	"github.com/castmate/castmate-client/internal/infrastructure/transport"
	"github.com/castmate/castmate-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "castmate-gateway"})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "castmate-gateway",
	})

	tr, err := transport.New(cfg.Backend.BaseURL,
		transport.WithTimeout(cfg.Backend.Timeout),
		transport.WithLogger(logger.Component("transport")),
	)
	if err != nil {
		log.Fatal().Err(err).Str("base_url", cfg.Backend.BaseURL).Msg("invalid backend configuration")
	}

	client := apiclient.New(tr, logger.Component("apiclient"))
	sessions := service.NewSessionService(client, logger.Component("session"))
	locator := service.NewProfileLocator(sessions, logger.Component("profile"))

	stores, err := openTokenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Token.Store).Msg("failed to open token store")
	}
	defer stores.close()

	e := api.NewRouter(api.Dependencies{
		Sessions: sessions,
		Locator:  locator,
		Store:    stores.store,
		Health:   stores.health,
		Log:      logger.Component("gateway"),
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("backend", tr.BaseURL()).
			Str("token_store", cfg.Token.Store).
			Msg("gateway starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("gateway stopped")
}
