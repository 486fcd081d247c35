package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/castmate/castmate-client/docs"
	"github.com/castmate/castmate-client/internal/api/handler"
	"github.com/castmate/castmate-client/internal/api/middleware"
	"github.com/castmate/castmate-client/internal/core/domain"
	"github.com/castmate/castmate-client/internal/core/ports"
)

// Dependencies are the collaborators the gateway routes are built from.
type Dependencies struct {
	Sessions ports.SessionService
	Locator  ports.ProfileLocator
	Store    ports.TokenStore
	Health   map[string]handler.Pinger
	Log      zerolog.Logger

	// Registerer receives the HTTP metrics. Defaults to the global registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "castmate",
		Subsystem:  "gateway",
		Registerer: registerer,
	}))

	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.Store, deps.Log)
	profileHandler := handler.NewProfileHandler(deps.Sessions, deps.Locator)
	castingHandler := handler.NewCastingHandler(deps.Sessions)
	healthHandler := handler.NewHealthHandler(deps.Health)
	session := middleware.Session(deps.Store)

	// --- Session ---
	e.POST("/session/login", sessionHandler.Login)
	e.POST("/session/signup/actor", sessionHandler.SignupActor)
	e.POST("/session/signup/agency", sessionHandler.SignupAgency)
	e.GET("/session", sessionHandler.Info, session)
	e.DELETE("/session", sessionHandler.Logout)

	// --- Profile (bearer) ---
	e.GET("/me", profileHandler.Me, session)
	e.GET("/me/profile", profileHandler.MyProfile, session)
	actors := e.Group("/actors", session)
	actors.GET("/:id", profileHandler.Get)
	actors.PATCH("/:id", profileHandler.Update, middleware.Role(domain.RoleActor))

	// --- Castings (public) ---
	e.GET("/castings", castingHandler.List)
	e.GET("/castings/:id", castingHandler.Get)

	// --- Operations ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
