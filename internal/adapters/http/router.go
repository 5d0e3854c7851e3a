package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotevault/internal/app"
	"github.com/jsamuelsen/quotevault/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default deadline for API requests.
const DefaultRequestTimeout = 15 * time.Second

// StreamRoute is the long-lived favorites stream. It is exempt from the
// request deadline.
const StreamRoute = "/api/v1/favorites/stream"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the base logger stored in every request context.
	Logger *slog.Logger

	// ServiceName labels traces and HTTP metrics.
	ServiceName string

	// HealthHandler handles the /-/ endpoints.
	HealthHandler *handlers.HealthHandler

	// Repository backs the API routes. Without it only /-/ is served.
	Repository *app.QuoteRepository

	// Daily runs the quote of the day job from the admin API; nil when the
	// job is disabled.
	Daily handlers.DailyRunner

	// AdminAPIKey guards /api/v1/admin. Empty disables the admin routes.
	AdminAPIKey string

	// Timeout is the request deadline of the API routes; zero disables it.
	Timeout time.Duration

	// StreamHeartbeat is the comment interval of the favorites stream.
	StreamHeartbeat time.Duration

	// Draining ends open favorites streams when closed; see Server.Draining.
	Draining <-chan struct{}
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Logger - base logger into the request context
//  2. Recovery - catch panics
//  3. Request ID and Correlation ID - generate or propagate, enrich the logger
//  4. OpenTelemetry - tracing and HTTP metrics
//  5. Logging - request logging (skips /-/)
//
// Route groups:
//   - /-/ (internal): health, build info and metrics
//   - /api/v1/ (public API): quotes and auth; favorites and collections
//     need a session; admin needs the API key
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine.Use(
		middleware.Logger(logger),
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.Repository == nil {
		return
	}

	apiV1 := engine.Group("/api/v1",
		middleware.Session(),
		middleware.Deadline(cfg.Timeout, StreamRoute),
	)

	setupAPIRoutes(apiV1, cfg)
}

// setupAPIRoutes registers the QuoteVault API.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	repo := cfg.Repository

	handlers.NewQuoteHandler(repo).RegisterQuoteRoutes(rg)
	handlers.NewAuthHandler(repo).RegisterAuthRoutes(rg)

	protected := rg.Group("", middleware.RequireSession())
	handlers.NewFavoritesHandler(repo, cfg.StreamHeartbeat, cfg.Draining).RegisterFavoriteRoutes(protected)
	handlers.NewCollectionHandler(repo).RegisterCollectionRoutes(protected)

	admin := rg.Group("", middleware.RequireAPIKey(cfg.AdminAPIKey))
	handlers.NewAdminHandler(repo, cfg.Daily).RegisterAdminRoutes(admin)
}

// SetupMinimalRouter sets up a router with just the health endpoints.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Logger(logger),
		middleware.Recovery(),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}
