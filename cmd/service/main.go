// Package main is the entry point of the QuoteVault service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/quotevault/internal/adapters/cache/sqlite"
	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotevault/internal/adapters/http"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotevault/internal/adapters/notify"
	"github.com/jsamuelsen/quotevault/internal/app"
	"github.com/jsamuelsen/quotevault/internal/platform/config"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
	"github.com/jsamuelsen/quotevault/internal/platform/telemetry"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger, logCloser := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	defer logging.CloseQuietly(logCloser)

	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("backend", cfg.Backend.Kind),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Insecure:     cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Open the local cache
	store, err := sqlite.Open(ctx, sqlite.Config{
		Path:        cfg.Cache.Path,
		BusyTimeout: cfg.Cache.BusyTimeout,
		LogQueries:  cfg.Cache.LogQueries,
	})
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("closing cache", slog.Any("error", closeErr))
		}
	}()

	// 6. Create the backend client and its adapters (ACL pattern)
	backendClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Backend.BaseURL,
		ServiceName: cfg.Backend.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		AuthFunc:    acl.NewAuthFunc(cfg.Backend.AnonKey),
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating backend client: %w", err)
	}

	quoteAdapter := acl.NewQuoteAdapter(acl.QuoteAdapterConfig{
		Client: backendClient,
		Logger: logger,
	})

	authAdapter := acl.NewAuthAdapter(acl.AuthAdapterConfig{
		Client:       backendClient,
		Logger:       logger,
		PollInterval: cfg.Favorites.PollInterval,
	})

	// 7. Health: the cache is required, the backend only degrades readiness
	healthRegistry := ports.NewHealthRegistry()

	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering cache health check: %w", err)
	}

	if err := healthRegistry.RegisterOptional(quoteAdapter); err != nil {
		return fmt.Errorf("registering backend health check: %w", err)
	}

	// 8. Create the repository (application layer)
	metrics := app.NewMetrics(nil)

	repo, err := app.NewQuoteRepository(app.QuoteRepositoryConfig{
		Quotes:            quoteAdapter,
		Auth:              authAdapter,
		Collections:       authAdapter,
		Cache:             store,
		CollectionCache:   store,
		SessionCache:      store,
		OfflineSessionTTL: cfg.Cache.SessionTTL,
		Logger:            logger,
		Metrics:           metrics,
		Reconcile:         cfg.Favorites.Reconcile,
	})
	if err != nil {
		return fmt.Errorf("creating repository: %w", err)
	}

	// 9. Schedule the quote of the day
	var daily handlers.DailyRunner

	if cfg.Daily.Enabled {
		job, err := newDailyJob(cfg, repo, logger, metrics)
		if err != nil {
			return err
		}

		job.Start(ctx)
		defer job.Stop()

		daily = job
	}

	// 10. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 11. Setup router with all middleware and routes
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		Repository:    repo,
		Daily:         daily,
		AdminAPIKey:   cfg.Admin.APIKey,
		Timeout:       cfg.Server.RequestTimeout,
		Draining:      server.Draining(),
	})

	if cfg.Admin.APIKey == "" {
		logger.Info("admin API disabled: no api key configured")
	}

	// 12. Start server (non-blocking)
	serverErr := server.Start()

	// 13. Wait for shutdown signal
	err = waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)

	// Ends open favorite streams and the daily schedule.
	stop()

	return err
}

func newDailyJob(
	cfg *config.Config,
	repo *app.QuoteRepository,
	logger *slog.Logger,
	metrics *app.Metrics,
) (*app.DailyQuoteJob, error) {
	loc, err := cfg.Daily.Location()
	if err != nil {
		return nil, fmt.Errorf("daily quote job: %w", err)
	}

	job, err := app.NewDailyQuoteJob(app.DailyQuoteJobConfig{
		Source:   repo,
		Notifier: notify.NewLogNotifier(logger),
		Schedule: cfg.Daily.Schedule,
		Location: loc,
		Logger:   logger,
		Metrics:  metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("daily quote job: %w", err)
	}

	return job, nil
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
