package http

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotevault/internal/adapters/cache/sqlite"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotevault/internal/app"
	"github.com/jsamuelsen/quotevault/internal/mocks"
	"github.com/jsamuelsen/quotevault/internal/platform/config"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig(port int, maxRequestSize int64) *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           port,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: maxRequestSize,
	}
}

func TestServerNew(t *testing.T) {
	cfg := testServerConfig(8080, 1<<20)
	logger := discardLogger()

	srv := New(cfg, logger)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.Engine())
	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr())
	assert.Equal(t, cfg.ReadTimeout, srv.httpServer.ReadHeaderTimeout)
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(testServerConfig(0, 1<<20), discardLogger())

	srv.Engine().GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	errCh := srv.Start()

	time.Sleep(100 * time.Millisecond)

	select {
	case err := <-errCh:
		require.NoError(t, err, "server start error")
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	select {
	case <-srv.Draining():
		t.Fatal("draining before shutdown")
	default:
	}

	require.NoError(t, srv.Shutdown(ctx))

	_, ok := <-errCh
	assert.False(t, ok, "error channel should be closed")

	select {
	case <-srv.Draining():
	default:
		t.Fatal("draining not signaled")
	}
}

func TestServerStart_PortInUse(t *testing.T) {
	busy := httptest.NewServer(http.NotFoundHandler())
	defer busy.Close()

	_, rawPort, err := net.SplitHostPort(busy.Listener.Addr().String())
	require.NoError(t, err)

	port, err := strconv.Atoi(rawPort)
	require.NoError(t, err)

	srv := New(testServerConfig(port, 1<<20), discardLogger())

	select {
	case err := <-srv.Start():
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http server error")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a listen error")
	}
}

func TestMaxBodySizeMiddleware(t *testing.T) {
	srv := New(testServerConfig(0, 100), discardLogger())

	srv.Engine().POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": len(body)})
	})

	tests := []struct {
		name       string
		size       int
		wantStatus int
	}{
		{name: "under limit", size: 50, wantStatus: http.StatusOK},
		{name: "over limit", size: 200, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", tt.size)))

			srv.Engine().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func newRepository(t *testing.T) *app.QuoteRepository {
	t.Helper()

	store, err := sqlite.Open(context.Background(), sqlite.Config{
		Path:        filepath.Join(t.TempDir(), "quotevault.db"),
		BusyTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	repo, err := app.NewQuoteRepository(app.QuoteRepositoryConfig{
		Quotes:          mocks.NewMockQuoteSource(t),
		Auth:            mocks.NewMockAuthSource(t),
		Collections:     mocks.NewMockCollectionSource(t),
		Cache:           store,
		CollectionCache: store,
		SessionCache:    store,
		Logger:          discardLogger(),
		Metrics:         app.NewMetrics(prometheus.NewRegistry()),
	})
	require.NoError(t, err)

	return repo
}

func newRouter(t *testing.T, cfg RouterConfig) *gin.Engine {
	t.Helper()

	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "quotevault-test"
	}

	engine := gin.New()
	SetupRouter(engine, cfg)

	return engine
}

func serve(engine *gin.Engine, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestSetupRouter_Routes(t *testing.T) {
	engine := newRouter(t, RouterConfig{
		HealthHandler: handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{}),
		Repository:    newRepository(t),
		AdminAPIKey:   "0123456789abcdef",
		Timeout:       DefaultRequestTimeout,
	})

	routes := make(map[string]bool)
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, expected := range []string{
		"GET /-/live",
		"GET /-/ready",
		"GET /api/v1/quotes",
		"GET /api/v1/quotes/search",
		"GET /api/v1/quotes/daily",
		"GET /api/v1/quotes/:id",
		"GET /api/v1/categories",
		"POST /api/v1/auth/sign-in",
		"POST /api/v1/auth/sign-up",
		"POST /api/v1/auth/sign-out",
		"POST /api/v1/auth/reset-password",
		"GET /api/v1/me",
		"GET /api/v1/favorites",
		"GET /api/v1/favorites/ids",
		"GET " + StreamRoute,
		"PUT /api/v1/favorites/:quoteId",
		"DELETE /api/v1/favorites/:quoteId",
		"GET /api/v1/collections",
		"POST /api/v1/collections",
		"PUT /api/v1/collections/:id/quotes/:quoteId",
		"DELETE /api/v1/collections/:id/quotes/:quoteId",
		"POST /api/v1/admin/seed",
		"POST /api/v1/admin/refresh",
		"POST /api/v1/admin/daily/run",
	} {
		assert.True(t, routes[expected], "missing route: %s", expected)
	}
}

func TestSetupRouter_Middleware(t *testing.T) {
	engine := newRouter(t, RouterConfig{
		HealthHandler: handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{}),
		Repository:    newRepository(t),
		Timeout:       DefaultRequestTimeout,
	})

	t.Run("request id is generated", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/v1/categories", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("request id is propagated", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/-/live", http.Header{middleware.HeaderRequestID: {"req-42"}})

		assert.Equal(t, "req-42", w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("favorites need a session", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/api/v1/favorites", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admin is hidden without a key", func(t *testing.T) {
		w := serve(engine, http.MethodPost, "/api/v1/admin/refresh", http.Header{middleware.HeaderAPIKey: {"anything"}})

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrorCodeAdminDisabled)
	})
}

func TestSetupRouter_HealthOnlyWithoutRepository(t *testing.T) {
	engine := newRouter(t, RouterConfig{
		HealthHandler: handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{}),
	})

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/-/ready", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/api/v1/categories", nil).Code)
}

func TestSetupRouter_NilHealthHandler(t *testing.T) {
	require.NotPanics(t, func() {
		newRouter(t, RouterConfig{Repository: newRepository(t)})
	})
}

func TestSetupMinimalRouter(t *testing.T) {
	engine := gin.New()
	SetupMinimalRouter(engine, discardLogger(), handlers.NewHealthHandler(nil, handlers.BuildInfo{Version: "1.0.0"}))

	w := serve(engine, http.MethodGet, "/-/build", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.0.0"`)

	require.NotPanics(t, func() {
		SetupMinimalRouter(gin.New(), discardLogger(), nil)
	})
}
