//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotevault/internal/platform/config"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

const testAnonKey = "anon-key"

// testClientConfig returns a backend client config with short backoff.
func testClientConfig(baseURL string) *clients.Config {
	return &clients.Config{
		ServiceName: acl.QuoteServiceName,
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       100 * time.Millisecond,
			HalfOpenLimit: 2,
		},
		AuthFunc: acl.NewAuthFunc(testAnonKey),
	}
}

// flakyServer fails the first failures calls with 503, then answers 200.
func flakyServer(t *testing.T, failures int32) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= failures {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	return server, &calls
}

func TestClient_RetriesIdempotentRequests(t *testing.T) {
	server, calls := flakyServer(t, 2)

	client, err := clients.New(testClientConfig(server.URL))
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "/rest/v1/quotes")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_WriteRetryNeedsIdempotencyKey(t *testing.T) {
	t.Run("plain POST is sent once", func(t *testing.T) {
		server, calls := flakyServer(t, 1)

		client, err := clients.New(testClientConfig(server.URL))
		require.NoError(t, err)

		_, err = client.Post(context.Background(), "/rest/v1/quotes", []byte(`[]`))

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("keyed POST is retried", func(t *testing.T) {
		server, calls := flakyServer(t, 1)

		client, err := clients.New(testClientConfig(server.URL))
		require.NoError(t, err)

		header := http.Header{}
		header.Set(clients.HeaderIdempotencyKey, "favorite:user-1:q-1")

		resp, err := client.Send(context.Background(), http.MethodPost, "/rest/v1/user_favorites", []byte(`{}`), header)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestClient_CircuitBreaker_StateTransitions(t *testing.T) {
	var calls atomic.Int32

	var failing atomic.Bool
	failing.Store(true)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)

		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := testClientConfig(server.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.Circuit.MaxFailures = 2
	cfg.Circuit.Timeout = 50 * time.Millisecond

	client, err := clients.New(cfg)
	require.NoError(t, err)

	for range 2 {
		_, err = client.Get(context.Background(), "/rest/v1/quotes")
		require.Error(t, err)
	}

	assert.Equal(t, clients.StateOpen, client.CircuitState())

	before := calls.Load()
	_, err = client.Get(context.Background(), "/rest/v1/quotes")
	require.ErrorIs(t, err, clients.ErrCircuitOpen)
	assert.Equal(t, before, calls.Load(), "open circuit must not reach the backend")

	time.Sleep(60 * time.Millisecond)
	failing.Store(false)

	for range 2 {
		resp, err := client.Get(context.Background(), "/rest/v1/quotes")
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, clients.StateClosed, client.CircuitState())
}

func TestClient_Timeout_SlowResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := testClientConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond
	cfg.Retry.MaxAttempts = 1

	client, err := clients.New(cfg)
	require.NoError(t, err)

	start := time.Now()
	_, err = client.Get(context.Background(), "/rest/v1/quotes")

	require.Error(t, err)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}

func TestClient_HeaderPropagation(t *testing.T) {
	received := make(chan http.Header, 2)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := clients.New(testClientConfig(server.URL))
	require.NoError(t, err)

	t.Run("anonymous request uses the project key", func(t *testing.T) {
		resp, err := client.Get(context.Background(), "/rest/v1/quotes")
		require.NoError(t, err)
		resp.Body.Close()

		h := <-received
		assert.Equal(t, testAnonKey, h.Get("apikey"))
		assert.Equal(t, "Bearer "+testAnonKey, h.Get("Authorization"))
	})

	t.Run("session token and request ids are forwarded", func(t *testing.T) {
		ctx := middleware.ContextWithRequestID(context.Background(), "req-integration-123")
		ctx = middleware.ContextWithCorrelationID(ctx, "corr-integration-456")
		ctx = ports.WithSessionToken(ctx, &ports.SessionToken{AccessToken: "user-token"})

		resp, err := client.Get(ctx, "/auth/v1/user")
		require.NoError(t, err)
		resp.Body.Close()

		h := <-received
		assert.Equal(t, testAnonKey, h.Get("apikey"))
		assert.Equal(t, "Bearer user-token", h.Get("Authorization"))
		assert.Equal(t, "req-integration-123", h.Get(middleware.HeaderRequestID))
		assert.Equal(t, "corr-integration-456", h.Get(middleware.HeaderCorrelationID))
	})
}

func TestClient_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	completed := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
		close(completed)
	}))
	defer server.Close()

	client, err := clients.New(testClientConfig(server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		<-started
		cancel()
	}()

	start := time.Now()
	_, err = client.Get(ctx, "/rest/v1/quotes")

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)

	select {
	case <-completed:
	case <-time.After(time.Second):
		t.Fatal("backend did not see the cancellation")
	}
}
