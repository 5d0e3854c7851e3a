package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reqctx "github.com/jsamuelsen/quotevault/internal/app/context"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated when absent"},
		{name: "kept when present", incoming: "req-from-client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fromGin, fromCtx string

			router := gin.New()
			router.Use(RequestID())
			router.GET("/quotes", func(c *gin.Context) {
				fromGin = GetRequestID(c)
				fromCtx = RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}

			w := serve(router, req)

			require.NotEmpty(t, fromGin)
			assert.Equal(t, fromGin, fromCtx, "outbound calls must see the same id")
			assert.Equal(t, fromGin, w.Header().Get(HeaderRequestID))

			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, fromGin)
			} else {
				assert.Len(t, fromGin, 36)
			}
		})
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	var fromCtx string

	router := gin.New()
	router.Use(CorrelationID())
	router.GET("/quotes", func(c *gin.Context) {
		fromCtx = CorrelationIDFromContext(c.Request.Context())
		assert.Equal(t, fromCtx, GetCorrelationID(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	req.Header.Set(HeaderCorrelationID, "txn-42")

	w := serve(router, req)

	assert.Equal(t, "txn-42", fromCtx)
	assert.Equal(t, "txn-42", w.Header().Get(HeaderCorrelationID))
}

func TestIDsFromBareContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, CorrelationIDFromContext(context.Background()))
}

func TestLoggerAndIDsEnrichRequestLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(Logger(logger), RequestID(), Logging())
	router.GET("/quotes", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/quotes?limit=5", nil)
	req.Header.Set(HeaderRequestID, "req-7")

	serve(router, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Equal(t, "/quotes?limit=5", entry["path"])
	assert.Equal(t, "/quotes", entry["route"])
	assert.InDelta(t, http.StatusOK, entry["status"], 0)
}

func TestLogging_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		status int
		level  string
		silent bool
	}{
		{name: "success at info", path: "/quotes", status: http.StatusOK, level: "INFO"},
		{name: "client error at warn", path: "/quotes", status: http.StatusBadRequest, level: "WARN"},
		{name: "server error at error", path: "/quotes", status: http.StatusServiceUnavailable, level: "ERROR"},
		{name: "probes are skipped", path: "/-/live", status: http.StatusOK, silent: true},
		{name: "listed paths are skipped", path: "/api/v1/favorites/stream", status: http.StatusOK, silent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			router := gin.New()
			router.Use(Logger(slog.New(slog.NewJSONHandler(&buf, nil))), Logging("/api/v1/favorites/stream"))
			router.GET(tt.path, func(c *gin.Context) { c.Status(tt.status) })

			serve(router, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.silent {
				assert.Empty(t, buf.String())
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
		})
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes 500 envelope", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery())
		router.GET("/quotes", func(*gin.Context) { panic("nil quote") })

		req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
		req.Header.Set(HeaderRequestID, "req-9")

		w := serve(router, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
		assert.Equal(t, "req-9", resp.TraceID)
	})

	t.Run("normal request passes", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery())
		router.GET("/quotes", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		assert.Equal(t, http.StatusNoContent, serve(router, httptest.NewRequest(http.MethodGet, "/quotes", nil)).Code)
	})
}

func TestDeadline(t *testing.T) {
	t.Parallel()

	deadlineOn := func(path string) bool {
		var has bool

		router := gin.New()
		router.Use(Deadline(5*time.Second, "/favorites/stream"))
		router.GET(path, func(c *gin.Context) {
			_, has = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		serve(router, httptest.NewRequest(http.MethodGet, path, nil))

		return has
	}

	assert.True(t, deadlineOn("/quotes"))
	assert.False(t, deadlineOn("/favorites/stream"))
}

func TestSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer token", header: "Bearer tok-123", want: "tok-123"},
		{name: "scheme is case-insensitive", header: "bearer tok-123", want: "tok-123"},
		{name: "anonymous"},
		{name: "other scheme ignored", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer ignored", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				token *ports.SessionToken
				memo  *reqctx.RequestContext
			)

			router := gin.New()
			router.Use(Session())
			router.GET("/me", func(c *gin.Context) {
				token = ports.SessionTokenFromContext(c.Request.Context())
				memo = reqctx.FromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			serve(router, req)

			require.NotNil(t, memo)

			if tt.want == "" {
				assert.Nil(t, token)
				return
			}

			require.NotNil(t, token)
			assert.Equal(t, tt.want, token.AccessToken)
			assert.Equal(t, tt.want, ports.SessionTokenFromContext(memo.Context()).AccessToken)
		})
	}
}

func TestRequireSession(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.Use(Session(), RequireSession())
	router.GET("/favorites", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/favorites", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, decodeError(t, w).Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set("Authorization", "Bearer tok")
	assert.Equal(t, http.StatusOK, serve(router, req).Code)
}

func TestRequireAPIKey(t *testing.T) {
	t.Parallel()

	const key = "0123456789abcdef"

	tests := []struct {
		name       string
		configured string
		given      string
		wantStatus int
	}{
		{name: "valid key", configured: key, given: key, wantStatus: http.StatusOK},
		{name: "wrong key", configured: key, given: "nope", wantStatus: http.StatusForbidden},
		{name: "missing key", configured: key, wantStatus: http.StatusForbidden},
		{name: "admin disabled", given: key, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := gin.New()
			router.Use(RequireAPIKey(tt.configured))
			router.POST("/admin/seed", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodPost, "/admin/seed", nil)
			if tt.given != "" {
				req.Header.Set(HeaderAPIKey, tt.given)
			}

			assert.Equal(t, tt.wantStatus, serve(router, req).Code)
		})
	}
}
