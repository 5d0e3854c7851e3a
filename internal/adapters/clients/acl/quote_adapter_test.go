package acl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/config"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

func newBackendClient(t *testing.T, handler http.Handler) *clients.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		ServiceName: "test-backend",
		BaseURL:     server.URL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
		AuthFunc: NewAuthFunc("anon-key"),
	})
	require.NoError(t, err)

	return client
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupQuoteAdapter(t *testing.T, handler http.HandlerFunc) *QuoteAdapter {
	t.Helper()

	return NewQuoteAdapter(QuoteAdapterConfig{
		Client: newBackendClient(t, handler),
		Logger: quietLogger(),
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func row(id, createdAt string, extra map[string]any) map[string]any {
	r := map[string]any{
		"id":          id,
		"content":     "content " + id,
		"author":      "author " + id,
		"category":    "WISDOM",
		"likes":       3,
		"is_featured": false,
		"created_at":  createdAt,
	}

	for k, v := range extra {
		r[k] = v
	}

	return r
}

func TestNewQuoteAdapter_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewQuoteAdapter(QuoteAdapterConfig{}) })
}

func TestQuoteAdapter_FetchQuotes_FirstPage(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, quotesPath, r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, quotesOrder, r.URL.Query().Get("order"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("or"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, []map[string]any{
			row("q2", "2024-05-02T00:00:00Z", map[string]any{"category": "HUMOR", "tags": []string{"funny"}}),
			row("q1", "2024-05-01T00:00:00+00:00", map[string]any{"category": "NOT_A_CATEGORY", "likes": -4}),
		})
	})

	quotes, err := adapter.FetchQuotes(context.Background(), 20, "")
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, domain.Quote{
		ID:        "q2",
		Content:   "content q2",
		Author:    "author q2",
		Category:  domain.CategoryHumor,
		Tags:      []string{"funny"},
		Likes:     3,
		CreatedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}, quotes[0])
	assert.Equal(t, domain.CategoryMotivation, quotes[1].Category)
	assert.Equal(t, 0, quotes[1].Likes)
}

func TestQuoteAdapter_FetchQuotes_Cursor(t *testing.T) {
	var calls atomic.Int32

	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if calls.Add(1) == 1 {
			assert.Equal(t, "eq.q5", q.Get("id"))
			writeJSON(t, w, http.StatusOK, []map[string]any{row("q5", "2024-05-05T10:00:00Z", nil)})

			return
		}

		assert.Equal(t,
			`(created_at.lt."2024-05-05T10:00:00Z",and(created_at.eq."2024-05-05T10:00:00Z",id.lt."q5"))`,
			q.Get("or"))
		writeJSON(t, w, http.StatusOK, []map[string]any{row("q4", "2024-05-04T00:00:00Z", nil)})
	})

	quotes, err := adapter.FetchQuotes(context.Background(), 10, "q5")
	require.NoError(t, err)
	assert.Equal(t, []string{"q4"}, domain.QuoteIDs(quotes))
}

func TestQuoteAdapter_FetchQuotes_UnknownCursor(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []any{})
	})

	_, err := adapter.FetchQuotes(context.Background(), 10, "gone")
	assert.True(t, domain.IsNotFound(err))
}

func TestQuoteAdapter_FetchByCategory(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.LOVE", r.URL.Query().Get("category"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, []map[string]any{row("q1", "2024-05-01T00:00:00Z", map[string]any{"category": "LOVE"})})
	})

	quotes, err := adapter.FetchByCategory(context.Background(), domain.CategoryLove, 5)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, domain.CategoryLove, quotes[0].Category)
}

func TestQuoteAdapter_SearchQuotes_MergesDistinctNewestFirst(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		switch {
		case q.Get("content") != "":
			assert.Equal(t, "ilike.*life*", q.Get("content"))
			writeJSON(t, w, http.StatusOK, []map[string]any{
				row("a", "2024-05-03T00:00:00Z", nil),
				row("b", "2024-05-01T00:00:00Z", nil),
			})
		case q.Get("author") != "":
			assert.Equal(t, "ilike.*life*", q.Get("author"))
			writeJSON(t, w, http.StatusOK, []map[string]any{
				row("b", "2024-05-01T00:00:00Z", nil),
				row("c", "2024-05-02T00:00:00Z", nil),
			})
		default:
			t.Errorf("unexpected query %s", r.URL.RawQuery)
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	quotes, err := adapter.SearchQuotes(context.Background(), "life")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, domain.QuoteIDs(quotes))
}

func TestQuoteAdapter_SearchQuotes_OneSideFails(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("author") != "" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		writeJSON(t, w, http.StatusOK, []any{})
	})

	_, err := adapter.SearchQuotes(context.Background(), "x")
	assert.True(t, domain.IsUnavailable(err))
}

func TestQuoteAdapter_SearchQuotes_BlankText(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	quotes, err := adapter.SearchQuotes(context.Background(), " * ")
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestSearchPattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `*100\%*`, searchPattern("100%"))
	assert.Equal(t, `*a\_b*`, searchPattern("a_b"))
	assert.Equal(t, `*say "hi"*`, searchPattern(`say "hi"`))
	assert.Equal(t, `*c:\\tmp*`, searchPattern(`c:\tmp`))
}

func TestQuoteAdapter_SearchQuotes_SendsUnquotedSimpleFilter(t *testing.T) {
	var raw []string

	var mu sync.Mutex

	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		raw = append(raw, r.URL.RawQuery)
		mu.Unlock()

		writeJSON(t, w, http.StatusOK, []any{})
	})

	_, err := adapter.SearchQuotes(context.Background(), "carpe diem")
	require.NoError(t, err)

	require.Len(t, raw, 2)

	for _, q := range raw {
		values, err := url.ParseQuery(q)
		require.NoError(t, err)

		filter := values.Get("content") + values.Get("author")
		assert.Equal(t, "ilike.*carpe diem*", filter)
		assert.NotContains(t, q, "%22")
	}
}

func TestQuoteAdapter_FetchFeatured(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "eq.true", r.URL.Query().Get("is_featured"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			writeJSON(t, w, http.StatusOK, []map[string]any{row("f", "2024-05-01T00:00:00Z", map[string]any{"is_featured": true})})
		})

		q, err := adapter.FetchFeatured(context.Background())
		require.NoError(t, err)
		assert.True(t, q.IsFeatured)
	})

	t.Run("none", func(t *testing.T) {
		adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, []any{})
		})

		_, err := adapter.FetchFeatured(context.Background())
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestQuoteAdapter_FetchQuoteByID(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "eq.q1" {
			writeJSON(t, w, http.StatusOK, []map[string]any{row("q1", "2024-05-01T00:00:00Z", nil)})
			return
		}

		writeJSON(t, w, http.StatusOK, []any{})
	})

	q, err := adapter.FetchQuoteByID(context.Background(), "q1")
	require.NoError(t, err)
	assert.Equal(t, "q1", q.ID)

	_, err = adapter.FetchQuoteByID(context.Background(), "missing")
	assert.True(t, domain.IsNotFound(err))

	_, err = adapter.FetchQuoteByID(context.Background(), "")
	assert.True(t, domain.IsValidation(err))
}

func TestQuoteAdapter_FetchQuotesByIDs_Chunks(t *testing.T) {
	var calls atomic.Int32

	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Contains(t, r.URL.Query().Get("id"), "in.(")
		writeJSON(t, w, http.StatusOK, []map[string]any{row("x", "2024-05-01T00:00:00Z", nil)})
	})

	ids := make([]string, 250)
	for i := range ids {
		ids[i] = "id"
	}

	quotes, err := adapter.FetchQuotesByIDs(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Len(t, quotes, 3)

	none, err := adapter.FetchQuotesByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuoteAdapter_CreateQuotes(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var body []map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.NotContains(t, body[0], "id")
		assert.Equal(t, "SUCCESS", body[0]["category"])

		body[0]["id"] = "new-1"
		body[0]["created_at"] = map[string]any{"_seconds": 1714554000, "_nanoseconds": 0}
		writeJSON(t, w, http.StatusCreated, body)
	})

	created, err := adapter.CreateQuotes(context.Background(), []domain.Quote{{
		Content:  "  Keep going.  ",
		Author:   "Anon",
		Category: domain.CategorySuccess,
	}})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "new-1", created[0].ID)
	assert.Equal(t, "Keep going.", created[0].Content)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), created[0].CreatedAt)
}

func TestQuoteAdapter_CreateQuotes_RejectsInvalid(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := adapter.CreateQuotes(context.Background(), []domain.Quote{{Content: "no author"}})
	assert.True(t, domain.IsValidation(err))
}

func TestQuoteAdapter_ForwardsSessionToken(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer user-jwt", r.Header.Get("Authorization"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		writeJSON(t, w, http.StatusOK, []any{})
	})

	ctx := ports.WithSessionToken(context.Background(), &ports.SessionToken{AccessToken: "user-jwt"})
	_, err := adapter.FetchQuotes(ctx, 1, "")
	require.NoError(t, err)
}

func TestQuoteAdapter_MalformedBodyIsUnavailable(t *testing.T) {
	adapter := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})

	_, err := adapter.FetchQuotes(context.Background(), 1, "")
	assert.True(t, domain.IsUnavailable(err))
}

func TestQuoteAdapter_HealthCheck(t *testing.T) {
	healthy := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id", r.URL.Query().Get("select"))
		writeJSON(t, w, http.StatusOK, []any{})
	})
	assert.Equal(t, QuoteServiceName, healthy.Name())
	require.NoError(t, healthy.Check(context.Background()))

	down := setupQuoteAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.True(t, domain.IsUnavailable(down.Check(context.Background())))
}
