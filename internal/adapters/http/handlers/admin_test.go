package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/app"
	"github.com/jsamuelsen/quotevault/internal/domain"
)

type stubRunner struct {
	quote domain.Quote
	err   error
}

func (s stubRunner) RunNow(context.Context) (domain.Quote, error) {
	return s.quote, s.err
}

func assignIDs(_ context.Context, quotes []domain.Quote) ([]domain.Quote, error) {
	out := make([]domain.Quote, len(quotes))
	for i, q := range quotes {
		q.ID = fmt.Sprintf("seeded-%d", i)
		out[i] = q
	}

	return out, nil
}

func TestAdminRoutes_RequireAPIKey(t *testing.T) {
	f := setup(t)

	w := f.do(t, request{method: http.MethodPost, target: "/api/v1/admin/refresh"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, request{method: http.MethodPost, target: "/api/v1/admin/refresh", apiKey: "guess"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSeed(t *testing.T) {
	f := setup(t)

	f.quotes.EXPECT().CreateQuotes(mock.Anything, mock.MatchedBy(func(qs []domain.Quote) bool {
		return len(qs) == 2 && qs[1].Category == domain.CategoryMotivation
	})).RunAndReturn(assignIDs)

	w := f.do(t, request{
		method: http.MethodPost,
		target: "/api/v1/admin/seed",
		apiKey: testAPIKey,
		body: `{"quotes":[
			{"content":"Know thyself.","author":"Socrates","category":"wisdom"},
			{"content":"Stay hungry.","author":"Steve Jobs","category":"unlisted"}
		]}`,
	})
	require.Equal(t, http.StatusBadRequest, w.Code, "an unknown category is rejected")

	w = f.do(t, request{
		method: http.MethodPost,
		target: "/api/v1/admin/seed",
		apiKey: testAPIKey,
		body: `{"quotes":[
			{"content":"Know thyself.","author":"Socrates","category":"wisdom"},
			{"content":"Stay hungry.","author":"Steve Jobs"}
		]}`,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode[dto.SeedResponse](t, w)
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, []string{"seeded-0", "seeded-1"}, ids(resp.Quotes))

	cached, err := f.store.QuoteByID(context.Background(), "seeded-0")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWisdom, cached.Category)
}

func TestSeed_RejectsInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty", body: `{"quotes":[]}`},
		{name: "blank author", body: `{"quotes":[{"content":"x","author":" "}]}`},
		{name: "duplicate", body: `{"quotes":[{"content":"Same","author":"A"},{"content":"same ","author":"a"}]}`},
		{name: "not json", body: `quotes`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			w := f.do(t, request{method: http.MethodPost, target: "/api/v1/admin/seed", apiKey: testAPIKey, body: tt.body})

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRefresh(t *testing.T) {
	f := setup(t)

	f.quotes.EXPECT().FetchQuotes(mock.Anything, 10, "").Return([]domain.Quote{quote("q1", 1)}, nil)
	f.quotes.EXPECT().FetchFeatured(mock.Anything).Return(domain.Quote{}, errOffline)
	f.quotes.EXPECT().FetchByCategory(mock.Anything, mock.Anything, 10).Return([]domain.Quote{quote("q1", 1)}, nil)

	w := f.do(t, request{method: http.MethodPost, target: "/api/v1/admin/refresh", apiKey: testAPIKey})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.RefreshResponse](t, w)
	assert.Equal(t, len(domain.Categories())+2, resp.Tasks)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, 1, resp.Quotes)
}

func TestRunDaily(t *testing.T) {
	tests := []struct {
		name       string
		runner     DailyRunner
		wantStatus int
		wantCode   string
	}{
		{
			name:       "delivered",
			runner:     stubRunner{quote: quote("f1", 1, featured)},
			wantStatus: http.StatusOK,
		},
		{
			name:       "already running",
			runner:     stubRunner{err: app.ErrJobBusy},
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeJobBusy,
		},
		{
			name:       "nothing featured",
			runner:     stubRunner{err: domain.NewNotFoundError("quote", "featured")},
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeNotFound,
		},
		{
			name:       "job disabled",
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []fixtureOption
			if tt.runner != nil {
				opts = append(opts, withDaily(tt.runner))
			}

			f := setup(t, opts...)

			w := f.do(t, request{method: http.MethodPost, target: "/api/v1/admin/daily/run", apiKey: testAPIKey})

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, w))
				return
			}

			assert.Equal(t, "f1", decode[dto.QuoteResponse](t, w).ID)
		})
	}
}
