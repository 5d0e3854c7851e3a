package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/domain"
)

func TestCreateCollection(t *testing.T) {
	f := setup(t)
	f.signedIn()

	f.collections.EXPECT().CreateCollection(mock.Anything, mock.MatchedBy(func(c domain.Collection) bool {
		return c.UserID == "user-1" && c.Name == "Mornings" && c.ID == ""
	})).RunAndReturn(func(_ context.Context, c domain.Collection) (domain.Collection, error) {
		c.ID = "col-1"
		c.CreatedAt = base
		return c, nil
	})

	w := f.do(t, request{
		method: http.MethodPost,
		target: "/api/v1/collections",
		body:   `{"name":" Mornings ","quoteIds":["q-1"],"isPublic":true}`,
		token:  "access-1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode[dto.CollectionResponse](t, w)
	assert.Equal(t, "col-1", resp.ID)
	assert.Equal(t, []string{"q-1"}, resp.QuoteIDs)
	assert.True(t, resp.IsPublic)

	cached, err := f.store.Collection(context.Background(), "user-1", "col-1")
	require.NoError(t, err)
	assert.Equal(t, "Mornings", cached.Name)
}

func TestCreateCollection_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "blank name", body: `{"name":"   "}`, field: "name"},
		{name: "bad cover url", body: `{"name":"x","coverImageUrl":"not a url"}`, field: "coverImageUrl"},
		{name: "empty quote id", body: `{"name":"x","quoteIds":[""]}`, field: "quoteIds[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			w := f.do(t, request{method: http.MethodPost, target: "/api/v1/collections", body: tt.body, token: "access-1"})

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode[dto.ErrorResponse](t, w).Error.Details, tt.field)
		})
	}
}

func TestEditCollection(t *testing.T) {
	existing := domain.Collection{ID: "col-1", UserID: "user-1", Name: "Mornings", QuoteIDs: []string{"q-1"}}

	t.Run("add", func(t *testing.T) {
		f := setup(t)
		f.signedIn()

		f.collections.EXPECT().Collections(mock.Anything, "user-1").Return([]domain.Collection{existing}, nil)
		f.collections.EXPECT().SetCollectionQuotes(mock.Anything, "user-1", "col-1", []string{"q-1", "q-2"}).Return(nil)

		w := f.do(t, request{method: http.MethodPut, target: "/api/v1/collections/col-1/quotes/q-2", token: "access-1"})
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, []string{"q-1", "q-2"}, decode[dto.CollectionResponse](t, w).QuoteIDs)
	})

	t.Run("remove", func(t *testing.T) {
		f := setup(t)
		f.signedIn()

		f.collections.EXPECT().Collections(mock.Anything, "user-1").Return([]domain.Collection{existing}, nil)
		f.collections.EXPECT().SetCollectionQuotes(mock.Anything, "user-1", "col-1", []string{}).Return(nil)

		w := f.do(t, request{method: http.MethodDelete, target: "/api/v1/collections/col-1/quotes/q-1", token: "access-1"})
		require.Equal(t, http.StatusOK, w.Code)

		assert.Empty(t, decode[dto.CollectionResponse](t, w).QuoteIDs)
	})

	t.Run("unknown collection", func(t *testing.T) {
		f := setup(t)
		f.signedIn()

		f.collections.EXPECT().Collections(mock.Anything, "user-1").Return(nil, nil)

		w := f.do(t, request{method: http.MethodPut, target: "/api/v1/collections/nope/quotes/q-2", token: "access-1"})

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListCollections_Offline(t *testing.T) {
	f := setup(t)
	f.signedIn()

	require.NoError(t, f.store.UpsertCollections(context.Background(), []domain.Collection{
		{ID: "col-1", UserID: "user-1", Name: "Mornings"},
		{ID: "col-2", UserID: "someone-else", Name: "Theirs"},
	}))

	f.collections.EXPECT().Collections(mock.Anything, "user-1").Return(nil, errOffline)

	w := f.do(t, request{method: http.MethodGet, target: "/api/v1/collections", token: "access-1"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.ListResponse[dto.CollectionResponse]](t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "col-1", resp.Items[0].ID)
	assert.NotNil(t, resp.Items[0].QuoteIDs)
}
