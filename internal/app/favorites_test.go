package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for emission")
	}

	var zero T

	return zero
}

func requireClosed[T any](t *testing.T, ch <-chan T) {
	t.Helper()

	timeout := time.After(2 * time.Second)

	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("channel not closed")
		}
	}
}

func TestFavorites_RequireSignedInUser(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.auth.EXPECT().CurrentUser(mock.Anything).Return(nil, domain.ErrNotAuthenticated)

	calls := map[string]func() error{
		"add":    func() error { return f.repo.AddToFavorites(ctx, "q-1") },
		"remove": func() error { return f.repo.RemoveFromFavorites(ctx, "q-1") },
		"ids": func() error {
			_, err := f.repo.GetUserFavorites(ctx)
			return err
		},
		"watch": func() error {
			_, err := f.repo.WatchUserFavorites(ctx)
			return err
		},
		"quotes": func() error {
			_, err := f.repo.GetFavoriteQuotes(ctx)
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()

			require.ErrorIs(t, err, domain.ErrNotAuthenticated)

			var notAuth *domain.NotAuthenticatedError
			require.ErrorAs(t, err, &notAuth)
			assert.NotEmpty(t, notAuth.Operation)
		})
	}
}

func TestAddToFavorites_WritesRemoteThenCache(t *testing.T) {
	f := setup(t)
	f.signedIn()
	ctx := context.Background()

	f.auth.EXPECT().AddFavorite(mock.Anything, "user-1", "q-1").Return(nil).Twice()

	require.NoError(t, f.repo.AddToFavorites(ctx, "q-1"))
	require.NoError(t, f.repo.AddToFavorites(ctx, " q-1 "))

	ids, err := f.repo.GetUserFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"q-1"}, ids)
}

func TestFavoriteRoundTrip(t *testing.T) {
	f := setup(t)
	f.signedIn()
	ctx := context.Background()

	f.auth.EXPECT().AddFavorite(mock.Anything, "user-1", "q-1").Return(nil)
	f.auth.EXPECT().RemoveFavorite(mock.Anything, "user-1", "q-1").Return(nil)
	f.auth.EXPECT().RemoveFavorite(mock.Anything, "user-1", "never-added").Return(nil)

	require.NoError(t, f.repo.AddToFavorites(ctx, "q-1"))
	require.NoError(t, f.repo.RemoveFromFavorites(ctx, "q-1"))
	require.NoError(t, f.repo.RemoveFromFavorites(ctx, "never-added"))

	ids, err := f.repo.GetUserFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleFavorite_RemoteFailureLeavesCacheUnchanged(t *testing.T) {
	f := setup(t)
	f.signedIn()
	ctx := context.Background()

	require.NoError(t, f.store.UpsertFavorite(ctx, "user-1", "kept"))

	f.auth.EXPECT().AddFavorite(mock.Anything, "user-1", "q-1").Return(errOffline)
	f.auth.EXPECT().RemoveFavorite(mock.Anything, "user-1", "kept").Return(errOffline)

	err := f.repo.AddToFavorites(ctx, "q-1")
	require.ErrorIs(t, err, domain.ErrUnavailable)

	step, ok := GetExecutionStep(err)
	require.True(t, ok)
	assert.Equal(t, StepPerform, step)

	err = f.repo.RemoveFromFavorites(ctx, "kept")
	require.ErrorIs(t, err, domain.ErrUnavailable)

	ids, err := f.store.FavoriteIDs(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, ids)

	assert.InDelta(t, 1, counter(f.metrics.RemoteWriteFailures, "add_favorite"), 0)
	assert.InDelta(t, 1, counter(f.metrics.RemoteWriteFailures, "remove_favorite"), 0)
}

func TestToggleFavorite_UnclassifiedRemoteErrorIsUnknown(t *testing.T) {
	f := setup(t)
	f.signedIn()

	f.auth.EXPECT().AddFavorite(mock.Anything, "user-1", "q-1").Return(errors.New("unexpected EOF"))

	err := f.repo.AddToFavorites(context.Background(), "q-1")

	require.ErrorIs(t, err, domain.ErrUnknown)
}

func TestToggleFavorite_RejectsEmptyQuoteID(t *testing.T) {
	f := setup(t)
	f.signedIn()

	err := f.repo.AddToFavorites(context.Background(), "  ")

	require.ErrorIs(t, err, domain.ErrValidation)

	step, ok := GetExecutionStep(err)
	require.True(t, ok)
	assert.Equal(t, StepValidate, step)
}

func TestWatchUserFavorites_CacheOnly(t *testing.T) {
	f := setup(t)
	f.signedIn()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := f.repo.WatchUserFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, receive(t, stream))

	f.auth.EXPECT().AddFavorite(mock.Anything, "user-1", "q-1").Return(nil)
	require.NoError(t, f.repo.AddToFavorites(context.Background(), "q-1"))

	assert.Equal(t, []string{"q-1"}, receive(t, stream))

	cancel()
	requireClosed(t, stream)
}

func TestWatchUserFavorites_ReconcilesRemoteSet(t *testing.T) {
	f := setup(t, withReconcile())
	f.signedIn()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, f.store.UpsertFavorite(ctx, "user-1", "stale"))

	remote := make(chan []string, 1)
	f.auth.EXPECT().SubscribeFavoriteIDs(mock.Anything, "user-1").Return((<-chan []string)(remote), nil)

	stream, err := f.repo.WatchUserFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, receive(t, stream))

	remote <- []string{"from-phone", "from-tablet"}

	assert.ElementsMatch(t, []string{"from-phone", "from-tablet"}, receive(t, stream))

	close(remote)
}

func TestWatchUserFavorites_SubscriptionFailureStaysCacheOnly(t *testing.T) {
	f := setup(t, withReconcile())
	f.signedIn()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.auth.EXPECT().SubscribeFavoriteIDs(mock.Anything, "user-1").Return(nil, errOffline)

	stream, err := f.repo.WatchUserFavorites(ctx)

	require.NoError(t, err)
	assert.Empty(t, receive(t, stream))
}

func TestGetFavoriteQuotes(t *testing.T) {
	t.Run("online hydrates in favorite order and mirrors", func(t *testing.T) {
		f := setup(t)
		f.signedIn()
		ctx := context.Background()

		f.auth.EXPECT().FavoriteIDs(mock.Anything, "user-1").Return([]string{"b", "a", "gone"}, nil)
		f.quotes.EXPECT().FetchQuotesByIDs(mock.Anything, []string{"b", "a", "gone"}).
			Return([]domain.Quote{quote("a", 1), quote("b", 2)}, nil)

		got, err := f.repo.GetFavoriteQuotes(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, domain.QuoteIDs(got))

		ids, err := f.store.FavoriteIDs(ctx, "user-1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b", "gone"}, ids)

		cached, err := f.store.QuotesByIDs(ctx, []string{"a", "b"})
		require.NoError(t, err)
		assert.Len(t, cached, 2)
	})

	t.Run("no favorites skips the quote fetch", func(t *testing.T) {
		f := setup(t)
		f.signedIn()

		f.auth.EXPECT().FavoriteIDs(mock.Anything, "user-1").Return([]string{}, nil)

		got, err := f.repo.GetFavoriteQuotes(context.Background())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("offline answers from cache", func(t *testing.T) {
		f := setup(t)
		f.signedIn()
		ctx := context.Background()

		require.NoError(t, f.store.UpsertQuotes(ctx, []domain.Quote{quote("a", 1), quote("b", 2)}))
		require.NoError(t, f.store.UpsertFavorite(ctx, "user-1", "a"))

		f.auth.EXPECT().FavoriteIDs(mock.Anything, "user-1").Return(nil, errOffline)

		got, err := f.repo.GetFavoriteQuotes(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, domain.QuoteIDs(got))
	})
}

func TestConcurrentToggleAndRead(t *testing.T) {
	f := setup(t)
	f.signedIn()
	ctx := context.Background()

	f.auth.EXPECT().AddFavorite(mock.Anything, "user-1", "q-1").Return(nil)
	f.auth.EXPECT().RemoveFavorite(mock.Anything, "user-1", "q-1").Return(nil)
	f.quotes.EXPECT().FetchQuoteByID(mock.Anything, "q-1").Return(quote("q-1", 1), nil)

	var wg sync.WaitGroup

	for i := range 20 {
		wg.Go(func() {
			if i%2 == 0 {
				assert.NoError(t, f.repo.AddToFavorites(ctx, "q-1"))
			} else {
				assert.NoError(t, f.repo.RemoveFromFavorites(ctx, "q-1"))
			}
		})
		wg.Go(func() {
			_, err := f.repo.GetQuoteByID(ctx, "q-1")
			assert.NoError(t, err)
		})
	}

	wg.Wait()

	cached, err := f.store.QuoteByID(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, "content q-1", cached.Content)

	ids, err := f.store.FavoriteIDs(ctx, "user-1")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(ids), 1)
}
