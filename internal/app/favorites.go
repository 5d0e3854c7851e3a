package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

type favoriteInput struct {
	userID  string
	quoteID string
}

type favoriteWrite func(ctx context.Context, userID, quoteID string) error

// AddToFavorites marks quoteID as a favorite of the signed-in user. The cache
// changes only after the remote accepted the change.
func (r *QuoteRepository) AddToFavorites(ctx context.Context, quoteID string) error {
	return r.toggleFavorite(ctx, "add_favorite", quoteID, r.auth.AddFavorite, r.cache.UpsertFavorite)
}

// RemoveFromFavorites unmarks quoteID. Removing a quote that is not a
// favorite succeeds.
func (r *QuoteRepository) RemoveFromFavorites(ctx context.Context, quoteID string) error {
	return r.toggleFavorite(ctx, "remove_favorite", quoteID, r.auth.RemoveFavorite, r.cache.RemoveFavorite)
}

func (r *QuoteRepository) toggleFavorite(
	ctx context.Context,
	name, quoteID string,
	remote, mirror favoriteWrite,
) error {
	user, err := r.requireUser(ctx, name)
	if err != nil {
		return err
	}

	_, err = Execute(ctx, r.exec, Operation[favoriteInput, struct{}, struct{}]{
		Name: name,
		Validate: func(_ context.Context, in favoriteInput) error {
			if in.quoteID == "" {
				return domain.NewValidationError("quote_id", "must not be empty")
			}

			return nil
		},
		Perform: func(ctx context.Context, in favoriteInput) (struct{}, error) {
			return struct{}{}, remote(ctx, in.userID, in.quoteID)
		},
		Archive: func(ctx context.Context, in favoriteInput, _ struct{}) error {
			return mirror(ctx, in.userID, in.quoteID)
		},
	}, favoriteInput{userID: user.ID, quoteID: strings.TrimSpace(quoteID)})

	return classify(err)
}

// GetUserFavorites returns the signed-in user's favorite quote ids from the
// cache, most recently added first.
func (r *QuoteRepository) GetUserFavorites(ctx context.Context) ([]string, error) {
	user, err := r.requireUser(ctx, "get_favorites")
	if err != nil {
		return nil, err
	}

	ids, err := r.cache.FavoriteIDs(ctx, user.ID)

	return ids, classify(err)
}

// WatchUserFavorites streams the signed-in user's favorite ids from the cache:
// once now and again after every change. The channel closes when ctx ends.
//
// With reconciliation on, the remote favorite set is applied to the cache
// while the stream is open, so changes made on other devices show up in the
// stream. The remote set wins over the cached one.
func (r *QuoteRepository) WatchUserFavorites(ctx context.Context) (<-chan []string, error) {
	user, err := r.requireUser(ctx, "watch_favorites")
	if err != nil {
		return nil, err
	}

	stream, err := r.cache.WatchFavoriteIDs(ctx, user.ID)
	if err != nil {
		return nil, classify(err)
	}

	if r.reconcile {
		r.reconcileFavorites(ctx, user.ID)
	}

	return stream, nil
}

// reconcileFavorites copies every remote favorite set into the cache until
// ctx ends. A failed subscription leaves the stream cache-only.
func (r *QuoteRepository) reconcileFavorites(ctx context.Context, userID string) {
	logger := r.loggerFor(ctx).With(slog.String("operation", "reconcile_favorites"))

	remote, err := r.auth.SubscribeFavoriteIDs(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "remote favorites subscription unavailable, streaming cache only",
			slog.Any("error", err))

		return
	}

	go func() {
		for ids := range remote {
			if err := r.cache.ReplaceFavorites(ctx, userID, ids); err != nil {
				if ctx.Err() != nil {
					return
				}

				logger.WarnContext(ctx, "applying remote favorites to cache", slog.Any("error", err))
				r.metrics.MirrorFailures.WithLabelValues("reconcile_favorites").Inc()

				continue
			}

			logger.DebugContext(ctx, "applied remote favorites", slog.Int("count", len(ids)))
		}
	}()
}

type favoriteSnapshot struct {
	ids    []string
	quotes []domain.Quote
}

// GetFavoriteQuotes returns the signed-in user's favorite quotes, most
// recently added first. Online it also refreshes the cached favorite set.
func (r *QuoteRepository) GetFavoriteQuotes(ctx context.Context) ([]domain.Quote, error) {
	user, err := r.requireUser(ctx, "get_favorite_quotes")
	if err != nil {
		return nil, err
	}

	snapshot, err := readThrough(ctx, r, readPath[favoriteSnapshot]{
		name: "get_favorite_quotes",
		remote: func(ctx context.Context) (favoriteSnapshot, error) {
			ids, err := r.auth.FavoriteIDs(ctx, user.ID)
			if err != nil {
				return favoriteSnapshot{}, err
			}

			if len(ids) == 0 {
				return favoriteSnapshot{ids: ids, quotes: []domain.Quote{}}, nil
			}

			quotes, err := r.quotes.FetchQuotesByIDs(ctx, ids)
			if err != nil {
				return favoriteSnapshot{}, err
			}

			return favoriteSnapshot{ids: ids, quotes: orderByIDs(ids, quotes)}, nil
		},
		mirror: func(ctx context.Context, s favoriteSnapshot) error {
			if err := r.mirrorQuotes(ctx, s.quotes); err != nil {
				return err
			}

			return r.cache.ReplaceFavorites(ctx, user.ID, s.ids)
		},
		local: func(ctx context.Context) (favoriteSnapshot, error) {
			ids, err := r.cache.FavoriteIDs(ctx, user.ID)
			if err != nil {
				return favoriteSnapshot{}, err
			}

			quotes, err := r.cache.QuotesByIDs(ctx, ids)

			return favoriteSnapshot{ids: ids, quotes: quotes}, err
		},
	})
	if err != nil {
		return nil, classify(err)
	}

	return snapshot.quotes, nil
}

// orderByIDs arranges quotes in the order of ids, dropping ids with no quote.
func orderByIDs(ids []string, quotes []domain.Quote) []domain.Quote {
	byID := make(map[string]domain.Quote, len(quotes))
	for _, q := range quotes {
		byID[q.ID] = q
	}

	ordered := make([]domain.Quote, 0, len(ids))

	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}

	return ordered
}
