// Package ports defines the contracts between the quote repository and the
// things it talks to: the remote backend, the local cache and the notifier.
//
// Every method takes a context first and returns domain types and domain
// errors. Adapters never leak backend DTOs through these interfaces.
package ports

import (
	"context"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// QuoteSource is the remote, authoritative store of quotes.
// Any connectivity, auth or backend failure is reported as domain.ErrUnavailable.
type QuoteSource interface {
	// FetchQuotes returns up to limit quotes, newest first. A non-empty cursor is
	// the id of the last quote of the previous page.
	FetchQuotes(ctx context.Context, limit int, cursor string) ([]domain.Quote, error)

	// FetchByCategory returns up to limit quotes of one category, newest first.
	FetchByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.Quote, error)

	// SearchQuotes returns quotes whose content or author contains text,
	// distinct by id and newest first.
	SearchQuotes(ctx context.Context, text string) ([]domain.Quote, error)

	// FetchFeatured returns one featured quote or domain.ErrNotFound.
	FetchFeatured(ctx context.Context) (domain.Quote, error)

	// FetchQuoteByID returns the quote or domain.ErrNotFound.
	FetchQuoteByID(ctx context.Context, id string) (domain.Quote, error)

	// FetchQuotesByIDs returns the quotes that exist among ids, in no particular order.
	FetchQuotesByIDs(ctx context.Context, ids []string) ([]domain.Quote, error)

	// CreateQuotes stores new quotes and returns them with remote-assigned ids.
	CreateQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.Quote, error)
}

// QuoteQuery selects a live quote listing from the cache.
// Exactly one of Category or Search may be set; neither means all quotes.
type QuoteQuery struct {
	Category domain.Category
	Search   string
	Limit    int
}

// QuoteCache is the durable local mirror of quotes and favorites.
// Listings are ordered newest first. Writes are last-write-wins per id.
type QuoteCache interface {
	UpsertQuote(ctx context.Context, quote domain.Quote) error

	// UpsertQuotes stores the batch atomically.
	UpsertQuotes(ctx context.Context, quotes []domain.Quote) error

	AllQuotes(ctx context.Context, limit int) ([]domain.Quote, error)

	// QuotesAfter pages past after, newest first. When after carries no
	// timestamp the position is taken from the cached quote with its id.
	QuotesAfter(ctx context.Context, after domain.FeedPosition, limit int) ([]domain.Quote, error)

	QuotesByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.Quote, error)

	// SearchQuotes matches text case-insensitively against content or author.
	SearchQuotes(ctx context.Context, text string) ([]domain.Quote, error)

	// RandomFeaturedQuote returns domain.ErrNotFound when no cached quote is featured.
	RandomFeaturedQuote(ctx context.Context) (domain.Quote, error)

	QuoteByID(ctx context.Context, id string) (domain.Quote, error)

	// QuotesByIDs returns cached quotes for ids, in the order of ids, skipping misses.
	QuotesByIDs(ctx context.Context, ids []string) ([]domain.Quote, error)

	// WatchQuotes emits the query result now and after every quote write.
	WatchQuotes(ctx context.Context, query QuoteQuery) (<-chan []domain.Quote, error)

	FavoriteCache
}

// FavoriteCache is the favorites half of the local cache.
type FavoriteCache interface {
	// UpsertFavorite is idempotent and keeps the original added time.
	UpsertFavorite(ctx context.Context, userID, quoteID string) error

	// RemoveFavorite succeeds when the pair is absent.
	RemoveFavorite(ctx context.Context, userID, quoteID string) error

	// FavoriteIDs returns the user's favorite quote ids, most recently added first.
	FavoriteIDs(ctx context.Context, userID string) ([]string, error)

	// ReplaceFavorites makes the user's favorite set equal to quoteIDs in one transaction.
	ReplaceFavorites(ctx context.Context, userID string, quoteIDs []string) error

	// WatchFavoriteIDs emits the user's favorite ids now and after every change.
	WatchFavoriteIDs(ctx context.Context, userID string) (<-chan []string, error)
}
