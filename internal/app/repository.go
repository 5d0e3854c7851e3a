// Package app holds the quote repository: the offline-first layer between
// callers and the remote backend.
//
// Reads are cache-aside. The remote answers first and every successful answer
// is mirrored into the local cache; when the remote fails, the cache answers
// instead and the remote error is not surfaced.
//
// Writes are write-through. The remote must accept a change before the cache
// sees it, and a remote failure is always returned to the caller.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

const (
	// DefaultPageSize is used when a caller asks for no particular limit.
	DefaultPageSize = 20

	// MaxPageSize caps every listing.
	MaxPageSize = 100

	defaultRefreshConcurrency = 4

	// DefaultOfflineSessionTTL is how long a remembered session may stand in
	// for the auth backend.
	DefaultOfflineSessionTTL = 7 * 24 * time.Hour

	repositoryComponent = "app.QuoteRepository"
)

// QuoteRepositoryConfig wires the repository to its collaborators.
type QuoteRepositoryConfig struct {
	Quotes      ports.QuoteSource
	Auth        ports.AuthSource
	Collections ports.CollectionSource

	Cache           ports.QuoteCache
	CollectionCache ports.CollectionCache
	SessionCache    ports.SessionCache

	// OfflineSessionTTL bounds how long after the last successful lookup a
	// session still identifies its user while the auth backend is down.
	OfflineSessionTTL time.Duration

	Logger *slog.Logger

	// Metrics may be nil; the repository then counts into a private registry.
	Metrics *Metrics

	// Reconcile applies remote favorite changes to the cache while a caller
	// watches their favorites.
	Reconcile bool

	// RefreshConcurrency bounds the remote calls Refresh makes at once.
	RefreshConcurrency int

	PageSize int
}

// QuoteRepository is the single entry point callers use for quotes,
// favorites, collections and auth.
type QuoteRepository struct {
	quotes      ports.QuoteSource
	auth        ports.AuthSource
	collections ports.CollectionSource

	cache           ports.QuoteCache
	collectionCache ports.CollectionCache
	sessions        ports.SessionCache

	exec    *Executor
	metrics *Metrics
	logger  *slog.Logger

	reconcile          bool
	refreshConcurrency int
	pageSize           int
	offlineSessionTTL  time.Duration
}

// NewQuoteRepository validates cfg and builds a repository.
func NewQuoteRepository(cfg QuoteRepositoryConfig) (*QuoteRepository, error) {
	switch {
	case cfg.Quotes == nil:
		return nil, errors.New("quote source is required")
	case cfg.Auth == nil:
		return nil, errors.New("auth source is required")
	case cfg.Collections == nil:
		return nil, errors.New("collection source is required")
	case cfg.Cache == nil:
		return nil, errors.New("quote cache is required")
	case cfg.CollectionCache == nil:
		return nil, errors.New("collection cache is required")
	case cfg.SessionCache == nil:
		return nil, errors.New("session cache is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", repositoryComponent))

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics(prometheus.NewRegistry())
	}

	concurrency := cfg.RefreshConcurrency
	if concurrency < 1 {
		concurrency = defaultRefreshConcurrency
	}

	sessionTTL := cfg.OfflineSessionTTL
	if sessionTTL <= 0 {
		sessionTTL = DefaultOfflineSessionTTL
	}

	pageSize := cfg.PageSize
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return &QuoteRepository{
		quotes:             cfg.Quotes,
		auth:               cfg.Auth,
		collections:        cfg.Collections,
		cache:              cfg.Cache,
		collectionCache:    cfg.CollectionCache,
		sessions:           cfg.SessionCache,
		exec:               NewExecutor(logger, metrics),
		metrics:            metrics,
		logger:             logger,
		reconcile:          cfg.Reconcile,
		refreshConcurrency: concurrency,
		pageSize:           pageSize,
		offlineSessionTTL:  sessionTTL,
	}, nil
}

// readPath describes one cache-aside read.
type readPath[T any] struct {
	name   string
	remote func(ctx context.Context) (T, error)
	mirror func(ctx context.Context, value T) error
	local  func(ctx context.Context) (T, error)
}

// readThrough answers from the remote and mirrors the answer, or falls back to
// the cache when the remote fails. The mirror runs before readThrough returns,
// on a context the caller cannot cancel.
func readThrough[T any](ctx context.Context, r *QuoteRepository, path readPath[T]) (T, error) {
	var zero T

	logger := r.loggerFor(ctx).With(slog.String("operation", path.name))

	value, remoteErr := path.remote(ctx)
	if remoteErr == nil {
		if path.mirror != nil {
			if err := path.mirror(context.WithoutCancel(ctx), value); err != nil {
				logger.WarnContext(ctx, "mirroring remote result into cache", slog.Any("error", err))
				r.metrics.MirrorFailures.WithLabelValues(path.name).Inc()
			}
		}

		return value, nil
	}

	if ctx.Err() != nil {
		return zero, ctx.Err()
	}

	logger.InfoContext(ctx, "remote read failed, answering from cache", slog.Any("error", remoteErr))
	r.metrics.Fallbacks.WithLabelValues(path.name).Inc()

	value, cacheErr := path.local(ctx)
	if cacheErr != nil {
		if domain.IsNotFound(cacheErr) {
			return zero, cacheErr
		}

		logger.ErrorContext(ctx, "cache read failed after remote failure", slog.Any("error", cacheErr))

		return zero, domain.NewUnavailableError("remote", fmt.Sprintf("%v; cache: %v", remoteErr, cacheErr))
	}

	return value, nil
}

// classify keeps errors inside the taxonomy. Context errors pass through.
func classify(err error) error {
	if err == nil || domain.Classified(err) {
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return domain.NewUnknownError(err)
}

// loggerFor prefers the request logger in ctx, which carries the request
// ids, and falls back to the configured logger.
func (r *QuoteRepository) loggerFor(ctx context.Context) *slog.Logger {
	if logger, ok := logging.Lookup(ctx); ok {
		return logger.With(slog.String("component", repositoryComponent))
	}

	return r.logger
}

func (r *QuoteRepository) limit(n int) int {
	switch {
	case n < 1:
		return r.pageSize
	case n > MaxPageSize:
		return MaxPageSize
	default:
		return n
	}
}

func (r *QuoteRepository) mirrorQuotes(ctx context.Context, quotes []domain.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	return r.cache.UpsertQuotes(ctx, quotes)
}

// GetQuotes returns a page of quotes, newest first. A non-empty cursor is the
// id of the last quote of the previous page.
func (r *QuoteRepository) GetQuotes(ctx context.Context, limit int, cursor string) ([]domain.Quote, error) {
	return r.GetQuotesAfter(ctx, limit, domain.FeedPosition{ID: cursor})
}

// GetQuotesAfter is GetQuotes for a full feed position. The remote pages by
// the id; the cache pages by the position itself, so an offline page does not
// depend on the previous page being cached.
func (r *QuoteRepository) GetQuotesAfter(
	ctx context.Context,
	limit int,
	after domain.FeedPosition,
) ([]domain.Quote, error) {
	limit = r.limit(limit)
	after.ID = strings.TrimSpace(after.ID)

	quotes, err := readThrough(ctx, r, readPath[[]domain.Quote]{
		name: "get_quotes",
		remote: func(ctx context.Context) ([]domain.Quote, error) {
			return r.quotes.FetchQuotes(ctx, limit, after.ID)
		},
		mirror: r.mirrorQuotes,
		local: func(ctx context.Context) ([]domain.Quote, error) {
			if after.IsStart() {
				return r.cache.AllQuotes(ctx, limit)
			}

			return r.cache.QuotesAfter(ctx, after, limit)
		},
	})

	return quotes, classify(err)
}

// GetQuotesByCategory returns the newest quotes of one category.
func (r *QuoteRepository) GetQuotesByCategory(
	ctx context.Context,
	category domain.Category,
	limit int,
) ([]domain.Quote, error) {
	if !category.Valid() {
		return nil, domain.NewValidationErrorWithValue("category", "unknown category", string(category))
	}

	limit = r.limit(limit)

	quotes, err := readThrough(ctx, r, readPath[[]domain.Quote]{
		name: "get_quotes_by_category",
		remote: func(ctx context.Context) ([]domain.Quote, error) {
			return r.quotes.FetchByCategory(ctx, category, limit)
		},
		mirror: r.mirrorQuotes,
		local: func(ctx context.Context) ([]domain.Quote, error) {
			return r.cache.QuotesByCategory(ctx, category, limit)
		},
	})

	return quotes, classify(err)
}

// SearchQuotes returns quotes whose content or author contains text, each once.
// Blank text matches nothing.
func (r *QuoteRepository) SearchQuotes(ctx context.Context, text string) ([]domain.Quote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.Quote{}, nil
	}

	quotes, err := readThrough(ctx, r, readPath[[]domain.Quote]{
		name: "search_quotes",
		remote: func(ctx context.Context) ([]domain.Quote, error) {
			return r.quotes.SearchQuotes(ctx, text)
		},
		mirror: r.mirrorQuotes,
		local: func(ctx context.Context) ([]domain.Quote, error) {
			return r.cache.SearchQuotes(ctx, text)
		},
	})

	return quotes, classify(err)
}

// GetQuoteOfTheDay returns a featured quote, or domain.ErrNotFound when
// neither the remote nor the cache has one. Offline, the cached pick is
// random and may differ between calls.
func (r *QuoteRepository) GetQuoteOfTheDay(ctx context.Context) (domain.Quote, error) {
	quote, err := readThrough(ctx, r, readPath[domain.Quote]{
		name:   "get_quote_of_the_day",
		remote: r.quotes.FetchFeatured,
		mirror: r.cache.UpsertQuote,
		local:  r.cache.RandomFeaturedQuote,
	})

	return quote, classify(err)
}

// GetQuoteByID returns one quote or domain.ErrNotFound.
func (r *QuoteRepository) GetQuoteByID(ctx context.Context, id string) (domain.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Quote{}, domain.NewValidationError("id", "must not be empty")
	}

	quote, err := readThrough(ctx, r, readPath[domain.Quote]{
		name: "get_quote_by_id",
		remote: func(ctx context.Context) (domain.Quote, error) {
			return r.quotes.FetchQuoteByID(ctx, id)
		},
		mirror: r.cache.UpsertQuote,
		local: func(ctx context.Context) (domain.Quote, error) {
			return r.cache.QuoteByID(ctx, id)
		},
	})

	return quote, classify(err)
}
