package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

const (
	seedChunkSize = 50
	seedWorkers   = 2
)

// RefreshResult summarizes one cache warm-up.
type RefreshResult struct {
	Tasks  int
	Failed int
	Quotes int
}

// Refresh warms the cache with the first page of quotes, the first page of
// every category and the featured quote. Tasks run concurrently; a failed
// task does not stop the others. Refresh fails only when every task failed
// or the fetched quotes could not be stored.
func (r *QuoteRepository) Refresh(ctx context.Context) (RefreshResult, error) {
	logger := r.loggerFor(ctx).With(slog.String("operation", "refresh"))
	start := time.Now()

	tasks := []func(context.Context) ([]domain.Quote, error){
		func(ctx context.Context) ([]domain.Quote, error) {
			return r.quotes.FetchQuotes(ctx, r.pageSize, "")
		},
		func(ctx context.Context) ([]domain.Quote, error) {
			q, err := r.quotes.FetchFeatured(ctx)
			if domain.IsNotFound(err) {
				return nil, nil
			}

			if err != nil {
				return nil, err
			}

			return []domain.Quote{q}, nil
		},
	}

	for _, category := range domain.Categories() {
		tasks = append(tasks, func(ctx context.Context) ([]domain.Quote, error) {
			return r.quotes.FetchByCategory(ctx, category, r.pageSize)
		})
	}

	result := RefreshResult{Tasks: len(tasks)}

	var (
		fetched []domain.Quote
		errs    []error
	)

	for _, res := range ParallelPartialLimit(ctx, r.refreshConcurrency, tasks...) {
		if res.Err != nil {
			result.Failed++
			errs = append(errs, res.Err)

			continue
		}

		fetched = append(fetched, res.Value...)
	}

	fetched = distinctByID(fetched)
	result.Quotes = len(fetched)

	if result.Failed > 0 {
		logger.WarnContext(ctx, "refresh tasks failed",
			slog.Int("failed", result.Failed),
			slog.Int("tasks", result.Tasks),
			slog.Any("error", errors.Join(errs...)))
	}

	if result.Failed == result.Tasks {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		return result, domain.NewUnavailableError("remote", errors.Join(errs...).Error())
	}

	if err := r.mirrorQuotes(context.WithoutCancel(ctx), fetched); err != nil {
		r.metrics.MirrorFailures.WithLabelValues("refresh").Inc()
		return result, classify(fmt.Errorf("storing refreshed quotes: %w", err))
	}

	logger.InfoContext(ctx, "cache refreshed",
		slog.Int("quotes", result.Quotes),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// distinctByID keeps the last occurrence of every id, in first-seen order.
func distinctByID(quotes []domain.Quote) []domain.Quote {
	index := make(map[string]int, len(quotes))
	out := make([]domain.Quote, 0, len(quotes))

	for _, q := range quotes {
		if i, ok := index[q.ID]; ok {
			out[i] = q
			continue
		}

		index[q.ID] = len(out)
		out = append(out, q)
	}

	return out
}

type seedBatch struct {
	index  int
	quotes []domain.Quote
}

// SeedQuotes creates quotes remotely in batches and mirrors each accepted
// batch into the cache. Every quote is validated before anything is sent.
// The returned quotes carry their remote ids, in input order. A failed batch
// stops the seed; batches already accepted stay accepted.
func (r *QuoteRepository) SeedQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.Quote, error) {
	if len(quotes) == 0 {
		return nil, domain.NewValidationError("quotes", "must not be empty")
	}

	normalized := make([]domain.Quote, len(quotes))

	for i, q := range quotes {
		q = q.Normalize()
		q.ID = ""

		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("quote %d: %w", i, err)
		}

		normalized[i] = q
	}

	var batches []seedBatch
	for chunk := range slices.Chunk(normalized, seedChunkSize) {
		batches = append(batches, seedBatch{index: len(batches), quotes: chunk})
	}

	op := Operation[[]domain.Quote, []domain.Quote, []domain.Quote]{
		Name:    "seed_quotes",
		Perform: r.quotes.CreateQuotes,
		Verify: func(_ context.Context, in, created []domain.Quote) ([]domain.Quote, error) {
			if len(created) != len(in) {
				return nil, domain.NewUnavailableError("remote",
					fmt.Sprintf("created %d of %d quotes", len(created), len(in)))
			}

			for _, q := range created {
				if q.ID == "" {
					return nil, domain.NewUnavailableError("remote", "created quote has no id")
				}
			}

			return created, nil
		},
		Archive: func(ctx context.Context, _ []domain.Quote, created []domain.Quote) error {
			return r.cache.UpsertQuotes(ctx, created)
		},
	}

	created := make([][]domain.Quote, len(batches))

	err := FanOut(ctx, seedWorkers, batches, func(ctx context.Context, b seedBatch) error {
		out, err := Execute(ctx, r.exec, op, b.quotes)
		if err != nil {
			return fmt.Errorf("batch %d: %w", b.index, err)
		}

		created[b.index] = out

		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	seeded := slices.Concat(created...)

	r.loggerFor(ctx).InfoContext(ctx, "quotes seeded", slog.Int("count", len(seeded)))

	return seeded, nil
}
