package sqlite

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

const (
	quotesTopic = "quotes"

	// upsertBatchSize keeps each INSERT under SQLite's bound-parameter limit.
	upsertBatchSize = 100
)

const newestFirst = "created_at DESC, id DESC"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// UpsertQuote inserts or replaces one quote by id.
func (s *Store) UpsertQuote(ctx context.Context, quote domain.Quote) error {
	return s.UpsertQuotes(ctx, []domain.Quote{quote})
}

// UpsertQuotes inserts or replaces the batch in a single transaction.
func (s *Store) UpsertQuotes(ctx context.Context, quotes []domain.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]quoteRow, 0, len(quotes))

	for _, q := range quotes {
		if q.ID == "" {
			return domain.NewValidationError("id", "cached quotes need a remote id")
		}

		rows = append(rows, newQuoteRow(q, now))
	}

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).
			CreateInBatches(&rows, upsertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("upserting %d quotes: %w", len(rows), err)
	}

	s.hub.publish(quotesTopic)

	return nil
}

// AllQuotes returns up to limit quotes, newest first. A limit <= 0 means no limit.
func (s *Store) AllQuotes(ctx context.Context, limit int) ([]domain.Quote, error) {
	return s.listQuotes(ctx, ports.QuoteQuery{Limit: limit})
}

// QuotesAfter returns the page of up to limit quotes that follows after in
// newest-first order. A position with a timestamp needs no cached anchor; an
// id-only position whose quote is not cached yields an empty page.
func (s *Store) QuotesAfter(ctx context.Context, after domain.FeedPosition, limit int) ([]domain.Quote, error) {
	if after.IsStart() {
		return s.AllQuotes(ctx, limit)
	}

	if after.CreatedAt.IsZero() {
		var anchor quoteRow
		if err := s.conn(ctx).Select("id", "created_at").Where("id = ?", after.ID).Take(&anchor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []domain.Quote{}, nil
			}

			return nil, fmt.Errorf("loading page cursor: %w", err)
		}

		after.CreatedAt = anchor.Created
	}

	createdAt := after.CreatedAt.UTC()

	query := s.conn(ctx).Model(&quoteRow{}).
		Where("created_at < ? OR (created_at = ? AND id < ?)", createdAt, createdAt, after.ID).
		Order(newestFirst)

	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []quoteRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing cached page: %w", err)
	}

	return quotesFromRows(rows), nil
}

// QuotesByCategory returns up to limit quotes of one category, newest first.
func (s *Store) QuotesByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.Quote, error) {
	return s.listQuotes(ctx, ports.QuoteQuery{Category: category, Limit: limit})
}

// SearchQuotes matches text as a substring of content or author. SQLite's
// LIKE ignores case for ASCII letters.
func (s *Store) SearchQuotes(ctx context.Context, text string) ([]domain.Quote, error) {
	return s.listQuotes(ctx, ports.QuoteQuery{Search: text})
}

func (s *Store) listQuotes(ctx context.Context, q ports.QuoteQuery) ([]domain.Quote, error) {
	query := s.conn(ctx).Model(&quoteRow{}).Order(newestFirst)

	switch {
	case q.Category != "":
		query = query.Where("category = ?", string(q.Category))
	case q.Search != "":
		pattern := "%" + likeEscaper.Replace(q.Search) + "%"
		query = query.Where(`content LIKE ? ESCAPE '\' OR author LIKE ? ESCAPE '\'`, pattern, pattern)
	}

	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var rows []quoteRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing cached quotes: %w", err)
	}

	return quotesFromRows(rows), nil
}

// RandomFeaturedQuote picks one featured quote uniformly at random.
func (s *Store) RandomFeaturedQuote(ctx context.Context) (domain.Quote, error) {
	var row quoteRow

	err := s.conn(ctx).
		Where("is_featured = ?", true).
		Order("RANDOM()").
		Take(&row).Error
	if err != nil {
		return domain.Quote{}, notFound(err, "featured quote", "")
	}

	return row.toDomain(), nil
}

// QuoteByID returns the cached quote or domain.ErrNotFound.
func (s *Store) QuoteByID(ctx context.Context, id string) (domain.Quote, error) {
	var row quoteRow

	if err := s.conn(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return domain.Quote{}, notFound(err, "quote", id)
	}

	return row.toDomain(), nil
}

// QuotesByIDs returns the cached quotes among ids, keeping the order of ids.
func (s *Store) QuotesByIDs(ctx context.Context, ids []string) ([]domain.Quote, error) {
	if len(ids) == 0 {
		return []domain.Quote{}, nil
	}

	var rows []quoteRow
	if err := s.conn(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading cached quotes by id: %w", err)
	}

	byID := make(map[string]quoteRow, len(rows))
	for _, r := range rows {
		byID[r.ID] = r
	}

	quotes := make([]domain.Quote, 0, len(rows))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			quotes = append(quotes, r.toDomain())
		}
	}

	return quotes, nil
}

// WatchQuotes emits the listing now and again after every quote write.
func (s *Store) WatchQuotes(ctx context.Context, query ports.QuoteQuery) (<-chan []domain.Quote, error) {
	return watch(ctx, s.hub, quotesTopic, func(ctx context.Context) ([]domain.Quote, error) {
		return s.listQuotes(ctx, query)
	}, sameQuotes)
}

func sameQuotes(a, b []domain.Quote) bool {
	return reflect.DeepEqual(a, b)
}
