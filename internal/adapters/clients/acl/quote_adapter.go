package acl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

const (
	// QuoteServiceName identifies the quote backend in errors and health checks.
	QuoteServiceName = "quote-backend"

	quotesPath   = "/rest/v1/quotes"
	quotesOrder  = "created_at.desc,id.desc"
	maxIDsPerGet = 100
)

// QuoteAdapterConfig configures a QuoteAdapter.
type QuoteAdapterConfig struct {
	// Client must point at the backend root; paths start with /rest/v1.
	Client *clients.Client
	Logger *slog.Logger
}

// QuoteAdapter implements ports.QuoteSource against a PostgREST quotes table.
type QuoteAdapter struct {
	BaseAdapter

	logger *slog.Logger
}

// NewQuoteAdapter creates the remote quote source. Panics if Client is nil.
func NewQuoteAdapter(cfg QuoteAdapterConfig) *QuoteAdapter {
	if cfg.Client == nil {
		panic("QuoteAdapter: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteAdapter{
		BaseAdapter: NewBaseAdapter(cfg.Client, QuoteServiceName),
		logger:      logger.With(slog.String("component", "acl.QuoteAdapter")),
	}
}

// quoteRecord is a row of the backend quotes table.
type quoteRecord struct {
	ID         string    `json:"id,omitempty"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags,omitempty"`
	Likes      int       `json:"likes"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  Timestamp `json:"created_at,omitzero"`
}

func translateQuote(ext *quoteRecord) (domain.Quote, error) {
	if err := ValidateRequired(ext.ID, "id"); err != nil {
		return domain.Quote{}, err
	}

	return domain.Quote{
		ID:         ext.ID,
		Content:    ext.Content,
		Author:     ext.Author,
		Category:   domain.CategoryOrDefault(ext.Category),
		Tags:       ext.Tags,
		Likes:      ext.Likes,
		IsFeatured: ext.IsFeatured,
		CreatedAt:  ext.CreatedAt.Time,
	}.Normalize(), nil
}

func newQuoteRecord(q domain.Quote) quoteRecord {
	q = q.Normalize()

	return quoteRecord{
		ID:         q.ID,
		Content:    q.Content,
		Author:     q.Author,
		Category:   string(q.Category),
		Tags:       q.Tags,
		Likes:      q.Likes,
		IsFeatured: q.IsFeatured,
		CreatedAt:  Timestamp{Time: q.CreatedAt},
	}
}

// FetchQuotes returns one page, newest first. cursor is the id of the last
// quote already seen; the next page starts strictly after it.
func (a *QuoteAdapter) FetchQuotes(ctx context.Context, limit int, cursor string) ([]domain.Quote, error) {
	query := listQuery(limit)

	if cursor != "" {
		anchor, err := a.cursorAnchor(ctx, cursor)
		if err != nil {
			return nil, err
		}

		ts := quoteFilterValue(anchor.CreatedAt.UTC().Format(time.RFC3339Nano))
		id := quoteFilterValue(anchor.ID)
		query.Set("or", fmt.Sprintf("(created_at.lt.%s,and(created_at.eq.%s,id.lt.%s))", ts, ts, id))
	}

	return a.list(ctx, query, Target{Operation: "fetch quotes", Entity: "quote"})
}

func (a *QuoteAdapter) cursorAnchor(ctx context.Context, cursor string) (domain.Quote, error) {
	query := url.Values{}
	query.Set("select", "id,content,author,category,created_at")
	query.Set("id", "eq."+cursor)
	query.Set("limit", "1")

	quotes, err := a.list(ctx, query, Target{Operation: "resolve page cursor", Entity: "quote", ID: cursor})
	if err != nil {
		return domain.Quote{}, err
	}

	if len(quotes) == 0 {
		return domain.Quote{}, domain.NewNotFoundError("quote", cursor)
	}

	return quotes[0], nil
}

// FetchByCategory returns up to limit quotes of category, newest first.
func (a *QuoteAdapter) FetchByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.Quote, error) {
	query := listQuery(limit)
	query.Set("category", "eq."+string(category))

	return a.list(ctx, query, Target{Operation: "fetch quotes by category", Entity: "quote"})
}

// SearchQuotes runs the content and author matches concurrently and merges
// them, distinct by id and newest first.
func (a *QuoteAdapter) SearchQuotes(ctx context.Context, text string) ([]domain.Quote, error) {
	pattern := searchPattern(text)
	if pattern == "" {
		return []domain.Quote{}, nil
	}

	var byContent, byAuthor []domain.Quote

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query := listQuery(0)
		query.Set("content", "ilike."+pattern)

		var err error
		byContent, err = a.list(gctx, query, Target{Operation: "search quotes by content", Entity: "quote"})

		return err
	})

	g.Go(func() error {
		query := listQuery(0)
		query.Set("author", "ilike."+pattern)

		var err error
		byAuthor, err = a.list(gctx, query, Target{Operation: "search quotes by author", Entity: "quote"})

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := mergeDistinct(byContent, byAuthor)

	logging.FromContext(ctx).DebugContext(ctx, "merged remote search",
		slog.Int("content_matches", len(byContent)),
		slog.Int("author_matches", len(byAuthor)),
		slog.Int("distinct", len(merged)))

	return merged, nil
}

// FetchFeatured returns the newest featured quote.
func (a *QuoteAdapter) FetchFeatured(ctx context.Context) (domain.Quote, error) {
	query := listQuery(1)
	query.Set("is_featured", "eq.true")

	quotes, err := a.list(ctx, query, Target{Operation: "fetch featured quote", Entity: "featured quote"})
	if err != nil {
		return domain.Quote{}, err
	}

	if len(quotes) == 0 {
		return domain.Quote{}, domain.NewNotFoundError("featured quote", "")
	}

	return quotes[0], nil
}

// FetchQuoteByID returns the quote or domain.ErrNotFound.
func (a *QuoteAdapter) FetchQuoteByID(ctx context.Context, id string) (domain.Quote, error) {
	if err := ValidateRequired(id, "id"); err != nil {
		return domain.Quote{}, err
	}

	query := listQuery(1)
	query.Set("id", "eq."+id)

	quotes, err := a.list(ctx, query, Target{Operation: "fetch quote", Entity: "quote", ID: id})
	if err != nil {
		return domain.Quote{}, err
	}

	if len(quotes) == 0 {
		return domain.Quote{}, domain.NewNotFoundError("quote", id)
	}

	return quotes[0], nil
}

// FetchQuotesByIDs loads the quotes that exist among ids in chunks that keep
// the query string short.
func (a *QuoteAdapter) FetchQuotesByIDs(ctx context.Context, ids []string) ([]domain.Quote, error) {
	quotes := make([]domain.Quote, 0, len(ids))

	for chunk := range slices.Chunk(ids, maxIDsPerGet) {
		values := make([]string, len(chunk))
		for i, id := range chunk {
			values[i] = quoteFilterValue(id)
		}

		query := listQuery(0)
		query.Set("id", "in.("+strings.Join(values, ",")+")")

		page, err := a.list(ctx, query, Target{Operation: "fetch quotes by id", Entity: "quote"})
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, page...)
	}

	return quotes, nil
}

// CreateQuotes inserts quotes and returns the stored rows with their ids.
func (a *QuoteAdapter) CreateQuotes(ctx context.Context, quotes []domain.Quote) ([]domain.Quote, error) {
	if len(quotes) == 0 {
		return []domain.Quote{}, nil
	}

	records := make([]quoteRecord, 0, len(quotes))

	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			return nil, err
		}

		records = append(records, newQuoteRecord(q))
	}

	header := http.Header{}
	header.Set("Prefer", "return=representation")

	body, err := a.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   quotesPath,
		Body:   records,
		Header: header,
		Target: Target{Operation: "create quotes", Entity: "quote"},
	})
	if err != nil {
		return nil, err
	}

	created, err := DecodeResponseForService[[]quoteRecord](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	a.logger.InfoContext(ctx, "created remote quotes", slog.Int("count", len(*created)))

	return TranslateSlice(*created, translateQuote)
}

// Name implements ports.HealthChecker.
func (a *QuoteAdapter) Name() string {
	return QuoteServiceName
}

// Check implements ports.HealthChecker with the cheapest possible read.
func (a *QuoteAdapter) Check(ctx context.Context) error {
	query := url.Values{}
	query.Set("select", "id")
	query.Set("limit", "1")

	body, err := a.Get(ctx, quotesPath+"?"+query.Encode(), Target{Operation: "health check", Entity: "quote"})
	if err != nil {
		return err
	}

	Discard(body)

	return nil
}

func (a *QuoteAdapter) list(ctx context.Context, query url.Values, target Target) ([]domain.Quote, error) {
	body, err := a.Get(ctx, quotesPath+"?"+query.Encode(), target)
	if err != nil {
		return nil, err
	}

	records, err := DecodeResponseForService[[]quoteRecord](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	quotes, err := TranslateSlice(*records, translateQuote)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	return quotes, nil
}

func listQuery(limit int) url.Values {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", quotesOrder)

	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	return query
}

// searchPattern builds the value of a simple ilike filter. '*' is the backend
// wildcard and cannot be escaped, so it is dropped from the text. Simple
// filters take the value verbatim: it must not be double-quoted, or the
// quotes become part of the pattern.
func searchPattern(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "*", ""))
	if text == "" {
		return ""
	}

	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(text)

	return "*" + escaped + "*"
}

// quoteFilterValue double-quotes a value inside an in.(...) list or an or=(...)
// tree, where commas, dots and parentheses are part of the grammar.
func quoteFilterValue(v string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v) + `"`
}

func mergeDistinct(lists ...[]domain.Quote) []domain.Quote {
	seen := make(map[string]struct{})
	merged := make([]domain.Quote, 0)

	for _, list := range lists {
		for _, q := range list {
			if _, ok := seen[q.ID]; ok {
				continue
			}

			seen[q.ID] = struct{}{}
			merged = append(merged, q)
		}
	}

	slices.SortStableFunc(merged, func(a, b domain.Quote) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.ID, a.ID)
	})

	return merged
}
