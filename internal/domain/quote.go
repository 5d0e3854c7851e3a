package domain

import (
	"strings"
	"time"
)

// Quote is a single quotation as the vault knows it.
// It has no knowledge of the backend or cache that produced it.
type Quote struct {
	// ID is assigned by the remote backend. It is empty only for EmptyQuote.
	ID string

	Content string
	Author  string

	Category Category

	// Tags are optional free-form labels.
	Tags []string

	// Likes is never negative.
	Likes int

	// IsFeatured marks the quote as eligible for quote of the day.
	IsFeatured bool

	// CreatedAt is always UTC.
	CreatedAt time.Time
}

// EmptyQuote is the zero quote, used where a UI needs a placeholder.
var EmptyQuote = Quote{Category: CategoryMotivation}

// IsEmpty reports whether q is the placeholder quote.
func (q Quote) IsEmpty() bool {
	return q.ID == ""
}

// Normalize trims text fields, clamps likes and forces UTC.
func (q Quote) Normalize() Quote {
	q.Content = strings.TrimSpace(q.Content)
	q.Author = strings.TrimSpace(q.Author)

	if q.Likes < 0 {
		q.Likes = 0
	}

	if !q.Category.Valid() {
		q.Category = CategoryMotivation
	}

	if !q.CreatedAt.IsZero() {
		q.CreatedAt = q.CreatedAt.UTC()
	}

	return q
}

// Validate checks the fields a new quote must carry before it is seeded.
func (q Quote) Validate() error {
	if strings.TrimSpace(q.Content) == "" {
		return NewValidationError("content", "must not be empty")
	}

	if strings.TrimSpace(q.Author) == "" {
		return NewValidationError("author", "must not be empty")
	}

	if q.Likes < 0 {
		return NewValidationErrorWithValue("likes", "must not be negative", q.Likes)
	}

	return nil
}

// MatchesText reports whether text occurs in the content or author, ignoring case.
func (q Quote) MatchesText(text string) bool {
	needle := strings.ToLower(text)

	return strings.Contains(strings.ToLower(q.Content), needle) ||
		strings.Contains(strings.ToLower(q.Author), needle)
}

// QuoteIDs returns the ids of quotes in order.
func QuoteIDs(quotes []Quote) []string {
	ids := make([]string, 0, len(quotes))
	for _, q := range quotes {
		ids = append(ids, q.ID)
	}

	return ids
}

// FeedPosition is a quote's place in the newest-first feed. A zero CreatedAt
// means only the id is known and the position must be looked up.
type FeedPosition struct {
	CreatedAt time.Time
	ID        string
}

// PositionOf returns the feed position of q.
func PositionOf(q Quote) FeedPosition {
	return FeedPosition{CreatedAt: q.CreatedAt.UTC(), ID: q.ID}
}

// IsStart reports whether p is the start of the feed.
func (p FeedPosition) IsStart() bool {
	return p.ID == ""
}
