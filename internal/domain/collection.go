package domain

import (
	"slices"
	"strings"
	"time"
)

// Collection is a user-curated, ordered list of quotes.
type Collection struct {
	ID            string
	Name          string
	Description   string
	UserID        string
	QuoteIDs      []string
	IsPublic      bool
	CreatedAt     time.Time
	CoverImageURL string
}

// Validate checks the fields a new collection must carry.
func (c Collection) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}

	return nil
}

// WithQuote returns a copy with quoteID appended unless already present.
func (c Collection) WithQuote(quoteID string) Collection {
	if slices.Contains(c.QuoteIDs, quoteID) {
		return c
	}

	c.QuoteIDs = append(slices.Clone(c.QuoteIDs), quoteID)

	return c
}

// WithoutQuote returns a copy with quoteID removed.
func (c Collection) WithoutQuote(quoteID string) Collection {
	c.QuoteIDs = slices.DeleteFunc(slices.Clone(c.QuoteIDs), func(id string) bool {
		return id == quoteID
	})

	return c
}
