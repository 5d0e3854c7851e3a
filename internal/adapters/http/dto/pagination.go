package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// Page size limits of the quote feed.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrInvalidCursor is returned when a cursor cannot be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// PageRequest is the paging part of a listing query.
type PageRequest struct {
	// Cursor is an opaque string from a previous page's nextCursor.
	Cursor string `form:"cursor" json:"cursor"`

	Limit int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns the limit with defaults applied.
func (p PageRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return min(p.Limit, MaxLimit)
}

// After returns the feed position of the last quote of the previous page, or
// the start of the feed for the first page.
func (p PageRequest) After() (domain.FeedPosition, error) {
	if p.Cursor == "" {
		return domain.FeedPosition{}, nil
	}

	cursor, err := DecodeCursor(p.Cursor)
	if err != nil {
		return domain.FeedPosition{}, err
	}

	return domain.FeedPosition{CreatedAt: cursor.CreatedAt.UTC(), ID: cursor.ID}, nil
}

// Page is one page of a listing.
type Page[T any] struct {
	Items []T `json:"items"`

	// NextCursor is empty on the last page.
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// NewPage builds a page. A full page may have a successor; the client learns
// otherwise when the next page comes back empty.
func NewPage[T any](items []T, limit int, cursorOf func(T) CursorData) *Page[T] {
	if items == nil {
		items = []T{}
	}

	page := &Page[T]{Items: items}

	if limit > 0 && len(items) >= limit && cursorOf != nil {
		page.HasMore = true
		page.NextCursor = EncodeCursor(cursorOf(items[len(items)-1]))
	}

	return page
}

// CursorData is the position of a quote in newest-first order.
type CursorData struct {
	CreatedAt time.Time `json:"c"`
	ID        string    `json:"id"`
}

// EncodeCursor encodes a cursor as URL-safe base64 JSON.
func EncodeCursor(data CursorData) string {
	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor reverses EncodeCursor.
func DecodeCursor(encoded string) (CursorData, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return CursorData{}, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(raw, &data); err != nil || data.ID == "" {
		return CursorData{}, ErrInvalidCursor
	}

	return data, nil
}
