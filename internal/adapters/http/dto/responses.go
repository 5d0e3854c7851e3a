package dto

import (
	"time"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// QuoteResponse is a quote as the API shows it.
type QuoteResponse struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"categoryLabel"`
	CategoryEmoji string    `json:"categoryEmoji"`
	Tags          []string  `json:"tags,omitempty"`
	Likes         int       `json:"likes"`
	IsFeatured    bool      `json:"isFeatured"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromQuote converts a domain quote.
func FromQuote(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		Content:       q.Content,
		Author:        q.Author,
		Category:      q.Category.String(),
		CategoryLabel: q.Category.Label(),
		CategoryEmoji: q.Category.Emoji(),
		Tags:          q.Tags,
		Likes:         q.Likes,
		IsFeatured:    q.IsFeatured,
		CreatedAt:     q.CreatedAt.UTC(),
	}
}

// FromQuotes converts a list; the result is never nil.
func FromQuotes(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}

	return out
}

// QuoteCursor is the feed position after q.
func QuoteCursor(q QuoteResponse) CursorData {
	return CursorData{CreatedAt: q.CreatedAt, ID: q.ID}
}

// CategoryResponse describes one category.
type CategoryResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// FromCategories lists categories in display order.
func FromCategories(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryResponse{Name: c.String(), Label: c.Label(), Emoji: c.Emoji()}
	}

	return out
}

// UserResponse is the signed-in user.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// FromUser converts a domain user.
func FromUser(u domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		CreatedAt:   u.CreatedAt,
	}
}

// SessionResponse is returned by sign in and sign up.
type SessionResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time    `json:"expiresAt,omitzero"`
	User         UserResponse `json:"user"`
}

// FromSession converts a domain session.
func FromSession(s domain.Session) SessionResponse {
	return SessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
		User:         FromUser(s.User),
	}
}

// SignUpResponse carries a session, or tells the client to wait for the
// confirmation email.
type SignUpResponse struct {
	Session              *SessionResponse `json:"session,omitempty"`
	ConfirmationRequired bool             `json:"confirmationRequired"`
}

// FavoriteIDsResponse is the favorite id snapshot; it is also the payload of
// every favorites stream event.
type FavoriteIDsResponse struct {
	QuoteIDs []string `json:"quoteIds"`
}

// NewFavoriteIDs wraps ids; the list is never nil.
func NewFavoriteIDs(ids []string) FavoriteIDsResponse {
	if ids == nil {
		ids = []string{}
	}

	return FavoriteIDsResponse{QuoteIDs: ids}
}

// CollectionResponse is a user collection.
type CollectionResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	QuoteIDs      []string  `json:"quoteIds"`
	IsPublic      bool      `json:"isPublic"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

// FromCollection converts a domain collection.
func FromCollection(c domain.Collection) CollectionResponse {
	ids := c.QuoteIDs
	if ids == nil {
		ids = []string{}
	}

	return CollectionResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		QuoteIDs:      ids,
		IsPublic:      c.IsPublic,
		CoverImageURL: c.CoverImageURL,
		CreatedAt:     c.CreatedAt,
	}
}

// FromCollections converts a list; the result is never nil.
func FromCollections(collections []domain.Collection) []CollectionResponse {
	out := make([]CollectionResponse, len(collections))
	for i, c := range collections {
		out[i] = FromCollection(c)
	}

	return out
}

// SeedResponse reports the quotes an admin seed created.
type SeedResponse struct {
	Created int             `json:"created"`
	Quotes  []QuoteResponse `json:"quotes"`
}

// RefreshResponse reports a cache warm-up.
type RefreshResponse struct {
	Tasks  int `json:"tasks"`
	Failed int `json:"failed"`
	Quotes int `json:"quotes"`
}

// ListResponse wraps an unpaged list.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// NewList wraps items; the list is never nil.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	return ListResponse[T]{Items: items}
}
