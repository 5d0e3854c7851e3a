package sqlite

import (
	"time"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

type quoteRow struct {
	ID          string    `gorm:"primaryKey"`
	Content     string    `gorm:"not null"`
	Author      string    `gorm:"not null;index"`
	Category    string    `gorm:"not null;index"`
	Tags        []string  `gorm:"serializer:json"`
	Likes       int       `gorm:"not null"`
	IsFeatured  bool      `gorm:"not null;index"`
	Created     time.Time `gorm:"column:created_at;not null;index"`
	LastUpdated time.Time `gorm:"not null"`
}

func (quoteRow) TableName() string { return "quotes" }

func newQuoteRow(q domain.Quote, now time.Time) quoteRow {
	q = q.Normalize()

	return quoteRow{
		ID:          q.ID,
		Content:     q.Content,
		Author:      q.Author,
		Category:    string(q.Category),
		Tags:        q.Tags,
		Likes:       q.Likes,
		IsFeatured:  q.IsFeatured,
		Created:     q.CreatedAt,
		LastUpdated: now,
	}
}

func (r quoteRow) toDomain() domain.Quote {
	return domain.Quote{
		ID:         r.ID,
		Content:    r.Content,
		Author:     r.Author,
		Category:   domain.CategoryOrDefault(r.Category),
		Tags:       r.Tags,
		Likes:      r.Likes,
		IsFeatured: r.IsFeatured,
		CreatedAt:  r.Created.UTC(),
	}
}

func quotesFromRows(rows []quoteRow) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(rows))
	for _, r := range rows {
		quotes = append(quotes, r.toDomain())
	}

	return quotes
}

type favoriteRow struct {
	UserID  string    `gorm:"primaryKey"`
	QuoteID string    `gorm:"primaryKey"`
	AddedAt time.Time `gorm:"not null;index"`
}

func (favoriteRow) TableName() string { return "favorites" }

type collectionRow struct {
	ID            string    `gorm:"primaryKey"`
	UserID        string    `gorm:"not null;index"`
	Name          string    `gorm:"not null"`
	Description   string    `gorm:"not null"`
	QuoteIDs      []string  `gorm:"serializer:json"`
	IsPublic      bool      `gorm:"not null"`
	CoverImageURL string    `gorm:"not null"`
	Created       time.Time `gorm:"column:created_at;not null;index"`
	LastUpdated   time.Time `gorm:"not null"`
}

func (collectionRow) TableName() string { return "collections" }

func newCollectionRow(c domain.Collection, now time.Time) collectionRow {
	return collectionRow{
		ID:            c.ID,
		UserID:        c.UserID,
		Name:          c.Name,
		Description:   c.Description,
		QuoteIDs:      c.QuoteIDs,
		IsPublic:      c.IsPublic,
		CoverImageURL: c.CoverImageURL,
		Created:       c.CreatedAt.UTC(),
		LastUpdated:   now,
	}
}

func (r collectionRow) toDomain() domain.Collection {
	return domain.Collection{
		ID:            r.ID,
		UserID:        r.UserID,
		Name:          r.Name,
		Description:   r.Description,
		QuoteIDs:      r.QuoteIDs,
		IsPublic:      r.IsPublic,
		CoverImageURL: r.CoverImageURL,
		CreatedAt:     r.Created.UTC(),
	}
}
