package dto

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// SignInRequest is the body of POST /auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest is the body of POST /auth/sign-up.
type SignUpRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"notempty,max=80"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// QuoteListRequest is the query of GET /quotes.
type QuoteListRequest struct {
	PageRequest

	Category string `form:"category" json:"category" validate:"omitempty,category"`
}

// SearchRequest is the query of GET /quotes/search.
type SearchRequest struct {
	Q string `form:"q" json:"q" validate:"max=200"`
}

// CreateCollectionRequest is the body of POST /collections.
type CreateCollectionRequest struct {
	Name          string   `json:"name"          validate:"notempty,max=100"`
	Description   string   `json:"description"   validate:"max=500"`
	IsPublic      bool     `json:"isPublic"`
	CoverImageURL string   `json:"coverImageUrl" validate:"omitempty,url"`
	QuoteIDs      []string `json:"quoteIds"      validate:"max=500,dive,notempty"`
}

// ToDomain converts the request to a new collection.
func (r CreateCollectionRequest) ToDomain() domain.Collection {
	return domain.Collection{
		Name:          r.Name,
		Description:   r.Description,
		IsPublic:      r.IsPublic,
		CoverImageURL: r.CoverImageURL,
		QuoteIDs:      r.QuoteIDs,
	}
}

// SeedQuote is one quote of a seed request.
type SeedQuote struct {
	Content    string   `json:"content"    validate:"notempty,max=1000"`
	Author     string   `json:"author"     validate:"notempty,max=200"`
	Category   string   `json:"category"   validate:"omitempty,category"`
	Tags       []string `json:"tags"       validate:"max=20"`
	IsFeatured bool     `json:"isFeatured"`
}

// SeedRequest is the body of POST /admin/seed.
type SeedRequest struct {
	Quotes []SeedQuote `json:"quotes" validate:"required,min=1,max=500,dive"`
}

// Validate rejects a seed that repeats a quote.
func (r SeedRequest) Validate() error {
	seen := make(map[string]struct{}, len(r.Quotes))

	for _, q := range r.Quotes {
		key := strings.ToLower(strings.TrimSpace(q.Content)) + "\x00" + strings.ToLower(strings.TrimSpace(q.Author))
		if _, dup := seen[key]; dup {
			return domain.NewValidationErrorWithValue("quotes", "contains a duplicate quote", q.Content)
		}

		seen[key] = struct{}{}
	}

	return nil
}

// ToDomain converts the seed to quotes without ids.
func (r SeedRequest) ToDomain() []domain.Quote {
	quotes := make([]domain.Quote, len(r.Quotes))

	for i, q := range r.Quotes {
		quotes[i] = domain.Quote{
			Content:    q.Content,
			Author:     q.Author,
			Category:   domain.CategoryOrDefault(q.Category),
			Tags:       q.Tags,
			IsFeatured: q.IsFeatured,
		}
	}

	return quotes
}

// RespondWithBindError answers a request that failed BindAndValidate,
// BindQueryAndValidate or ValidateAll.
func RespondWithBindError(c *gin.Context, err error) {
	switch {
	case IsValidationError(err):
		RespondWithValidationErrors(c, ValidationErrors(err))
	case domain.IsValidation(err):
		HandleError(c, err)
	case errors.Is(err, ErrBinding):
		c.JSON(HTTPStatusFromCode(ErrorCodeBadRequest),
			NewErrorResponse(ErrorCodeBadRequest, "malformed request").WithTraceID(GetTraceID(c)))
	default:
		HandleError(c, err)
	}
}
