package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/app"
	"github.com/jsamuelsen/quotevault/internal/domain"
)

// QuoteHandler serves the quote feed, search, quote of the day and categories.
type QuoteHandler struct {
	repo *app.QuoteRepository
}

// NewQuoteHandler creates a quote handler.
func NewQuoteHandler(repo *app.QuoteRepository) *QuoteHandler {
	return &QuoteHandler{repo: repo}
}

// ListQuotes handles GET /api/v1/quotes.
// Without a category it pages through the feed newest first; with one it
// returns the first page of that category.
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param cursor query string false "nextCursor of the previous page"
// @Param category query string false "Category name"
// @Success 200 {object} dto.Page[dto.QuoteResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var req dto.QuoteListRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	limit := req.GetLimit()

	if req.Category != "" {
		category, err := domain.ParseCategory(req.Category)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		quotes, err := h.repo.GetQuotesByCategory(ctx, category, limit)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.NewPage(dto.FromQuotes(quotes), limit, nil))

		return
	}

	after, err := req.After()
	if err != nil {
		dto.HandleError(c, domain.NewValidationError("cursor", "malformed cursor"))
		return
	}

	quotes, err := h.repo.GetQuotesAfter(ctx, limit, after)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(dto.FromQuotes(quotes), limit, dto.QuoteCursor))
}

// SearchQuotes handles GET /api/v1/quotes/search?q=.
// The text matches content or author, ignoring case. A blank query returns
// no quotes.
func (h *QuoteHandler) SearchQuotes(c *gin.Context) {
	var req dto.SearchRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	quotes, err := h.repo.SearchQuotes(c.Request.Context(), req.Q)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewList(dto.FromQuotes(quotes)))
}

// GetQuoteOfTheDay handles GET /api/v1/quotes/daily.
//
// @Summary Quote of the day
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse "No featured quote"
// @Router /api/v1/quotes/daily [get]
func (h *QuoteHandler) GetQuoteOfTheDay(c *gin.Context) {
	quote, err := h.repo.GetQuoteOfTheDay(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuote(quote))
}

// GetQuoteByID handles GET /api/v1/quotes/:id.
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	quote, err := h.repo.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuote(quote))
}

// ListCategories handles GET /api/v1/categories.
func (h *QuoteHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewList(dto.FromCategories(domain.Categories())))
}

// RegisterQuoteRoutes registers the quote routes on rg.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.GET("/search", h.SearchQuotes)
	quotes.GET("/daily", h.GetQuoteOfTheDay)
	quotes.GET("/:id", h.GetQuoteByID)

	rg.GET("/categories", h.ListCategories)
}
