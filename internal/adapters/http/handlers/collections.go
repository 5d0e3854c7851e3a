package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/app"
)

// CollectionHandler serves the signed-in user's collections.
type CollectionHandler struct {
	repo *app.QuoteRepository
}

// NewCollectionHandler creates a collection handler.
func NewCollectionHandler(repo *app.QuoteRepository) *CollectionHandler {
	return &CollectionHandler{repo: repo}
}

// ListCollections handles GET /api/v1/collections.
func (h *CollectionHandler) ListCollections(c *gin.Context) {
	collections, err := h.repo.GetUserCollections(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewList(dto.FromCollections(collections)))
}

// CreateCollection handles POST /api/v1/collections.
//
// @Summary Create a collection
// @Tags collections
// @Accept json
// @Produce json
// @Param body body dto.CreateCollectionRequest true "Collection"
// @Success 201 {object} dto.CollectionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/collections [post]
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var req dto.CreateCollectionRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	created, err := h.repo.CreateCollection(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromCollection(created))
}

// AddQuote handles PUT /api/v1/collections/:id/quotes/:quoteId.
func (h *CollectionHandler) AddQuote(c *gin.Context) {
	edited, err := h.repo.AddToCollection(c.Request.Context(), c.Param("id"), c.Param("quoteId"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCollection(edited))
}

// RemoveQuote handles DELETE /api/v1/collections/:id/quotes/:quoteId.
func (h *CollectionHandler) RemoveQuote(c *gin.Context) {
	edited, err := h.repo.RemoveFromCollection(c.Request.Context(), c.Param("id"), c.Param("quoteId"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCollection(edited))
}

// RegisterCollectionRoutes registers the collection routes on rg, which must
// already require a session.
func (h *CollectionHandler) RegisterCollectionRoutes(rg *gin.RouterGroup) {
	collections := rg.Group("/collections")
	collections.GET("", h.ListCollections)
	collections.POST("", h.CreateCollection)
	collections.PUT("/:id/quotes/:quoteId", h.AddQuote)
	collections.DELETE("/:id/quotes/:quoteId", h.RemoveQuote)
}
