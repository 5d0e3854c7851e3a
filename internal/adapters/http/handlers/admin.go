package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/app"
	"github.com/jsamuelsen/quotevault/internal/domain"
)

// DailyRunner runs the quote of the day job on demand.
type DailyRunner interface {
	RunNow(ctx context.Context) (domain.Quote, error)
}

// AdminHandler serves operator endpoints: seeding, cache refresh and manual
// daily quote runs.
type AdminHandler struct {
	repo  *app.QuoteRepository
	daily DailyRunner
}

// NewAdminHandler creates an admin handler. daily may be nil when the job
// is disabled; its route then answers 404.
func NewAdminHandler(repo *app.QuoteRepository, daily DailyRunner) *AdminHandler {
	return &AdminHandler{repo: repo, daily: daily}
}

// Seed handles POST /api/v1/admin/seed.
//
// @Summary Seed quotes
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.SeedRequest true "Quotes to create"
// @Success 201 {object} dto.SeedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/seed [post]
func (h *AdminHandler) Seed(c *gin.Context) {
	var req dto.SeedRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	created, err := h.repo.SeedQuotes(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SeedResponse{
		Created: len(created),
		Quotes:  dto.FromQuotes(created),
	})
}

// Refresh handles POST /api/v1/admin/refresh.
func (h *AdminHandler) Refresh(c *gin.Context) {
	result, err := h.repo.Refresh(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		Tasks:  result.Tasks,
		Failed: result.Failed,
		Quotes: result.Quotes,
	})
}

// RunDaily handles POST /api/v1/admin/daily/run.
func (h *AdminHandler) RunDaily(c *gin.Context) {
	if h.daily == nil {
		dto.AbortWithCode(c, dto.ErrorCodeNotFound, "daily quote job is disabled")
		return
	}

	quote, err := h.daily.RunNow(c.Request.Context())
	if errors.Is(err, app.ErrJobBusy) {
		dto.AbortWithCode(c, dto.ErrorCodeJobBusy, err.Error())
		return
	}

	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuote(quote))
}

// RegisterAdminRoutes registers the admin routes on rg, which must already
// be guarded by the API key middleware.
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.POST("/seed", h.Seed)
	admin.POST("/refresh", h.Refresh)
	admin.POST("/daily/run", h.RunDaily)
}
