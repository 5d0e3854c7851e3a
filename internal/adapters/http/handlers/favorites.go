package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/app"
)

const defaultHeartbeat = 25 * time.Second

// FavoritesHandler serves the signed-in user's favorites.
type FavoritesHandler struct {
	repo      *app.QuoteRepository
	heartbeat time.Duration
	draining  <-chan struct{}
}

// NewFavoritesHandler creates a favorites handler. Streams send a comment
// line every heartbeat so idle proxies keep the connection open; a zero
// heartbeat uses 25s. Open streams end when draining is closed; it may be
// nil.
func NewFavoritesHandler(repo *app.QuoteRepository, heartbeat time.Duration, draining <-chan struct{}) *FavoritesHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}

	return &FavoritesHandler{repo: repo, heartbeat: heartbeat, draining: draining}
}

// ListFavoriteQuotes handles GET /api/v1/favorites.
func (h *FavoritesHandler) ListFavoriteQuotes(c *gin.Context) {
	quotes, err := h.repo.GetFavoriteQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewList(dto.FromQuotes(quotes)))
}

// ListFavoriteIDs handles GET /api/v1/favorites/ids.
func (h *FavoritesHandler) ListFavoriteIDs(c *gin.Context) {
	ids, err := h.repo.GetUserFavorites(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFavoriteIDs(ids))
}

// StreamFavorites handles GET /api/v1/favorites/stream.
// It sends a "favorites" server-sent event with the full id set on connect
// and after every change, until the client goes away or the server drains.
//
// @Summary Stream favorite ids
// @Tags favorites
// @Produce text/event-stream
// @Success 200 {object} dto.FavoriteIDsResponse "One event per snapshot"
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/favorites/stream [get]
func (h *FavoritesHandler) StreamFavorites(c *gin.Context) {
	ctx := c.Request.Context()

	snapshots, err := h.repo.WatchUserFavorites(ctx)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	// The server's write timeout would otherwise cut the stream.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case ids, ok := <-snapshots:
			if !ok {
				return false
			}

			c.SSEvent("favorites", dto.NewFavoriteIDs(ids))

			return true
		case <-heartbeat.C:
			_, err := io.WriteString(w, ": ping\n\n")
			return err == nil
		case <-ctx.Done():
			return false
		case <-h.draining:
			return false
		}
	})
}

// AddFavorite handles PUT /api/v1/favorites/:quoteId. Adding an existing
// favorite succeeds.
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	if err := h.repo.AddToFavorites(c.Request.Context(), c.Param("quoteId")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /api/v1/favorites/:quoteId.
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	if err := h.repo.RemoveFromFavorites(c.Request.Context(), c.Param("quoteId")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterFavoriteRoutes registers the favorites routes on rg, which must
// already require a session.
func (h *FavoritesHandler) RegisterFavoriteRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	favorites.GET("", h.ListFavoriteQuotes)
	favorites.GET("/ids", h.ListFavoriteIDs)
	favorites.GET("/stream", h.StreamFavorites)
	favorites.PUT("/:quoteId", h.AddFavorite)
	favorites.DELETE("/:quoteId", h.RemoveFavorite)
}
