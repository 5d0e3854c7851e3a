package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotevault/internal/app"
)

// AuthHandler passes credential flows through to the auth provider.
type AuthHandler struct {
	repo *app.QuoteRepository
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(repo *app.QuoteRepository) *AuthHandler {
	return &AuthHandler{repo: repo}
}

// SignIn handles POST /api/v1/auth/sign-in.
//
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	session, err := h.repo.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSession(*session))
}

// SignUp handles POST /api/v1/auth/sign-up. When the provider wants the
// email confirmed first, no session is returned.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	session, err := h.repo.SignUp(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := dto.SignUpResponse{ConfirmationRequired: session == nil}
	if session != nil {
		s := dto.FromSession(*session)
		resp.Session = &s
	}

	c.JSON(http.StatusCreated, resp)
}

// SignOut handles POST /api/v1/auth/sign-out.
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.repo.SignOut(c.Request.Context()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ResetPassword handles POST /api/v1/auth/reset-password. It answers 202
// whether or not the address has an account.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	if err := h.repo.ResetPassword(c.Request.Context(), req.Email); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

// Me handles GET /api/v1/me.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.repo.CurrentUser(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(*user))
}

// RegisterAuthRoutes registers the auth routes on rg.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/sign-in", h.SignIn)
	auth.POST("/sign-up", h.SignUp)
	auth.POST("/reset-password", h.ResetPassword)
	auth.POST("/sign-out", middleware.RequireSession(), h.SignOut)

	rg.GET("/me", middleware.RequireSession(), h.Me)
}
