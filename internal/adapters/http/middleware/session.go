package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	reqctx "github.com/jsamuelsen/quotevault/internal/app/context"
	"github.com/jsamuelsen/quotevault/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

// HeaderAPIKey carries the admin API key.
const HeaderAPIKey = "X-API-Key"

// Session puts the caller's bearer token into the request context for the
// auth adapter to forward, then opens the request-scoped memo so the current
// user is resolved at most once per request. Anonymous requests pass.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if token := bearerToken(c.GetHeader("Authorization")); token != "" {
			ctx = ports.WithSessionToken(ctx, &ports.SessionToken{AccessToken: token})
		}

		ctx = reqctx.WithContext(ctx, reqctx.New(ctx))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSession rejects requests without a bearer token before any
// backend call is made. Whether the token is still valid is for the
// repository to find out.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ports.SessionTokenFromContext(c.Request.Context()) == nil {
			dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, "sign in required")
			return
		}

		c.Next()
	}
}

// RequireAPIKey guards admin routes. With an empty key the routes answer
// 404 as if they did not exist.
func RequireAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			dto.AbortWithCode(c, dto.ErrorCodeAdminDisabled, "admin endpoints are disabled")
			return
		}

		given := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
			dto.AbortWithCode(c, dto.ErrorCodeForbidden, "invalid API key")
			return
		}

		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
