// Package middleware provides the gin middleware of the quote API.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

const (
	// HeaderRequestID identifies one request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID tracks a whole client transaction across services.
	HeaderCorrelationID = "X-Correlation-ID"

	ContextKeyRequestID     = "request_id"
	ContextKeyCorrelationID = "correlation_id"
)

type ctxKey string

const (
	ctxKeyRequestID     ctxKey = "request_id"
	ctxKeyCorrelationID ctxKey = "correlation_id"
)

// RequestIDFromContext returns the request id the backend client forwards,
// or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// CorrelationIDFromContext returns the correlation id, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyCorrelationID).(string)
	return id
}

// ContextWithRequestID stores a request id in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation id in ctx.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

type idSpec struct {
	header string
	key    string
	attach func(context.Context, string) context.Context
	log    func(context.Context, string) context.Context
}

// RequestID takes X-Request-ID from the caller or generates one.
func RequestID() gin.HandlerFunc {
	return propagateID(idSpec{
		header: HeaderRequestID,
		key:    ContextKeyRequestID,
		attach: ContextWithRequestID,
		log:    logging.WithRequestID,
	})
}

// CorrelationID takes X-Correlation-ID from the caller or starts a new one.
func CorrelationID() gin.HandlerFunc {
	return propagateID(idSpec{
		header: HeaderCorrelationID,
		key:    ContextKeyCorrelationID,
		attach: ContextWithCorrelationID,
		log:    logging.WithCorrelationID,
	})
}

// propagateID echoes the id in the response, stores it on the gin context,
// on the request context for outbound calls, and on the request logger.
func propagateID(s idSpec) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(s.header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(s.key, id)
		c.Header(s.header, id)

		ctx := s.log(s.attach(c.Request.Context(), id), id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID returns the request id, or "" before RequestID ran.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation id, or "".
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}
