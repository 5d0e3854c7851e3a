// Package dto holds the JSON shapes of the HTTP API and the mapping from
// domain errors to error responses.
package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

// ContextKeyTraceID is the gin context key a trace id may be stored under.
const ContextKeyTraceID = "trace_id"

// ErrorResponse is the envelope of every error response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is machine-readable, e.g. "NOT_FOUND".
	Code string `json:"code"`

	Message string `json:"message"`

	// Details carries field-level messages for validation errors and the
	// reason of a rejected credential flow.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes.
const (
	ErrorCodeNotFound      = "NOT_FOUND"
	ErrorCodeConflict      = "CONFLICT"
	ErrorCodeValidation    = "VALIDATION_ERROR"
	ErrorCodeForbidden     = "FORBIDDEN"
	ErrorCodeUnauthorized  = "UNAUTHORIZED"
	ErrorCodeAuthFailed    = "AUTH_FAILED"
	ErrorCodeUnavailable   = "SERVICE_UNAVAILABLE"
	ErrorCodeInternal      = "INTERNAL_ERROR"
	ErrorCodeTimeout       = "TIMEOUT"
	ErrorCodeBadRequest    = "BAD_REQUEST"
	ErrorCodeJobBusy       = "JOB_BUSY"
	ErrorCodeAdminDisabled = "ADMIN_DISABLED"
)

// NewErrorResponse creates an error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID sets the trace id.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound, ErrorCodeAdminDisabled:
		return http.StatusNotFound
	case ErrorCodeConflict, ErrorCodeJobBusy:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeUnauthorized, ErrorCodeAuthFailed:
		return http.StatusUnauthorized
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError maps err to a status code and error response. Errors
// outside the domain taxonomy get a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	code := ErrorCodeInternal
	message := "an internal error occurred"

	var details map[string]string

	switch {
	case domain.IsNotAuthenticated(err):
		code, message = ErrorCodeUnauthorized, "sign in required"
	case domain.IsAuth(err):
		code, message = ErrorCodeAuthFailed, err.Error()

		var authErr *domain.AuthError
		if errors.As(err, &authErr) {
			details = map[string]string{"reason": authErr.Reason}
		}
	case domain.IsNotFound(err):
		code, message = ErrorCodeNotFound, err.Error()
	case domain.IsConflict(err):
		code, message = ErrorCodeConflict, err.Error()
	case domain.IsValidation(err):
		code, message = ErrorCodeValidation, err.Error()

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			details = map[string]string{validationErr.Field: validationErr.Message}
		}
	case domain.IsForbidden(err):
		code, message = ErrorCodeForbidden, err.Error()
	case domain.IsUnavailable(err), errors.Is(err, context.Canceled):
		code, message = ErrorCodeUnavailable, "the quote backend is temporarily unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		code, message = ErrorCodeTimeout, "request timeout exceeded"
	}

	return HTTPStatusFromCode(code), NewErrorResponseWithDetails(code, message, details)
}

// GetTraceID returns the trace id of the request: one set on the gin
// context, the active span's, or the X-Request-ID header, in that order.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyTraceID); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return c.GetHeader("X-Request-ID")
}

// HandleError writes the response for err. Internal errors are logged with
// their cause since the response hides it.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "internal error",
			slog.Any("error", err),
			slog.String("trace_id", resp.TraceID))
	}

	c.JSON(status, resp)
}

// AbortWithError is HandleError for middleware: it also stops the chain.
func AbortWithError(c *gin.Context, err error) {
	HandleError(c, err)
	c.Abort()
}

// AbortWithCode stops the chain with an adapter-level error.
func AbortWithCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 with field-level messages.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	c.JSON(http.StatusBadRequest, NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	).WithTraceID(GetTraceID(c)))
}
