package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/domain"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// ErrorResponse is an error body from the backend. The data API answers with
// {code, message, details, hint}; the auth API with {error, error_description}
// or {code, error_code, msg}, where code may be a number.
type ErrorResponse struct {
	Code             json.RawMessage `json:"code,omitempty"`
	Message          string          `json:"message,omitempty"`
	Details          json.RawMessage `json:"details,omitempty"`
	Hint             string          `json:"hint,omitempty"`
	ErrorCode        string          `json:"error_code,omitempty"`
	Msg              string          `json:"msg,omitempty"`
	Err              string          `json:"error,omitempty"`
	ErrorDescription string          `json:"error_description,omitempty"`
}

// GetCode returns the most specific machine-readable code present.
func (e *ErrorResponse) GetCode() string {
	if e.ErrorCode != "" {
		return e.ErrorCode
	}

	if len(e.Code) > 0 {
		var s string
		if err := json.Unmarshal(e.Code, &s); err == nil {
			return s
		}
	}

	return e.Err
}

// GetMessage returns the human-readable message, whichever dialect sent it.
func (e *ErrorResponse) GetMessage() string {
	for _, m := range []string{e.Message, e.Msg, e.ErrorDescription} {
		if m != "" {
			return m
		}
	}

	return ""
}

// Backend codes with a domain meaning.
const (
	// codeNoRows is returned when a single-object request matched nothing.
	codeNoRows = "PGRST116"
	// codeUniqueViolation is the Postgres unique constraint violation.
	codeUniqueViolation = "23505"
	// codeForeignKeyViolation usually means the referenced quote does not exist.
	codeForeignKeyViolation = "23503"
	// codeInsufficientPrivilege is a row-level security rejection.
	codeInsufficientPrivilege = "42501"

	codeInvalidGrant       = "invalid_grant"
	codeInvalidCredentials = "invalid_credentials"
	codeEmailExists        = "email_exists"
	codeUserAlreadyExists  = "user_already_exists"
)

// ParseErrorResponse decodes an error body, returning nil when it is empty
// or carries nothing recognizable.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetCode() == "" && errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// Target names the operation and entity a request works on, for error context.
type Target struct {
	Operation string
	Entity    string
	ID        string
}

// MapHTTPError maps a data API failure to a domain error. Transport failures,
// auth rejections, rate limits and 5xx all become domain.ErrUnavailable.
func MapHTTPError(resp *http.Response, clientErr error, serviceName string, target Target) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, target.Operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, target)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))
	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName string, target Target) error {
	message := fmt.Sprintf("%s failed with status %d", target.Operation, status)
	code := ""

	if errResp != nil {
		code = errResp.GetCode()
		if m := errResp.GetMessage(); m != "" {
			message = m
		}
	}

	switch {
	case status == http.StatusNotFound || code == codeNoRows:
		return domain.NewNotFoundError(target.Entity, target.ID)
	case status == http.StatusConflict || code == codeUniqueViolation:
		if code == codeForeignKeyViolation {
			return domain.NewNotFoundError("quote", target.ID)
		}

		return domain.NewConflictError(target.Entity, message)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return domain.NewValidationError("", message)
	case code == codeInsufficientPrivilege:
		return domain.NewForbiddenError(target.Operation, message)
	default:
		return domain.NewUnavailableError(serviceName, message)
	}
}

// MapAuthError maps a failed credential flow to a domain.AuthError.
func MapAuthError(resp *http.Response, clientErr error, serviceName string, target Target) error {
	if clientErr != nil {
		return domain.NewAuthError(domain.AuthReasonNetwork, mapClientError(clientErr, serviceName, target.Operation))
	}

	if resp == nil {
		return domain.NewAuthError(domain.AuthReasonNetwork, nil)
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	code, message := "", ""
	if errResp != nil {
		code, message = errResp.GetCode(), errResp.GetMessage()
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return domain.NewAuthError(domain.AuthReasonNetwork,
			domain.NewUnavailableError(serviceName, fmt.Sprintf("%s: status %d", target.Operation, resp.StatusCode)))
	case code == codeInvalidGrant || code == codeInvalidCredentials:
		return domain.NewAuthError(domain.AuthReasonInvalidCredentials, nil)
	case code == codeEmailExists || code == codeUserAlreadyExists ||
		strings.Contains(strings.ToLower(message), "already registered"):
		return domain.NewAuthError(domain.AuthReasonEmailRegistered, nil)
	case message != "":
		return domain.NewAuthError(domain.AuthReasonRejected, errors.New(message))
	default:
		return domain.NewAuthError(domain.AuthReasonRejected,
			fmt.Errorf("%s: status %d", target.Operation, resp.StatusCode))
	}
}
