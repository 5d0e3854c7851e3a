// Package domain holds the quote vault's entities and its error taxonomy.
//
// Errors in this package describe what went wrong in business terms. Adapters
// translate them to HTTP status codes; nothing here knows about transports.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity exists neither remotely nor in the cache.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthenticated indicates an operation needs a signed-in user and there is none.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuth indicates a credential flow (sign in, sign up, reset) was rejected.
	ErrAuth = errors.New("authentication failed")

	// ErrConflict indicates a state conflict such as a duplicate entry.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates caller input was rejected.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden indicates the caller may not perform the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable indicates the remote backend could not be reached or refused to answer.
	ErrUnavailable = errors.New("remote unavailable")

	// ErrUnknown marks failures that fit no other category.
	ErrUnknown = errors.New("unknown error")
)

// NotFoundError names the entity that could not be found.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NotAuthenticatedError names the operation that required a user.
type NotAuthenticatedError struct {
	Operation string
}

func (e *NotAuthenticatedError) Error() string {
	if e.Operation == "" {
		return "not authenticated"
	}

	return e.Operation + " requires a signed-in user"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotAuthenticatedError) Unwrap() error {
	return ErrNotAuthenticated
}

// NewNotAuthenticatedError creates a not authenticated error for an operation.
func NewNotAuthenticatedError(operation string) error {
	return &NotAuthenticatedError{Operation: operation}
}

// Auth failure reasons reported by the auth provider adapters.
const (
	AuthReasonInvalidCredentials = "invalid credentials"
	AuthReasonEmailRegistered    = "email already registered"
	AuthReasonNetwork            = "network failure"
	AuthReasonRejected           = "request rejected"
)

// AuthError carries the reason a credential flow failed.
type AuthError struct {
	Reason string
	Cause  error
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Reason
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *AuthError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrAuth}
	}

	return []error{ErrAuth, e.Cause}
}

// NewAuthError creates an auth error with a reason.
func NewAuthError(reason string, cause error) error {
	return &AuthError{Reason: reason, Cause: cause}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// ForbiddenError provides context for forbidden errors.
type ForbiddenError struct {
	Operation string
	Reason    string
}

func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("operation %q forbidden: %s", e.Operation, e.Reason)
	}

	return fmt.Sprintf("operation %q forbidden", e.Operation)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// NewForbiddenError creates a forbidden error with context.
func NewForbiddenError(operation, reason string) error {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

// UnavailableError reports which backend failed and how.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// UnknownError wraps a failure that fits no other category.
type UnknownError struct {
	Cause error
}

func (e *UnknownError) Error() string {
	if e.Cause == nil {
		return ErrUnknown.Error()
	}

	return "unknown error: " + e.Cause.Error()
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *UnknownError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUnknown}
	}

	return []error{ErrUnknown, e.Cause}
}

// NewUnknownError wraps cause as an unknown error.
func NewUnknownError(cause error) error {
	return &UnknownError{Cause: cause}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsNotAuthenticated checks if an error is a not authenticated error.
func IsNotAuthenticated(err error) bool {
	return errors.Is(err, ErrNotAuthenticated)
}

// IsAuth checks if an error is an auth flow error.
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsUnknown checks if an error is an unknown error.
func IsUnknown(err error) bool {
	return errors.Is(err, ErrUnknown)
}

// Classified reports whether err already belongs to the taxonomy.
func Classified(err error) bool {
	for _, sentinel := range []error{
		ErrNotFound, ErrNotAuthenticated, ErrAuth, ErrConflict,
		ErrValidation, ErrForbidden, ErrUnavailable, ErrUnknown,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
