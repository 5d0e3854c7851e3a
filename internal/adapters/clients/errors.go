// Package clients is the instrumented HTTP client the backend adapters use.
package clients

import (
	"errors"
	"fmt"
)

// Transport-level failures. The ACL translates them into domain errors.
var (
	// ErrCircuitOpen is returned without contacting the backend while the circuit is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last attempt's error after all retries failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// ServerError is a 5xx response that exhausted retries.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d", e.StatusCode)
}
