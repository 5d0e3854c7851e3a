package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

// ErrorMapper turns a failed exchange into a domain error.
type ErrorMapper func(resp *http.Response, clientErr error, serviceName string, target Target) error

// Call describes one backend request.
type Call struct {
	Method string
	Path   string

	// Body is encoded as JSON when non-nil.
	Body any

	Header http.Header
	Target Target

	// MapError defaults to MapHTTPError.
	MapError ErrorMapper
}

// BaseAdapter is embedded by the backend adapters. It runs calls through the
// instrumented client and maps failures at the boundary.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a base adapter for serviceName.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{
		client:      client,
		serviceName: serviceName,
	}
}

// ServiceName returns the backend name used in errors and health checks.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Do executes call and returns the body of a 2xx response. The caller must
// close it. Any other outcome is returned as a domain error.
func (a *BaseAdapter) Do(ctx context.Context, call Call) (io.ReadCloser, error) {
	mapErr := call.MapError
	if mapErr == nil {
		mapErr = MapHTTPError
	}

	var payload []byte

	if call.Body != nil {
		var err error

		payload, err = json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s request: %w", call.Target.Operation, err)
		}
	}

	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "backend call",
		slog.String("operation", call.Target.Operation),
		slog.String("method", call.Method),
		slog.String("path", call.Path))

	resp, err := a.client.Send(ctx, call.Method, call.Path, payload, call.Header)
	if err != nil {
		return nil, mapErr(nil, err, a.serviceName, call.Target)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()

		return nil, mapErr(resp, nil, a.serviceName, call.Target)
	}

	return resp.Body, nil
}

// Get performs a GET and returns the response body.
func (a *BaseAdapter) Get(ctx context.Context, path string, target Target) (io.ReadCloser, error) {
	return a.Do(ctx, Call{Method: http.MethodGet, Path: path, Target: target})
}

// Discard closes a body whose content is not needed.
func Discard(body io.ReadCloser) {
	if body == nil {
		return
	}

	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxErrorBody))
	_ = body.Close()
}

// DecodeResponse reads and decodes a JSON body, closing it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// DecodeResponseForService decodes like DecodeResponse but reports a body
// that does not decode as domain.ErrUnavailable.
func DecodeResponseForService[T any](body io.ReadCloser, serviceName string) (*T, error) {
	result, err := DecodeResponse[T](body)
	if err != nil {
		return nil, domain.NewUnavailableError(serviceName, err.Error())
	}

	return result, nil
}

// ValidateRequired rejects an empty value.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return domain.NewValidationError(fieldName, "is required")
	}

	return nil
}

// Translator converts one backend record into a domain value.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateSlice translates every item, failing on the first bad one.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]D, error) {
	result := make([]D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}
