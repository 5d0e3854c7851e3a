package context

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

type ctxKey struct{}

// RequestContext holds the values memoized during one request.
type RequestContext struct {
	ctx    context.Context
	values sync.Map
	group  singleflight.Group
}

// New creates a RequestContext whose fetches run on ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{ctx: ctx}
}

// FromContext returns the RequestContext in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	if ctx == nil {
		return nil
	}

	if rc, ok := ctx.Value(ctxKey{}).(*RequestContext); ok {
		return rc
	}

	return nil
}

// WithContext stores rc in ctx.
func WithContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// Context returns the context fetches run on.
func (rc *RequestContext) Context() context.Context {
	return rc.ctx
}

// GetOrFetch returns the value memoized under key, calling fetchFn at most
// once at a time per key until it succeeds.
func (rc *RequestContext) GetOrFetch(key string, fetchFn func(ctx context.Context) (any, error)) (any, error) {
	if cached, ok := rc.values.Load(key); ok {
		return cached, nil
	}

	value, err, _ := rc.group.Do(key, func() (any, error) {
		if cached, ok := rc.values.Load(key); ok {
			return cached, nil
		}

		value, err := fetchFn(rc.ctx)
		if err != nil {
			return nil, err
		}

		rc.values.Store(key, value)

		return value, nil
	})

	return value, err
}

// Forget drops the value memoized under key.
func (rc *RequestContext) Forget(key string) {
	rc.values.Delete(key)
}
