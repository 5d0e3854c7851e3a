package context

import (
	"context"
	"fmt"
)

// Provider names a typed, memoizable lookup.
type Provider[T any] struct {
	Key   string
	Fetch func(ctx context.Context) (T, error)
}

// Get resolves p through the RequestContext in ctx, or calls p.Fetch directly
// when there is none.
func Get[T any](ctx context.Context, p Provider[T]) (T, error) {
	rc := FromContext(ctx)
	if rc == nil {
		return p.Fetch(ctx)
	}

	value, err := rc.GetOrFetch(p.Key, func(ctx context.Context) (any, error) {
		return p.Fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("memoized value for %q has type %T", p.Key, value)
	}

	return typed, nil
}
