package xcache

import (
	"context"
	"errors"

	"github.com/eko/gocache/lib/v4/store"
)

// ErrCacheDisabled is the cause of every miss reported by a disabled cache.
var ErrCacheDisabled = errors.New("cache disabled")

// disabledCache satisfies Cache when no backend is configured, so callers
// always fall through to the store.
type disabledCache[T any] struct{}

func NewNoop[T any]() Cache[T] {
	return disabledCache[T]{}
}

func (disabledCache[T]) Get(context.Context, any) (T, error) {
	var zero T
	return zero, store.NotFoundWithCause(ErrCacheDisabled)
}

func (disabledCache[T]) Set(context.Context, any, T, ...Option) error { return nil }

func (disabledCache[T]) Delete(context.Context, any) error { return nil }

func (disabledCache[T]) Invalidate(context.Context, ...store.InvalidateOption) error { return nil }

func (disabledCache[T]) Clear(context.Context) error { return nil }

func (disabledCache[T]) GetType() string { return "noop" }
