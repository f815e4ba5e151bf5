// Package future provides a one-shot completion value shared between the
// goroutine that requests an operation and the goroutine that performs it.
package future

import (
	"context"

	"go.uber.org/atomic"
)

// Future holds the eventual outcome of an asynchronous operation.
// It is resolved at most once; later Resolve calls are ignored.
type Future[T any] struct {
	resolved atomic.Bool
	done     chan struct{}
	value    T
}

// New creates a pending future.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved creates a future that already holds v.
func Resolved[T any](v T) *Future[T] {
	f := New[T]()
	f.Resolve(v)
	return f
}

// Resolve stores v and releases all waiters. It reports false when the
// future was already resolved, in which case v is discarded.
func (f *Future[T]) Resolve(v T) bool {
	if !f.resolved.CompareAndSwap(false, true) {
		return false
	}
	f.value = v
	close(f.done)
	return true
}

// Done returns a channel closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsResolved reports whether Resolve has been called.
func (f *Future[T]) IsResolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Value returns the resolved value without blocking. ok is false while the
// future is still pending.
func (f *Future[T]) Value() (v T, ok bool) {
	select {
	case <-f.done:
		return f.value, true
	default:
		return v, false
	}
}

// Wait blocks until the future is resolved or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
