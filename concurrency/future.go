// Package concurrency provides the pending-value container used by the
// asynchronous ModifyF strategy.
package concurrency

import (
	"context"

	"github.com/taily-khucnaykhongquantrong/monocle-optics/functional"
)

// Future is a value that becomes available once a background computation
// finishes. The outcome is written once, before done is closed.
type Future[T any] struct {
	result functional.Result[T]
	done   chan struct{}
}

// NewFuture runs fn in a new goroutine.
func NewFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.result = functional.FromPair(fn())
	}()
	return f
}

// NewFutureWithContext runs fn in a new goroutine with ctx.
func NewFutureWithContext[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	return NewFuture(func() (T, error) {
		return fn(ctx)
	})
}

// Resolve returns an already completed future holding value.
func Resolve[T any](value T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), result: functional.Ok(value)}
	close(f.done)
	return f
}

// Reject returns an already completed future holding err.
func Reject[T any](err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), result: functional.Err[T](err)}
	close(f.done)
	return f
}

// Wait blocks until the future completes.
func (f *Future[T]) Wait() functional.Result[T] {
	<-f.done
	return f.result
}

// WaitContext blocks until the future completes or ctx is done.
func (f *Future[T]) WaitContext(ctx context.Context) functional.Result[T] {
	select {
	case <-f.done:
		return f.result
	case <-ctx.Done():
		return functional.Err[T](ctx.Err())
	}
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsDone reports completion without blocking.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Map derives a future whose value is fn applied to f's value. Errors pass
// through without calling fn.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return NewFuture(func() (U, error) {
		v, err := f.Wait().Get()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v), nil
	})
}

// FlatMap chains a second asynchronous step after f.
func FlatMap[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return NewFuture(func() (U, error) {
		v, err := f.Wait().Get()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v).Wait().Get()
	})
}

// All waits for every future and returns their results in order.
func All[T any](futures ...*Future[T]) []functional.Result[T] {
	results := make([]functional.Result[T], len(futures))
	for i, f := range futures {
		results[i] = f.Wait()
	}
	return results
}
