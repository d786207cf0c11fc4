package functional

import (
	"errors"
	"fmt"
)

var errNilErr = errors.New("functional: Err called with nil error")

// Result is either a value or the error that prevented producing it.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil err is replaced so that Err never yields an Ok.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errNilErr
	}
	return Result[T]{err: err}
}

// FromPair builds a Result from a (value, error) return.
func FromPair[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get returns the value and error in the usual Go order.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the value or panics with the error.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Sprintf("functional: Unwrap called on Err: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the error, nil for Ok.
func (r Result[T]) UnwrapErr() error {
	return r.err
}

// ToOption drops the error.
func (r Result[T]) ToOption() Option[T] {
	if r.err != nil {
		return None[T]()
	}
	return Some(r.value)
}

// MapResult transforms a successful value.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// FlatMapResult chains a step that may fail.
func FlatMapResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return fn(r.value)
}
