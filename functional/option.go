package functional

import "fmt"

// Option is a value tagged as present or absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns the absent Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOK builds an Option from the comma-ok idiom.
func FromOK[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value or panics if absent.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("functional: Unwrap called on None")
	}
	return o.value
}

// UnwrapOr returns the value or fallback when absent.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// OrElse returns o when present and alt otherwise.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alt
}

// Filter keeps the value only when keep returns true.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.present && keep(o.value) {
		return o
	}
	return None[T]()
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MapOption transforms a present value.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMapOption chains a lookup that may itself be absent.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return fn(o.value)
}

// MatchOption folds the Option into a single value.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}
