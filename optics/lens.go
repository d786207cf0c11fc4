package optics

import (
	"reflect"
	"slices"

	"github.com/taily-khucnaykhongquantrong/monocle-optics/functional"
)

// Lens focuses on a value of type A inside a source of type S.
//
// A Lens is immutable and safe to reuse across goroutines and source values.
// The zero Lens is not usable; build one with MakeLens, PathLens, ParseLens,
// NewLens, NewOptionalLens, Identity or Compose.
type Lens[S, A any] struct {
	get     func(S) functional.Option[A]
	replace func(S, A) S
	modify  func(S, func(A) A) S
}

// Get returns the focus, or None if any step of the way is missing.
func (l Lens[S, A]) Get(source S) functional.Option[A] {
	return l.get(source)
}

// Replace returns a new source with the focus set to value. The source is
// returned unchanged when a container above the focus is absent.
func (l Lens[S, A]) Replace(source S, value A) S {
	return l.replace(source, value)
}

// Modify replaces the focus with fn applied to it. An absent focus leaves the
// source unchanged and fn is not called.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	if l.modify != nil {
		return l.modify(source, fn)
	}
	a, ok := l.get(source).Get()
	if !ok {
		return source
	}
	return l.replace(source, fn(a))
}

// ReplaceWith is the curried form of Replace.
func (l Lens[S, A]) ReplaceWith(value A) func(S) S {
	return func(source S) S {
		return l.Replace(source, value)
	}
}

// ModifyWith is the curried form of Modify.
func (l Lens[S, A]) ModifyWith(fn func(A) A) func(S) S {
	return func(source S) S {
		return l.Modify(source, fn)
	}
}

// MakeLens builds a lens from one key, or from several keys forming a path.
//
//	optics.MakeLens[[]any, any](optics.Index(4))
//	optics.MakeLens[Person, int](optics.Field("Address"), optics.Field("StreetNumber"))
func MakeLens[S, A any](keys ...Key) Lens[S, A] {
	return PathLens[S, A](Path(keys))
}

// PathLens builds a lens over path.
//
// Keys are resolved reflectively at each call: maps by key, slices and arrays
// by index, structs by exported field name, with pointers and interfaces
// followed transparently. A nil pointer or nil interface focus is absent, as
// is a focus whose dynamic type is not A. Zero values are present.
func PathLens[S, A any](path Path, opts ...LensOption) Lens[S, A] {
	cfg := newLensConfig(opts)
	steps := slices.Clone(path)
	return Lens[S, A]{
		get: func(s S) functional.Option[A] {
			v, err := lookup(reflect.ValueOf(&s).Elem(), steps)
			if err != nil {
				cfg.logAbsent(steps, err)
				return functional.None[A]()
			}
			return focusAs[A](cfg, steps, v)
		},
		replace: func(s S, a A) S {
			out, err := assign(reflect.ValueOf(&s).Elem(), steps, 0, reflect.ValueOf(&a).Elem())
			if err != nil {
				cfg.logRejected(steps, err)
				return s
			}
			res, _ := out.Interface().(S)
			return res
		},
	}
}

// ParseLens builds a lens over the path text accepted by ParsePath.
func ParseLens[S, A any](text string, opts ...LensOption) (Lens[S, A], error) {
	path, err := ParsePath(text)
	if err != nil {
		return Lens[S, A]{}, err
	}
	return PathLens[S, A](path, opts...), nil
}

// MustParseLens is ParseLens that panics on error.
func MustParseLens[S, A any](text string, opts ...LensOption) Lens[S, A] {
	return PathLens[S, A](MustParsePath(text), opts...)
}

// NewLens builds a lens whose focus is always present.
func NewLens[S, A any](get func(S) A, replace func(S, A) S) Lens[S, A] {
	return Lens[S, A]{
		get: func(s S) functional.Option[A] {
			return functional.Some(get(s))
		},
		replace: replace,
	}
}

// NewOptionalLens builds a lens from a lookup that may report absence.
func NewOptionalLens[S, A any](get func(S) functional.Option[A], replace func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, replace: replace}
}

// Identity focuses on the whole source.
func Identity[S any]() Lens[S, S] {
	return NewLens(
		func(s S) S { return s },
		func(_ S, s S) S { return s },
	)
}

func focusAs[A any](cfg lensConfig, path Path, v reflect.Value) functional.Option[A] {
	if !v.CanInterface() {
		cfg.logAbsent(path, miss(len(path), "focus is not accessible"))
		return functional.None[A]()
	}
	if _, ok := deref(v); !ok {
		cfg.logAbsent(path, miss(len(path), "focus is nil"))
		return functional.None[A]()
	}
	x := v.Interface()
	a, ok := x.(A)
	if !ok {
		cfg.logAbsent(path, mismatch(len(path), "focus has type %T", x))
		return functional.None[A]()
	}
	return functional.Some(a)
}
