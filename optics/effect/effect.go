// Package effect provides Functor strategies for optics.ModifyF.
//
// Each constructor returns a strategy for one effect shape. The strategy only
// maps the effect's contents through the rebuild callback; none of them wait
// on, retry or reorder anything.
//
//	neighbours := func(n int) []int { return []int{n - 1, n + 1} }
//	out := optics.ModifyF(streetNumber, person, neighbours, effect.Slice[Person, int]())
//	// out is Some([]Person{...}) with one person per candidate number
package effect

import (
	"github.com/taily-khucnaykhongquantrong/monocle-optics/concurrency"
	"github.com/taily-khucnaykhongquantrong/monocle-optics/functional"
	"github.com/taily-khucnaykhongquantrong/monocle-optics/optics"
)

// Identity rebuilds the source with the transformed focus.
func Identity[S, A any]() optics.Functor[S, A, A, S] {
	return func(fa A, rebuild func(A) S) S {
		return rebuild(fa)
	}
}

// Const ignores rebuild and yields the transformed focus itself.
func Const[S, A any]() optics.Functor[S, A, A, A] {
	return func(fa A, _ func(A) S) A {
		return fa
	}
}

// Pair branches into exactly two rebuilt sources.
func Pair[S, A any]() optics.Functor[S, A, functional.Pair[A, A], functional.Pair[S, S]] {
	return func(fa functional.Pair[A, A], rebuild func(A) S) functional.Pair[S, S] {
		return functional.MapPair(fa, rebuild)
	}
}

// Slice branches into one rebuilt source per candidate, in order.
func Slice[S, A any]() optics.Functor[S, A, []A, []S] {
	return func(fa []A, rebuild func(A) S) []S {
		out := make([]S, len(fa))
		for i, a := range fa {
			out[i] = rebuild(a)
		}
		return out
	}
}

// Option rebuilds when the transform produced a value and yields None when it
// declined.
func Option[S, A any]() optics.Functor[S, A, functional.Option[A], functional.Option[S]] {
	return func(fa functional.Option[A], rebuild func(A) S) functional.Option[S] {
		return functional.MapOption(fa, rebuild)
	}
}

// Result rebuilds on success and passes the transform's error through.
func Result[S, A any]() optics.Functor[S, A, functional.Result[A], functional.Result[S]] {
	return func(fa functional.Result[A], rebuild func(A) S) functional.Result[S] {
		return functional.MapResult(fa, rebuild)
	}
}

// Future chains rebuild onto a pending focus. The returned future completes
// after fa does; ModifyF itself returns immediately.
func Future[S, A any]() optics.Functor[S, A, *concurrency.Future[A], *concurrency.Future[S]] {
	return func(fa *concurrency.Future[A], rebuild func(A) S) *concurrency.Future[S] {
		return concurrency.Map(fa, rebuild)
	}
}
