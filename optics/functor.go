package optics

import "github.com/taily-khucnaykhongquantrong/monocle-optics/functional"

// Functor lifts a rebuild of the source into the effect carried by fa.
//
// fa is what the ModifyF transform produced for the current focus; rebuild
// returns the source with the focus replaced. A Functor maps fa's contents
// through rebuild and returns the effect-wrapped result: one source for a
// plain value, several for a list of candidates, a pending source for a
// future. See package effect for ready-made strategies.
type Functor[S, A, T, FT any] func(fa T, rebuild func(A) S) FT

// ModifyF is the effectful form of Modify.
//
// When the focus is absent ModifyF returns None without calling f or functor.
// Unlike Modify, which returns the source, absence is not wrapped in the
// effect. Otherwise it returns Some(functor(f(a), rebuild)).
func ModifyF[S, A, T, FT any](l Lens[S, A], source S, f func(A) T, functor Functor[S, A, T, FT]) functional.Option[FT] {
	a, ok := l.Get(source).Get()
	if !ok {
		return functional.None[FT]()
	}
	return functional.Some(functor(f(a), func(na A) S {
		return l.Replace(source, na)
	}))
}

// LiftF is the curried form of ModifyF: it binds the transform and functor
// and returns a function over sources.
func LiftF[S, A, T, FT any](l Lens[S, A], f func(A) T, functor Functor[S, A, T, FT]) func(S) functional.Option[FT] {
	return func(source S) functional.Option[FT] {
		return ModifyF(l, source, f, functor)
	}
}
