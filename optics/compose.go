package optics

import "github.com/taily-khucnaykhongquantrong/monocle-optics/functional"

// Compose chains outer and inner into a lens from S to B.
//
// Every operation short-circuits when outer's focus is absent: Get yields
// None, Replace and Modify return the source unchanged. Compose is
// associative.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) functional.Option[B] {
			return functional.FlatMapOption(outer.Get(s), inner.Get)
		},
		replace: func(s S, b B) S {
			a, ok := outer.Get(s).Get()
			if !ok {
				return s
			}
			return outer.Replace(s, inner.Replace(a, b))
		},
		modify: func(s S, fn func(B) B) S {
			a, ok := outer.Get(s).Get()
			if !ok {
				return s
			}
			return outer.Replace(s, inner.Modify(a, fn))
		},
	}
}

// Compose3 is Compose(Compose(first, second), third).
func Compose3[S, A, B, C any](first Lens[S, A], second Lens[A, B], third Lens[B, C]) Lens[S, C] {
	return Compose(Compose(first, second), third)
}
