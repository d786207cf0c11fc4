package optics

// Iso is a pair of total conversions between S and A.
//
// Nothing checks that the two functions are inverses of each other; that law
// is the caller's to keep.
type Iso[S, A any] struct {
	get        func(S) A
	reverseGet func(A) S
}

// NewIso stores get and reverseGet as given.
func NewIso[S, A any](get func(S) A, reverseGet func(A) S) Iso[S, A] {
	return Iso[S, A]{get: get, reverseGet: reverseGet}
}

// MakeIso is the curried form of NewIso.
func MakeIso[S, A any](get func(S) A) func(reverseGet func(A) S) Iso[S, A] {
	return func(reverseGet func(A) S) Iso[S, A] {
		return NewIso(get, reverseGet)
	}
}

// Get converts forward.
func (i Iso[S, A]) Get(s S) A {
	return i.get(s)
}

// ReverseGet converts back.
func (i Iso[S, A]) ReverseGet(a A) S {
	return i.reverseGet(a)
}

// Reverse swaps the two directions.
func (i Iso[S, A]) Reverse() Iso[A, S] {
	return Iso[A, S]{get: i.reverseGet, reverseGet: i.get}
}

// ToLens views the iso as a lens whose focus is always present.
func (i Iso[S, A]) ToLens() Lens[S, A] {
	return NewLens(i.get, func(_ S, a A) S { return i.reverseGet(a) })
}

// ComposeIso chains two isos.
func ComposeIso[S, A, B any](outer Iso[S, A], inner Iso[A, B]) Iso[S, B] {
	return Iso[S, B]{
		get:        func(s S) B { return inner.get(outer.get(s)) },
		reverseGet: func(b B) S { return outer.reverseGet(inner.reverseGet(b)) },
	}
}
