package functional

// Pair holds two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair creates a Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap exchanges the two sides.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

// MapPair applies the same function to both sides of a homogeneous pair.
func MapPair[A, B any](p Pair[A, A], fn func(A) B) Pair[B, B] {
	return Pair[B, B]{First: fn(p.First), Second: fn(p.Second)}
}
