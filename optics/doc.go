// Package optics provides lenses and isomorphisms over immutable data.
//
// A Lens focuses on one location inside a larger value: a struct field, a map
// entry, a slice element, or a nested path through any mix of those. Lenses
// never mutate their input. Replace copies every container on the path to the
// focus and shares everything else with the original.
//
//	age := optics.MakeLens[Person, int](optics.Field("Age"))
//	older := age.Modify(p, func(n int) int { return n + 1 })
//
//	street := optics.MustParseLens[map[string]any, float64]("address.streetNumber")
//	street.Get(doc) // Some(17) or None
//
// Absence is reported through functional.Option. A lookup through a missing key,
// an index past the end, a nil pointer or interface, or an unexported field is
// None; Modify on an absent focus returns the source unchanged, and ModifyF
// returns None without calling the transform or the functor.
//
// ModifyF generalises Modify to an arbitrary effect: the transform returns a
// value of some type T (a pair of candidates, a pending future, a Result) and a
// caller-supplied Functor turns T plus a rebuild callback into the final
// effect-wrapped structure. Common strategies live in optics/effect.
//
// An Iso is a pair of total conversions between two types.
package optics
