// Package functional holds the small value types shared by the optics packages.
//
// Option is the absent sentinel returned by lens lookups: a lookup that walks
// through a missing key, an out-of-range index or a nil container yields None
// rather than a zero value, so a focus that legitimately holds 0, "" or false is
// still reported as present. Result and Pair are the containers used by the
// ready-made ModifyF strategies in optics/effect.
package functional
