package optics

import (
	"fmt"
	"reflect"
)

// stepError records where a lookup or replace stopped along a path.
type stepError struct {
	at       int
	reason   string
	mismatch bool
}

func (e *stepError) Error() string {
	return fmt.Sprintf("step %d: %s", e.at, e.reason)
}

func miss(at int, format string, args ...any) *stepError {
	return &stepError{at: at, reason: fmt.Sprintf(format, args...)}
}

func mismatch(at int, format string, args ...any) *stepError {
	e := miss(at, format, args...)
	e.mismatch = true
	return e
}

// deref follows interfaces and pointers down to a concrete value.
func deref(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// exportedField resolves k against struct type t. Promoted fields are only
// reachable through exported embedded fields.
func exportedField(t reflect.Type, k Key) (reflect.StructField, bool) {
	name, ok := k.fieldName()
	if !ok {
		return reflect.StructField{}, false
	}
	sf, ok := t.FieldByName(name)
	if !ok || !sf.IsExported() {
		return reflect.StructField{}, false
	}
	for i := 1; i < len(sf.Index); i++ {
		if !t.FieldByIndex(sf.Index[:i]).IsExported() {
			return reflect.StructField{}, false
		}
	}
	return sf, true
}

// lookup walks path from root and returns the value found at its end.
func lookup(root reflect.Value, path Path) (reflect.Value, *stepError) {
	cur := root
	for i, k := range path {
		next, err := child(cur, k, i)
		if err != nil {
			return reflect.Value{}, err
		}
		cur = next
	}
	return cur, nil
}

func child(v reflect.Value, k Key, at int) (reflect.Value, *stepError) {
	c, ok := deref(v)
	if !ok {
		return reflect.Value{}, miss(at, "nil container")
	}
	switch c.Kind() {
	case reflect.Map:
		mk, ok := k.mapKeyFor(c.Type().Key())
		if !ok {
			return reflect.Value{}, miss(at, "key %s does not fit %s", k, c.Type().Key())
		}
		e := c.MapIndex(mk)
		if !e.IsValid() {
			return reflect.Value{}, miss(at, "missing key %s", k)
		}
		return e, nil
	case reflect.Slice, reflect.Array:
		i, ok := k.indexValue()
		if !ok {
			return reflect.Value{}, miss(at, "key %s on a sequence", k)
		}
		if i < 0 || i >= c.Len() {
			return reflect.Value{}, miss(at, "index %d out of range [0,%d)", i, c.Len())
		}
		return c.Index(i), nil
	case reflect.Struct:
		sf, ok := exportedField(c.Type(), k)
		if !ok {
			return reflect.Value{}, miss(at, "no exported field %s in %s", k, c.Type())
		}
		f, err := c.FieldByIndexErr(sf.Index)
		if err != nil {
			return reflect.Value{}, miss(at, "nil embedded pointer on the way to %s", k)
		}
		return f, nil
	default:
		return reflect.Value{}, miss(at, "%s is not a container", c.Type())
	}
}

// fit converts val for storage in a slot of type t.
func fit(val reflect.Value, t reflect.Type, at int) (reflect.Value, *stepError) {
	if val.IsValid() && val.Kind() == reflect.Interface {
		if val.IsNil() {
			val = reflect.Value{}
		} else {
			val = val.Elem()
		}
	}
	if !val.IsValid() {
		if nillable(t) {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, mismatch(at, "cannot store nil in %s", t)
	}
	if !val.Type().AssignableTo(t) {
		return reflect.Value{}, mismatch(at, "%s is not assignable to %s", val.Type(), t)
	}
	if val.Type() == t {
		return val, nil
	}
	out := reflect.New(t).Elem()
	out.Set(val)
	return out, nil
}

// assign returns a copy of v whose value at path[at:] is val. v itself is
// never written: each container on the way down is copied and its untouched
// entries are shared with the original.
func assign(v reflect.Value, path Path, at int, val reflect.Value) (reflect.Value, *stepError) {
	if at == len(path) {
		return fit(val, v.Type(), at)
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return reflect.Value{}, miss(at, "nil interface")
		}
		inner, err := assign(v.Elem(), path, at, val)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(inner)
		return out, nil
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Value{}, miss(at, "nil pointer")
		}
		inner, err := assign(v.Elem(), path, at, val)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(inner)
		if out.Type() != v.Type() {
			out = out.Convert(v.Type())
		}
		return out, nil
	case reflect.Map:
		return assignMap(v, path, at, val)
	case reflect.Slice:
		return assignSlice(v, path, at, val)
	case reflect.Array:
		return assignArray(v, path, at, val)
	case reflect.Struct:
		sf, ok := exportedField(v.Type(), path[at])
		if !ok {
			return reflect.Value{}, miss(at, "no exported field %s in %s", path[at], v.Type())
		}
		return assignField(v, sf.Index, path, at, val)
	default:
		return reflect.Value{}, miss(at, "%s is not a container", v.Type())
	}
}

func assignMap(v reflect.Value, path Path, at int, val reflect.Value) (reflect.Value, *stepError) {
	t := v.Type()
	mk, ok := path[at].mapKeyFor(t.Key())
	if !ok {
		return reflect.Value{}, miss(at, "key %s does not fit %s", path[at], t.Key())
	}
	var next reflect.Value
	var err *stepError
	if at == len(path)-1 {
		next, err = fit(val, t.Elem(), at+1)
	} else {
		cur := v.MapIndex(mk)
		if !cur.IsValid() {
			return reflect.Value{}, miss(at, "missing key %s", path[at])
		}
		next, err = assign(cur, path, at+1, val)
	}
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.MakeMapWithSize(t, v.Len()+1)
	iter := v.MapRange()
	for iter.Next() {
		out.SetMapIndex(iter.Key(), iter.Value())
	}
	out.SetMapIndex(mk, next)
	return out, nil
}

// maxSliceGrowth bounds how far past its end a single Replace may extend a
// slice.
const maxSliceGrowth = 1 << 20

// assignSlice extends the slice when the final index is past its end; the
// positions in between hold the element type's zero value.
func assignSlice(v reflect.Value, path Path, at int, val reflect.Value) (reflect.Value, *stepError) {
	i, ok := path[at].indexValue()
	if !ok {
		return reflect.Value{}, miss(at, "key %s on a sequence", path[at])
	}
	last := at == len(path)-1
	if i < 0 || (!last && i >= v.Len()) {
		return reflect.Value{}, miss(at, "index %d out of range [0,%d)", i, v.Len())
	}
	if i-v.Len() >= maxSliceGrowth {
		return reflect.Value{}, miss(at, "index %d is %d or more past the end of a slice of length %d", i, maxSliceGrowth, v.Len())
	}
	var next reflect.Value
	var err *stepError
	if last {
		next, err = fit(val, v.Type().Elem(), at+1)
	} else {
		next, err = assign(v.Index(i), path, at+1, val)
	}
	if err != nil {
		return reflect.Value{}, err
	}
	n := max(v.Len(), i+1)
	out := reflect.MakeSlice(v.Type(), n, n)
	reflect.Copy(out, v)
	out.Index(i).Set(next)
	return out, nil
}

func assignArray(v reflect.Value, path Path, at int, val reflect.Value) (reflect.Value, *stepError) {
	i, ok := path[at].indexValue()
	if !ok {
		return reflect.Value{}, miss(at, "key %s on a sequence", path[at])
	}
	if i < 0 || i >= v.Len() {
		return reflect.Value{}, miss(at, "index %d out of range [0,%d)", i, v.Len())
	}
	next, err := assign(v.Index(i), path, at+1, val)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(v.Type()).Elem()
	out.Set(v)
	out.Index(i).Set(next)
	return out, nil
}

// assignField copies struct v and replaces the field at index, descending
// through embedded structs (and embedded pointers, which are copied too).
func assignField(v reflect.Value, index []int, path Path, at int, val reflect.Value) (reflect.Value, *stepError) {
	var next reflect.Value
	var err *stepError
	f := v.Field(index[0])
	switch {
	case len(index) > 1:
		next, err = assignEmbedded(f, index[1:], path, at, val)
	case at == len(path)-1:
		next, err = fit(val, f.Type(), at+1)
	default:
		next, err = assign(f, path, at+1, val)
	}
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(v.Type()).Elem()
	out.Set(v)
	slot := out.Field(index[0])
	if !slot.CanSet() {
		return reflect.Value{}, miss(at, "field %s of %s is read-only", path[at], v.Type())
	}
	slot.Set(next)
	return out, nil
}

func assignEmbedded(emb reflect.Value, index []int, path Path, at int, val reflect.Value) (reflect.Value, *stepError) {
	if emb.Kind() != reflect.Pointer {
		return assignField(emb, index, path, at, val)
	}
	if emb.IsNil() {
		return reflect.Value{}, miss(at, "nil embedded pointer on the way to %s", path[at])
	}
	inner, err := assignField(emb.Elem(), index, path, at, val)
	if err != nil {
		return reflect.Value{}, err
	}
	out := reflect.New(emb.Type().Elem())
	out.Elem().Set(inner)
	return out, nil
}
