package optics

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

type keyKind uint8

const (
	fieldKey keyKind = iota
	indexKey
	mapKey
)

// Key is one step of a Path.
type Key struct {
	kind  keyKind
	name  string
	index int
	value any
}

// Field addresses a struct field or a map entry with a string-kinded key.
// Names that should survive Path.String and ParsePath must be valid UTF-8.
func Field(name string) Key {
	return Key{kind: fieldKey, name: name}
}

// Index addresses a slice or array element, or a map entry with an
// integer-kinded key.
func Index(i int) Key {
	return Key{kind: indexKey, index: i}
}

// MapKey addresses a map entry whose key type k is assignable to.
func MapKey(k any) Key {
	return Key{kind: mapKey, value: k}
}

// String renders the key as a single path segment.
func (k Key) String() string {
	switch k.kind {
	case fieldKey:
		return k.name
	case indexKey:
		return "[" + strconv.Itoa(k.index) + "]"
	default:
		if s, ok := k.value.(string); ok {
			return "[" + strconv.Quote(s) + "]"
		}
		return fmt.Sprintf("[%v]", k.value)
	}
}

func (k Key) fieldName() (string, bool) {
	switch k.kind {
	case fieldKey:
		return k.name, true
	case mapKey:
		s, ok := k.value.(string)
		return s, ok
	}
	return "", false
}

func (k Key) indexValue() (int, bool) {
	return k.index, k.kind == indexKey
}

// mapKeyFor converts k to a value usable as a key of a map keyed by t.
func (k Key) mapKeyFor(t reflect.Type) (reflect.Value, bool) {
	var raw reflect.Value
	switch k.kind {
	case fieldKey:
		raw = reflect.ValueOf(k.name)
	case indexKey:
		if out, ok := intKey(k.index, t); ok {
			return out, true
		}
		raw = reflect.ValueOf(k.index)
	default:
		if k.value == nil {
			return reflect.Value{}, false
		}
		raw = reflect.ValueOf(k.value)
	}
	if raw.Type().AssignableTo(t) {
		return raw, true
	}
	if raw.Kind() == reflect.String && t.Kind() == reflect.String {
		return raw.Convert(t), true
	}
	return reflect.Value{}, false
}

func intKey(i int, t reflect.Type) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if reflect.Zero(t).OverflowInt(int64(i)) {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(int64(i)).Convert(t), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if i < 0 || reflect.Zero(t).OverflowUint(uint64(i)) {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(uint64(i)).Convert(t), true
	}
	return reflect.Value{}, false
}

// Path is an ordered sequence of keys from the root of a value to a focus.
type Path []Key

// Append returns a new path with keys added after p.
func (p Path) Append(keys ...Key) Path {
	out := make(Path, 0, len(p)+len(keys))
	out = append(out, p...)
	return append(out, keys...)
}

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// words the path parser would not accept as a bare member name.
var reservedNames = map[string]bool{
	"in": true, "not": true, "and": true, "or": true, "matches": true,
	"contains": true, "startsWith": true, "endsWith": true, "let": true,
	"if": true, "else": true, "nil": true, "true": true, "false": true,
}

// String renders p in the syntax accepted by ParsePath. ParsePath(p.String())
// yields p again as long as every field name is valid UTF-8; invalid bytes are
// escaped and read back as the runes they spell.
func (p Path) String() string {
	var b strings.Builder
	for _, k := range p {
		if k.kind == fieldKey {
			if identPattern.MatchString(k.name) && !reservedNames[k.name] {
				if b.Len() > 0 {
					b.WriteByte('.')
				}
				b.WriteString(k.name)
				continue
			}
			b.WriteString("[" + strconv.Quote(k.name) + "]")
			continue
		}
		b.WriteString(k.String())
	}
	return b.String()
}
