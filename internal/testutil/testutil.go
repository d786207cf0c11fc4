// Package testutil holds fixtures and rapid generators shared by the tests.
package testutil

import (
	"encoding/json"

	"pgregory.net/rapid"
)

// Person is the record most lens tests focus into.
type Person struct {
	Name    string
	Age     int
	Address *Address
	Tags    []string
}

// Address is nested under Person.
type Address struct {
	StreetName   string
	StreetNumber int
}

// AddressGen generates addresses.
func AddressGen() *rapid.Generator[Address] {
	return rapid.Custom(func(t *rapid.T) Address {
		return Address{
			StreetName:   rapid.StringMatching(`[A-Z][a-z]{0,12}`).Draw(t, "streetName"),
			StreetNumber: rapid.IntRange(0, 9999).Draw(t, "streetNumber"),
		}
	})
}

// PersonGen generates people, some without an address.
func PersonGen() *rapid.Generator[Person] {
	return rapid.Custom(func(t *rapid.T) Person {
		p := Person{
			Name: rapid.String().Draw(t, "name"),
			Age:  rapid.IntRange(0, 120).Draw(t, "age"),
			Tags: rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,6}`), 0, 4).Draw(t, "tags"),
		}
		if rapid.Bool().Draw(t, "hasAddress") {
			addr := AddressGen().Draw(t, "address")
			p.Address = &addr
		}
		return p
	})
}

// PersonDoc renders a person as the generic tree a JSON decoder would produce.
func PersonDoc(p Person) map[string]any {
	doc := map[string]any{
		"name": p.Name,
		"age":  float64(p.Age),
	}
	if p.Address != nil {
		doc["address"] = map[string]any{
			"streetName":   p.Address.StreetName,
			"streetNumber": float64(p.Address.StreetNumber),
		}
	}
	tags := make([]any, len(p.Tags))
	for i, tag := range p.Tags {
		tags[i] = tag
	}
	doc["tags"] = tags
	return doc
}

// ScalarGen generates JSON-compatible leaf values.
func ScalarGen() *rapid.Generator[any] {
	return rapid.OneOf(
		rapid.Map(rapid.String(), func(s string) any { return s }),
		rapid.Map(rapid.IntRange(-1000, 1000), func(n int) any { return float64(n) }),
		rapid.Map(rapid.Bool(), func(b bool) any { return b }),
	)
}

// TB is the part of *testing.T and *rapid.T that Snapshot needs.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Snapshot encodes v as JSON so a later Snapshot can prove v was not mutated.
func Snapshot(t TB, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	return string(data)
}
