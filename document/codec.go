// Package document provides lenses over encoded JSON and YAML documents.
//
// A document lens decodes its []byte source into a generic tree
// (map[string]any, []any and scalars), applies a path lens, and re-encodes on
// Replace. Bytes that do not decode are treated as an absent focus.
package document

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Codec converts between bytes and generic trees.
type Codec interface {
	Name() string
	Decode(data []byte) (any, error)
	Encode(doc any) ([]byte, error)
}

var (
	// JSON decodes numbers as float64.
	JSON Codec = jsonCodec{}
	// YAML decodes integers as int and floats as float64.
	YAML Codec = yamlCodec{}
)

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Decode(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	return doc, nil
}

func (jsonCodec) Encode(doc any) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	return data, nil
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Decode(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return doc, nil
}

func (yamlCodec) Encode(doc any) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	return data, nil
}
