// Package json provides thin wrappers around a faster JSON implementation.
package json

// ABOUTME: Drop-in JSON helpers backed by goccy/go-json for hot paths
// ABOUTME: Used by extraction and healing code that parses LLM output repeatedly

import (
	gojson "github.com/goccy/go-json"
)

// Marshal serializes v to JSON.
func Marshal(v interface{}) ([]byte, error) {
	return gojson.Marshal(v)
}

// MarshalIndent serializes v to indented JSON.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses JSON data into v.
func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

// Valid reports whether data is syntactically valid JSON.
func Valid(data []byte) bool {
	return gojson.Valid(data)
}
