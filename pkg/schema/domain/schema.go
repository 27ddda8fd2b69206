// Package domain defines the JSON Schema domain models and the validation
// contract consumed by the structured-output pipeline.
package domain

// ABOUTME: JSON Schema domain types and the external validator contract
// ABOUTME: Validation itself is delegated to an injected library adapter

// Schema represents a validation schema for structured data. It mirrors the
// JSON Schema vocabulary this library actually feeds to models and to the
// validator adapter.
type Schema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties,omitempty"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties *bool               `json:"additionalProperties,omitempty"`
	Description          string              `json:"description,omitempty"`
	Title                string              `json:"title,omitempty"`
	Items                *Property           `json:"items,omitempty"`
}

// Property represents a property in a schema with its validation constraints.
type Property struct {
	Type        string              `json:"type"`
	Format      string              `json:"format,omitempty"`
	Description string              `json:"description,omitempty"`
	Minimum     *float64            `json:"minimum,omitempty"`
	Maximum     *float64            `json:"maximum,omitempty"`
	MinLength   *int                `json:"minLength,omitempty"`
	MaxLength   *int                `json:"maxLength,omitempty"`
	Pattern     string              `json:"pattern,omitempty"`
	Enum        []string            `json:"enum,omitempty"`
	Items       *Property           `json:"items,omitempty"`
	Required    []string            `json:"required,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty"`
}

// ValidationResult represents the outcome of a validation: a boolean status
// and the error messages for any failures.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validator is the external schema-validation collaborator.
//
// Available reports whether a real validation backend is present. When it
// returns false, callers must treat validity as unknown rather than invalid:
// the healing pipeline falls back to parseability as its primary signal.
type Validator interface {
	// Available reports whether validation can actually be performed.
	Available() bool

	// Validate checks the JSON document in data against the schema and
	// returns the result with per-failure messages. The error return covers
	// operational problems (unmarshalable schema, syntactically invalid
	// data), not validation failures.
	Validate(schema *Schema, data string) (*ValidationResult, error)
}
