package validation

// ABOUTME: Schema validator adapter over santhosh-tekuri/jsonschema
// ABOUTME: Compiles domain schemas on the fly and flattens causes into messages

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/estiens/open-router-enhanced-sub001/pkg/schema/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/util/json"
)

// SchemaValidator adapts the jsonschema library to the domain Validator
// contract. It is stateless and safe for concurrent use.
type SchemaValidator struct{}

// New creates a validator backed by the jsonschema library.
func New() *SchemaValidator {
	return &SchemaValidator{}
}

// Available always reports true: the backend is compiled in. The method
// exists because callers are written against the contract, where a nil or
// stub validator legitimately reports false.
func (v *SchemaValidator) Available() bool {
	return true
}

// Validate checks the JSON document in data against the schema.
func (v *SchemaValidator) Validate(schema *domain.Schema, data string) (*domain.ValidationResult, error) {
	compiled, err := compile(schema)
	if err != nil {
		return nil, err
	}

	var instance interface{}
	if err := json.Unmarshal([]byte(data), &instance); err != nil {
		return nil, fmt.Errorf("parsing data: %w", err)
	}

	if err := compiled.Validate(instance); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, err
		}
		return &domain.ValidationResult{Valid: false, Errors: flatten(ve)}, nil
	}
	return &domain.ValidationResult{Valid: true}, nil
}

// compile converts a domain schema into a compiled jsonschema document.
func compile(schema *domain.Schema) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(string(raw))); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return compiled, nil
}

// flatten walks the cause tree and renders one message per leaf failure,
// prefixed with the failing instance location.
func flatten(ve *jsonschema.ValidationError) []string {
	var out []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "/"
			}
			out = append(out, fmt.Sprintf("%s: %s", location, e.Message))
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)
	return out
}
