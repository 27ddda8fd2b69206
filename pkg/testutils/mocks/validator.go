// ABOUTME: Mock schema validators for healing and processor tests
// ABOUTME: Includes a scripted validator and an unavailable validator
package mocks

import (
	"sync"

	schemaDomain "github.com/estiens/open-router-enhanced-sub001/pkg/schema/domain"
)

// MockValidator is a schema Validator with scripted results. With no script
// it reports every payload valid.
type MockValidator struct {
	mu      sync.Mutex
	results []*schemaDomain.ValidationResult
	calls   int
}

// NewMockValidator creates a validator that accepts everything.
func NewMockValidator() *MockValidator {
	return &MockValidator{}
}

// WithResult appends a scripted validation result. Once the script is
// exhausted the validator reports valid.
func (v *MockValidator) WithResult(valid bool, errs ...string) *MockValidator {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.results = append(v.results, &schemaDomain.ValidationResult{Valid: valid, Errors: errs})
	return v
}

// Available implements schema/domain.Validator.
func (v *MockValidator) Available() bool { return true }

// Validate implements schema/domain.Validator.
func (v *MockValidator) Validate(schema *schemaDomain.Schema, data string) (*schemaDomain.ValidationResult, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.calls++
	if v.calls <= len(v.results) {
		return v.results[v.calls-1], nil
	}
	return &schemaDomain.ValidationResult{Valid: true}, nil
}

// CallCount returns how many times Validate ran.
func (v *MockValidator) CallCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.calls
}

// UnavailableValidator reports Available false; Validate should never run.
type UnavailableValidator struct{}

// Available implements schema/domain.Validator.
func (UnavailableValidator) Available() bool { return false }

// Validate implements schema/domain.Validator.
func (UnavailableValidator) Validate(schema *schemaDomain.Schema, data string) (*schemaDomain.ValidationResult, error) {
	return &schemaDomain.ValidationResult{Valid: true}, nil
}
