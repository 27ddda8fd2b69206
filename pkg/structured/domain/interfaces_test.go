// ABOUTME: Tests for the structured-output error type
package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredOutputErrorMessage(t *testing.T) {
	err := &StructuredOutputError{
		Attempts:         2,
		RawContent:       `{"broken": `,
		ValidationErrors: []string{"/age: expected integer"},
	}

	msg := err.Error()
	assert.Contains(t, msg, "2 heal attempts")
	assert.Contains(t, msg, "/age: expected integer")
	assert.Contains(t, msg, `{\"broken\": `)
}

func TestStructuredOutputErrorTruncatesContent(t *testing.T) {
	err := &StructuredOutputError{
		Attempts:   1,
		RawContent: strings.Repeat("x", 500),
	}

	assert.Less(t, len(err.Error()), 300)
	assert.Contains(t, err.Error(), "...")
}

func TestStructuredOutputErrorUnwrap(t *testing.T) {
	cause := errors.New("unexpected end of input")
	err := &StructuredOutputError{Attempts: 1, Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unexpected end of input")
}
