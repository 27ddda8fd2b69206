// Package domain defines the contracts and terminal states of the
// structured-output healing pipeline.
package domain

// ABOUTME: Healing modes, observability events, and the structured-output error type
// ABOUTME: Terminal behavior differs only in how exhaustion is reported

import (
	"fmt"
)

// Mode controls how a healing session reports terminal failure.
type Mode string

const (
	// ModeStrict raises a StructuredOutputError when healing is exhausted.
	ModeStrict Mode = "strict"

	// ModeGentle returns nil on exhaustion; callers must check for it.
	// This trades safety for composability and is deliberate: a gentle
	// pipeline never panics mid-chain, at the cost of explicit nil checks.
	ModeGentle Mode = "gentle"
)

// HealingEvent is the observability payload emitted when a healing session
// resolves through the healer (successfully or not). Sessions that validate
// on first parse emit nothing.
type HealingEvent struct {
	// SessionID uniquely identifies one healing session.
	SessionID string `json:"session_id"`

	// Healed reports whether a heal round produced valid output.
	Healed bool `json:"healed"`

	// Attempts is the number of healer invocations made.
	Attempts int `json:"attempts"`

	// Original is the malformed payload as received.
	Original string `json:"original"`

	// HealedContent is the repaired JSON document, nil when healing failed.
	HealedContent *string `json:"healed_content,omitempty"`
}

// Observer receives healing events. Observers run synchronously on the
// session goroutine and should be fast.
type Observer func(HealingEvent)

// StructuredOutputError is the strict-mode terminal failure. It carries the
// attempt count, a snippet of the raw content, and the last parse or
// validation errors seen.
type StructuredOutputError struct {
	// Attempts is how many healer invocations were made before giving up.
	Attempts int

	// RawContent is the last content that failed to parse or validate.
	RawContent string

	// ValidationErrors holds the last schema validation messages, if any.
	ValidationErrors []string

	// Cause is the last parse error, if parsing (rather than validation)
	// was the blocker.
	Cause error
}

// Error implements the error interface.
func (e *StructuredOutputError) Error() string {
	msg := fmt.Sprintf("structured output invalid after %d heal attempts", e.Attempts)
	if len(e.ValidationErrors) > 0 {
		msg += fmt.Sprintf(": %v", e.ValidationErrors)
	} else if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	if snippet := truncate(e.RawContent, 120); snippet != "" {
		msg += fmt.Sprintf(" (content: %q)", snippet)
	}
	return msg
}

// Unwrap exposes the last parse error for errors.Is/As.
func (e *StructuredOutputError) Unwrap() error {
	return e.Cause
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
