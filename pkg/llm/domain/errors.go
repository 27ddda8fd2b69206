// ABOUTME: Executor-level error values shared across the library
// ABOUTME: Transport failures surface as wrapped sentinels for errors.Is checks

package domain

import (
	"errors"
)

var (
	// ErrRequestFailed is returned when a request to the upstream provider fails.
	ErrRequestFailed = errors.New("request to LLM provider failed")

	// ErrNoResponse is returned when the upstream provider returns an empty response.
	ErrNoResponse = errors.New("no response from LLM provider")

	// ErrInvalidJSON is returned when a response expected to contain JSON does not.
	ErrInvalidJSON = errors.New("response does not contain valid JSON")
)
