package domain

// ABOUTME: Collaborator contracts consumed by the policy layer
// ABOUTME: Defines CompletionExecutor, the minimal send-messages-get-response capability

import (
	"context"
)

// CompletionExecutor is the transport capability the policy layer depends on.
// Implementations send the messages to the named model and return the raw
// provider response. The policy layer never inspects anything beyond
// Response.Content; wire format, authentication, retries, and timeouts are
// the executor's concern.
//
// Executors must honor ctx cancellation and return the context error when
// the call is cancelled or times out.
type CompletionExecutor interface {
	// Execute sends messages to the given model and returns its response.
	Execute(ctx context.Context, messages []Message, model string, options ...Option) (Response, error)
}

// ExecutorFunc adapts a plain function to the CompletionExecutor interface.
type ExecutorFunc func(ctx context.Context, messages []Message, model string, options ...Option) (Response, error)

// Execute implements CompletionExecutor.
func (f ExecutorFunc) Execute(ctx context.Context, messages []Message, model string, options ...Option) (Response, error) {
	return f(ctx, messages, model, options...)
}
