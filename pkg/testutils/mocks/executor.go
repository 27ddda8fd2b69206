// ABOUTME: Mock completion executor with scripted responses and call tracking
// ABOUTME: Provides deterministic response sequences and failure simulation for tests
package mocks

import (
	"context"
	"sync"

	llmDomain "github.com/estiens/open-router-enhanced-sub001/pkg/llm/domain"
)

// ExecutorCall records one Execute invocation.
type ExecutorCall struct {
	Messages []llmDomain.Message
	Model    string
	Options  []llmDomain.Option
}

// scriptedResponse is one step in a mock executor's response sequence.
type scriptedResponse struct {
	response llmDomain.Response
	err      error
}

// MockExecutor is a CompletionExecutor that replays a scripted sequence of
// responses and records every call. Once the script is exhausted the last
// entry repeats.
type MockExecutor struct {
	mu     sync.Mutex
	script []scriptedResponse
	calls  []ExecutorCall

	// OnExecute, when set, bypasses the script entirely.
	OnExecute func(ctx context.Context, messages []llmDomain.Message, model string, options ...llmDomain.Option) (llmDomain.Response, error)
}

// NewMockExecutor creates an executor with no scripted responses. With an
// empty script and no hook, Execute returns ErrNoResponse.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

// WithResponse appends a successful response to the script.
func (m *MockExecutor) WithResponse(content string) *MockExecutor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, scriptedResponse{response: llmDomain.Response{Content: content}})
	return m
}

// WithError appends a failing step to the script.
func (m *MockExecutor) WithError(err error) *MockExecutor {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, scriptedResponse{err: err})
	return m
}

// Execute implements llm/domain.CompletionExecutor.
func (m *MockExecutor) Execute(ctx context.Context, messages []llmDomain.Message, model string, options ...llmDomain.Option) (llmDomain.Response, error) {
	if m.OnExecute != nil {
		m.record(messages, model, options)
		return m.OnExecute(ctx, messages, model, options...)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, ExecutorCall{Messages: messages, Model: model, Options: options})

	if err := ctx.Err(); err != nil {
		return llmDomain.Response{}, err
	}
	if len(m.script) == 0 {
		return llmDomain.Response{}, llmDomain.ErrNoResponse
	}

	idx := len(m.calls) - 1
	if idx >= len(m.script) {
		idx = len(m.script) - 1
	}
	step := m.script[idx]
	if step.err != nil {
		return llmDomain.Response{}, step.err
	}
	resp := step.response
	resp.Model = model
	return resp, nil
}

func (m *MockExecutor) record(messages []llmDomain.Message, model string, options []llmDomain.Option) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, ExecutorCall{Messages: messages, Model: model, Options: options})
}

// CallCount returns the number of Execute invocations.
func (m *MockExecutor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded calls.
func (m *MockExecutor) Calls() []ExecutorCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ExecutorCall, len(m.calls))
	copy(out, m.calls)
	return out
}
