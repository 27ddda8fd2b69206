// Package domain defines the conversation primitives and collaborator
// contracts used throughout the library.
//
// The policy layer (model selection, structured-output healing) is
// deliberately transport-agnostic: it consumes a CompletionExecutor, which is
// the minimal "send messages to a model, get a response back" capability, and
// produces model identifiers and healed payloads for the caller to feed back
// into that executor.
//
// # Core Types
//
// Message: a single text message with a Role (system, user, assistant).
//
// Response: the executor's reply; Content is the only field the policy layer
// reads, Usage is carried through for cost accounting.
//
// Option: functional options for generation parameters (temperature, max
// tokens, JSON-only response format).
//
// # Interfaces
//
// CompletionExecutor: the injected transport collaborator. ExecutorFunc
// adapts a bare function for tests and small programs.
package domain
