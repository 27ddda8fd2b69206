// Package provider implements completion executors over real transports.
//
// OpenRouterProvider is the concrete domain.CompletionExecutor: it sends
// chat completions to OpenRouter's OpenAI-compatible endpoint, mapping
// request options onto the wire format and upstream failures onto the
// executor error sentinels. The policy packages depend only on the
// executor contract, so tests substitute mocks freely.
package provider
