package domain

// ABOUTME: Functional options for completion requests issued through an executor
// ABOUTME: Covers temperature, token limits, and response format hints

// Option represents a functional option for configuring a completion request.
// Options are applied in order by the executor before the request is sent.
type Option func(*RequestOptions)

// RequestOptions contains the generation parameters a completion executor
// understands. Executors ignore fields their upstream API does not support.
type RequestOptions struct {
	Temperature   float64
	MaxTokens     int
	StopSequences []string
	TopP          float64
	JSONOnly      bool
}

// DefaultRequestOptions returns the default request options.
func DefaultRequestOptions() *RequestOptions {
	return &RequestOptions{
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        1.0,
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temp float64) Option {
	return func(o *RequestOptions) {
		o.Temperature = temp
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(tokens int) Option {
	return func(o *RequestOptions) {
		o.MaxTokens = tokens
	}
}

// WithStopSequences sets sequences that stop generation.
func WithStopSequences(sequences []string) Option {
	return func(o *RequestOptions) {
		o.StopSequences = sequences
	}
}

// WithTopP sets the nucleus sampling probability.
func WithTopP(topP float64) Option {
	return func(o *RequestOptions) {
		o.TopP = topP
	}
}

// WithJSONOnly hints the executor to request a JSON-object response format
// where the upstream model supports it. Healing rounds set this.
func WithJSONOnly() Option {
	return func(o *RequestOptions) {
		o.JSONOnly = true
	}
}
