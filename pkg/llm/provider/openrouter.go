package provider

// ABOUTME: OpenRouter chat-completions executor over the /chat/completions endpoint
// ABOUTME: Maps domain messages and request options onto the OpenAI-compatible wire format

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/estiens/open-router-enhanced-sub001/pkg/llm/domain"
)

// DefaultBaseURL is the OpenRouter API endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

const defaultTimeout = 60 * time.Second

// OpenRouterProvider executes chat completions against OpenRouter. It
// implements domain.CompletionExecutor.
type OpenRouterProvider struct {
	client *resty.Client
	apiKey string
}

// NewOpenRouterProvider creates a provider against the public OpenRouter API.
func NewOpenRouterProvider(apiKey string) *OpenRouterProvider {
	return NewOpenRouterProviderWithBaseURL(apiKey, DefaultBaseURL)
}

// NewOpenRouterProviderWithBaseURL creates a provider against a custom base
// URL. Used by tests and proxied deployments.
func NewOpenRouterProviderWithBaseURL(apiKey, baseURL string) *OpenRouterProvider {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(defaultTimeout)
	return &OpenRouterProvider{client: client, apiKey: apiKey}
}

// Wire types for the OpenAI-compatible chat completions endpoint.

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	TopP           float64         `json:"top_p,omitempty"`
	Stop           []string        `json:"stop,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
	Error   *apiError    `json:"error,omitempty"`
}

type chatChoice struct {
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Execute implements domain.CompletionExecutor.
func (p *OpenRouterProvider) Execute(ctx context.Context, messages []domain.Message, model string, options ...domain.Option) (domain.Response, error) {
	opts := domain.DefaultRequestOptions()
	for _, opt := range options {
		opt(opts)
	}

	body := chatRequest{
		Model:       model,
		Messages:    mapMessages(messages),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
		TopP:        opts.TopP,
		Stop:        opts.StopSequences,
	}
	if opts.JSONOnly {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var result chatResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(p.apiKey).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post("/chat/completions")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Response{}, ctxErr
		}
		return domain.Response{}, fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		if result.Error != nil {
			return domain.Response{}, fmt.Errorf("%w: %s (status %d)", domain.ErrRequestFailed, result.Error.Message, resp.StatusCode())
		}
		return domain.Response{}, fmt.Errorf("%w: unexpected status code %d", domain.ErrRequestFailed, resp.StatusCode())
	}
	if len(result.Choices) == 0 {
		return domain.Response{}, domain.ErrNoResponse
	}

	return domain.Response{
		Content: result.Choices[0].Message.Content,
		Model:   result.Model,
		Usage: domain.Usage{
			InputTokens:  result.Usage.PromptTokens,
			OutputTokens: result.Usage.CompletionTokens,
		},
	}, nil
}

func mapMessages(messages []domain.Message) []chatMessage {
	out := make([]chatMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, chatMessage{Role: string(m.Role), Content: m.Content})
	}
	return out
}
