// ABOUTME: Tests for the OpenRouter chat-completions executor
package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estiens/open-router-enhanced-sub001/pkg/llm/domain"
)

func TestExecuteMapsRequestAndResponse(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "gen-1",
			"model": "openai/gpt-4o-mini",
			"choices": [{"message": {"role": "assistant", "content": "{\"ok\": true}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 42, "completion_tokens": 7}
		}`))
	}))
	defer server.Close()

	p := NewOpenRouterProviderWithBaseURL("sk-test", server.URL)
	resp, err := p.Execute(context.Background(),
		[]domain.Message{
			domain.NewSystemMessage("fix the JSON"),
			domain.NewUserMessage("broken payload"),
		},
		"openai/gpt-4o-mini",
		domain.WithTemperature(0),
		domain.WithJSONOnly(),
	)
	require.NoError(t, err)

	assert.Equal(t, `{"ok": true}`, resp.Content)
	assert.Equal(t, "openai/gpt-4o-mini", resp.Model)
	assert.Equal(t, 42, resp.Usage.InputTokens)
	assert.Equal(t, 7, resp.Usage.OutputTokens)

	assert.Equal(t, "openai/gpt-4o-mini", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Zero(t, captured.Temperature)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
}

func TestExecuteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error": {"code": 402, "message": "insufficient credits"}}`))
	}))
	defer server.Close()

	p := NewOpenRouterProviderWithBaseURL("sk-test", server.URL)
	_, err := p.Execute(context.Background(), []domain.Message{domain.NewUserMessage("hi")}, "any/model")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestFailed)
	assert.Contains(t, err.Error(), "insufficient credits")
}

func TestExecuteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "gen-1", "model": "any/model", "choices": []}`))
	}))
	defer server.Close()

	p := NewOpenRouterProviderWithBaseURL("sk-test", server.URL)
	_, err := p.Execute(context.Background(), []domain.Message{domain.NewUserMessage("hi")}, "any/model")
	assert.ErrorIs(t, err, domain.ErrNoResponse)
}

func TestExecuteContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client disconnect and
		// cancels the request context; otherwise Close() waits forever.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	p := NewOpenRouterProviderWithBaseURL("sk-test", server.URL)
	_, err := p.Execute(ctx, []domain.Message{domain.NewUserMessage("hi")}, "any/model")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
