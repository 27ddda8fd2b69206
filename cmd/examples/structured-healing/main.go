// ABOUTME: Demonstrates automatic healing of malformed structured output
// ABOUTME: Shows schema validation, bounded repair rounds, and observer hooks

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/estiens/open-router-enhanced-sub001/pkg/config"
	llmDomain "github.com/estiens/open-router-enhanced-sub001/pkg/llm/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/llm/provider"
	schemaDomain "github.com/estiens/open-router-enhanced-sub001/pkg/schema/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/schema/validation"
	structuredDomain "github.com/estiens/open-router-enhanced-sub001/pkg/structured/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/structured/healing"
	"github.com/estiens/open-router-enhanced-sub001/pkg/util/logging"
)

// demoHealer stands in for a real completion executor so the example runs
// without network access. It always returns a corrected payload.
type demoHealer struct{}

func (demoHealer) Execute(ctx context.Context, messages []llmDomain.Message, model string, options ...llmDomain.Option) (llmDomain.Response, error) {
	return llmDomain.Response{
		Content: `{"name": "Ada Lovelace", "age": 36}`,
		Model:   model,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	schema := &schemaDomain.Schema{
		Type: "object",
		Properties: map[string]schemaDomain.Property{
			"name": {Type: "string"},
			"age":  {Type: "integer"},
		},
		Required: []string{"name", "age"},
	}

	// With an API key configured, heal rounds go to the real healer model;
	// otherwise a canned executor keeps the example runnable offline.
	var healer llmDomain.CompletionExecutor = demoHealer{}
	if cfg.APIKey != "" {
		healer = provider.NewOpenRouterProviderWithBaseURL(cfg.APIKey, cfg.BaseURL)
	}

	orchestrator := healing.NewFromConfig(healer, cfg,
		healing.WithValidator(validation.New()),
		healing.WithLogger(logger),
		healing.WithObserver(func(event structuredDomain.HealingEvent) {
			fmt.Printf("healing session %s: healed=%v attempts=%d\n",
				event.SessionID, event.Healed, event.Attempts)
		}),
	)

	ctx := context.Background()

	// A clean payload resolves without any healer calls.
	data, err := orchestrator.Resolve(ctx, `{"name": "Grace Hopper", "age": 85}`, schema)
	if err != nil {
		log.Fatalf("Resolve failed: %v", err)
	}
	fmt.Printf("Clean payload resolved directly: %v\n", data)

	// A malformed payload (trailing prose, missing quote) goes through a
	// repair round against the healer model.
	malformed := "Sure! Here is the JSON you asked for:\n```json\n{\"name\": \"Ada Lovelace\", \"age\": }\n```"
	data, err = orchestrator.Resolve(ctx, malformed, schema)
	if err != nil {
		log.Fatalf("Resolve failed: %v", err)
	}
	fmt.Printf("Malformed payload healed: %v\n", data)
}
