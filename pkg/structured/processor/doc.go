// Package processor handles the text-level mechanics of structured output:
// extracting JSON from raw LLM responses and building the repair prompts
// the healing orchestrator sends to its healer model.
package processor
