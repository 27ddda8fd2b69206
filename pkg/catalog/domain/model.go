// ABOUTME: Model metadata records as loaded from the OpenRouter catalog
// ABOUTME: Defines ModelRecord, Capability tags, Pricing, and the DataSource contract

package domain

import (
	"context"
	"strings"
	"time"
)

// Capability is a named feature tag a model may support.
type Capability string

const (
	// CapabilityChat indicates the model supports chat-style conversations.
	CapabilityChat Capability = "chat"

	// CapabilityFunctionCalling indicates the model supports tool/function calls.
	CapabilityFunctionCalling Capability = "function_calling"

	// CapabilityStructuredOutputs indicates native JSON-schema constrained output.
	CapabilityStructuredOutputs Capability = "structured_outputs"

	// CapabilityVision indicates the model accepts image input.
	CapabilityVision Capability = "vision"

	// CapabilityLongContext indicates a context window of at least LongContextThreshold tokens.
	CapabilityLongContext Capability = "long_context"
)

// LongContextThreshold is the context length, in tokens, at or above which a
// model is tagged with CapabilityLongContext.
const LongContextThreshold = 100_000

// PerformanceTier is a coarse ranking signal derived from pricing.
type PerformanceTier string

const (
	// TierEconomy covers the cheapest band of models.
	TierEconomy PerformanceTier = "economy"

	// TierStandard covers mid-priced models.
	TierStandard PerformanceTier = "standard"

	// TierPremium covers the most expensive band of models.
	TierPremium PerformanceTier = "premium"
)

// Pricing holds per-1k-token USD costs.
type Pricing struct {
	InputPer1K  float64 `json:"input_per_1k"`
	OutputPer1K float64 `json:"output_per_1k"`
}

// ModelRecord is one immutable row of catalog metadata, keyed by model id.
// Records are created in bulk when the catalog loads and discarded wholesale
// on the next refresh; they are never mutated in place.
type ModelRecord struct {
	// ID is the globally unique model identifier in provider/name format,
	// e.g. "anthropic/claude-3.5-sonnet".
	ID string `json:"id"`

	// Capabilities is the set of feature tags the model supports.
	Capabilities []Capability `json:"capabilities"`

	// Pricing holds the per-1k-token costs in USD.
	Pricing Pricing `json:"pricing"`

	// ContextLength is the context window in tokens. Zero means unknown.
	ContextLength int `json:"context_length"`

	// Tier is the coarse performance tier derived from pricing.
	Tier PerformanceTier `json:"performance_tier"`

	// CreatedAt is the model's release time. Nil when the upstream catalog
	// does not report one; sorting must tolerate nil.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// Description is the upstream free-text description, if any.
	Description string `json:"description,omitempty"`
}

// Provider returns the provider prefix of the model id (the part before the
// first "/"). Returns the whole id when no separator is present.
func (r ModelRecord) Provider() string {
	if idx := strings.Index(r.ID, "/"); idx > 0 {
		return r.ID[:idx]
	}
	return r.ID
}

// HasCapability reports whether the record carries the given capability tag.
func (r ModelRecord) HasCapability(c Capability) bool {
	for _, have := range r.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// HasAllCapabilities reports whether the record carries every given tag.
func (r ModelRecord) HasAllCapabilities(caps []Capability) bool {
	for _, c := range caps {
		if !r.HasCapability(c) {
			return false
		}
	}
	return true
}

// TierFromPricing derives the coarse performance tier from the input cost.
// Bands: economy below $0.001 per 1k input tokens, premium at or above $0.01,
// standard in between.
func TierFromPricing(p Pricing) PerformanceTier {
	switch {
	case p.InputPer1K < 0.001:
		return TierEconomy
	case p.InputPer1K >= 0.01:
		return TierPremium
	default:
		return TierStandard
	}
}

// DataSource is the external collaborator the catalog loads records from.
// Implementations map the upstream wire format into ModelRecord values.
type DataSource interface {
	// FetchAll retrieves the full model list from the upstream source.
	FetchAll(ctx context.Context) ([]ModelRecord, error)
}
