// ABOUTME: Shared model record fixtures for selector and catalog tests
// ABOUTME: Builders keep individual tests focused on the fields they vary
package fixtures

import (
	"time"

	catalogDomain "github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
)

// ModelOption mutates a fixture record.
type ModelOption func(*catalogDomain.ModelRecord)

// Model builds a chat-capable standard-tier record with the given id.
func Model(id string, opts ...ModelOption) catalogDomain.ModelRecord {
	record := catalogDomain.ModelRecord{
		ID:            id,
		Capabilities:  []catalogDomain.Capability{catalogDomain.CapabilityChat},
		Pricing:       catalogDomain.Pricing{InputPer1K: 0.002, OutputPer1K: 0.006},
		ContextLength: 16_000,
		Tier:          catalogDomain.TierStandard,
	}
	for _, opt := range opts {
		opt(&record)
	}
	return record
}

// WithCapabilities replaces the record's capabilities.
func WithCapabilities(caps ...catalogDomain.Capability) ModelOption {
	return func(r *catalogDomain.ModelRecord) {
		r.Capabilities = caps
	}
}

// WithPricing sets per-1k input and output prices.
func WithPricing(input, output float64) ModelOption {
	return func(r *catalogDomain.ModelRecord) {
		r.Pricing = catalogDomain.Pricing{InputPer1K: input, OutputPer1K: output}
		r.Tier = catalogDomain.TierFromPricing(r.Pricing)
	}
}

// WithContextLength sets the context window.
func WithContextLength(n int) ModelOption {
	return func(r *catalogDomain.ModelRecord) {
		r.ContextLength = n
	}
}

// WithTier overrides the performance tier.
func WithTier(tier catalogDomain.PerformanceTier) ModelOption {
	return func(r *catalogDomain.ModelRecord) {
		r.Tier = tier
	}
}

// WithCreatedAt sets the release timestamp.
func WithCreatedAt(t time.Time) ModelOption {
	return func(r *catalogDomain.ModelRecord) {
		r.CreatedAt = &t
	}
}
