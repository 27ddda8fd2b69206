package selector

// ABOUTME: Pure predicate deciding whether a model record satisfies a requirement set
// ABOUTME: All checks AND-combine and short-circuit on the first failure

import (
	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
)

// Matches reports whether the record satisfies every requirement in the set.
// It is a pure function with no side effects; checks run in a fixed order and
// return on the first failure.
func Matches(record domain.ModelRecord, reqs RequirementSet) bool {
	if !record.HasAllCapabilities(reqs.capabilities) {
		return false
	}

	if reqs.maxInputCost != nil && record.Pricing.InputPer1K > *reqs.maxInputCost {
		return false
	}
	if reqs.maxOutputCost != nil && record.Pricing.OutputPer1K > *reqs.maxOutputCost {
		return false
	}

	// An unknown (zero) context length cannot prove it meets a positive floor.
	if reqs.minContextLength != nil && record.ContextLength < *reqs.minContextLength {
		return false
	}

	provider := record.Provider()
	if len(reqs.requiredProviders) > 0 && !containsString(reqs.requiredProviders, provider) {
		return false
	}
	if containsString(reqs.avoidedProviders, provider) {
		return false
	}

	for _, p := range reqs.avoidedPatterns {
		if p.matcher.Match(record.ID) {
			return false
		}
	}

	// A record without a release date cannot prove recency, so it fails any
	// released-after floor.
	if reqs.releasedAfter != nil {
		if record.CreatedAt == nil || !record.CreatedAt.After(*reqs.releasedAfter) {
			return false
		}
	}

	return true
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
