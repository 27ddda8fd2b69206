package selector

// ABOUTME: Immutable requirement-set value object backing the fluent selector
// ABOUTME: Chaining copies the set; a built set is safe to share across goroutines

import (
	"time"

	"github.com/gobwas/glob"

	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
)

// Strategy is the ranking rule used to order surviving candidates.
type Strategy string

const (
	// StrategyCost ranks by input cost, cheapest first. The default.
	StrategyCost Strategy = "cost"

	// StrategyPerformance ranks premium-tier models first, then by cost.
	StrategyPerformance Strategy = "performance"

	// StrategyLatest ranks by release time, newest first. Records without a
	// release time sort last.
	StrategyLatest Strategy = "latest"

	// StrategyContext ranks by context length, largest first.
	StrategyContext Strategy = "context"
)

// avoidPattern couples a raw glob with its compiled matcher.
type avoidPattern struct {
	raw     string
	matcher glob.Glob
}

// RequirementSet is the declarative constraint set a selector evaluates
// models against. It is a value object: the fluent selector methods build
// new sets rather than mutating one in place, so a base set can be chained
// from concurrently without synchronization.
type RequirementSet struct {
	capabilities       []domain.Capability
	maxInputCost       *float64
	maxOutputCost      *float64
	minContextLength   *int
	requiredProviders  []string
	avoidedProviders   []string
	preferredProviders []string
	avoidedPatterns    []avoidPattern
	releasedAfter      *time.Time
	strategy           Strategy
}

// Strategy returns the active ranking strategy, defaulting to cost.
func (r RequirementSet) Strategy() Strategy {
	if r.strategy == "" {
		return StrategyCost
	}
	return r.strategy
}

// Capabilities returns the required capability tags.
func (r RequirementSet) Capabilities() []domain.Capability {
	out := make([]domain.Capability, len(r.capabilities))
	copy(out, r.capabilities)
	return out
}

// clone deep-copies the set so chained updates never alias the receiver.
func (r RequirementSet) clone() RequirementSet {
	out := r
	out.capabilities = append([]domain.Capability(nil), r.capabilities...)
	out.requiredProviders = append([]string(nil), r.requiredProviders...)
	out.avoidedProviders = append([]string(nil), r.avoidedProviders...)
	out.preferredProviders = append([]string(nil), r.preferredProviders...)
	out.avoidedPatterns = append([]avoidPattern(nil), r.avoidedPatterns...)
	if r.maxInputCost != nil {
		v := *r.maxInputCost
		out.maxInputCost = &v
	}
	if r.maxOutputCost != nil {
		v := *r.maxOutputCost
		out.maxOutputCost = &v
	}
	if r.minContextLength != nil {
		v := *r.minContextLength
		out.minContextLength = &v
	}
	if r.releasedAfter != nil {
		v := *r.releasedAfter
		out.releasedAfter = &v
	}
	return out
}

// unionCapabilities returns a copy with the given capabilities added,
// deduplicated.
func (r RequirementSet) unionCapabilities(caps []domain.Capability) RequirementSet {
	out := r.clone()
	for _, c := range caps {
		seen := false
		for _, have := range out.capabilities {
			if have == c {
				seen = true
				break
			}
		}
		if !seen {
			out.capabilities = append(out.capabilities, c)
		}
	}
	return out
}

// capabilitiesOnly strips everything except capability requirements. Used by
// the graceful-degradation loop.
func (r RequirementSet) capabilitiesOnly() RequirementSet {
	out := RequirementSet{strategy: r.strategy}
	out.capabilities = append([]domain.Capability(nil), r.capabilities...)
	return out
}

// withoutReleasedAfter returns a copy with the recency floor dropped.
func (r RequirementSet) withoutReleasedAfter() RequirementSet {
	out := r.clone()
	out.releasedAfter = nil
	return out
}

// withoutMaxOutputCost returns a copy with the output cost ceiling dropped.
func (r RequirementSet) withoutMaxOutputCost() RequirementSet {
	out := r.clone()
	out.maxOutputCost = nil
	return out
}

// withoutMinContext returns a copy with the context floor dropped.
func (r RequirementSet) withoutMinContext() RequirementSet {
	out := r.clone()
	out.minContextLength = nil
	return out
}

// withoutMaxInputCost returns a copy with the input cost ceiling dropped.
func (r RequirementSet) withoutMaxInputCost() RequirementSet {
	out := r.clone()
	out.maxInputCost = nil
	return out
}
