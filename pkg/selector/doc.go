// Package selector resolves declarative model requirements against the
// catalog: a constraint-satisfaction pass (the pure Matches predicate)
// followed by strategy ranking, with graceful degradation when nothing
// satisfies the full requirement set.
//
// # Fluent API
//
// Selectors chain immutably: every method returns a new selector wrapping a
// copied RequirementSet, so a base selector is safe to reuse and to chain
// from multiple goroutines.
//
//	id, err := selector.New(cat).
//		Require(domain.CapabilityFunctionCalling).
//		WithinBudget(0.01).
//		OptimizeFor(selector.StrategyCost).
//		Choose(ctx)
//
// Choose returns "" (no error) when no model qualifies. ChooseWithFallback
// instead relaxes requirements one at a time, least essential first
// (released-after, the performance-tier placeholder, output cost, context
// floor, input cost, down to capabilities only), and finally returns the
// globally cheapest model, so it only returns "" on an empty catalog.
//
// # Ranking
//
// Four strategies order survivors: cost (cheapest input first, the default),
// performance (premium tier first, then cost), latest (newest first, undated
// records last), and context (largest window first). Preferred providers are
// a tie-break within equal strategy keys, never a filter.
//
// The package also carries the cost Estimator and the strict-mode
// CapabilityEnforcer, a thin layer that converts "no model supports this
// capability" into a CapabilityError where the selector itself stays quiet.
package selector
