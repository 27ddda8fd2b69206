package selector

// ABOUTME: Fluent model selector over the catalog with graceful degradation
// ABOUTME: Chaining returns new selectors; Choose never errors on "no match"

import (
	"context"
	"fmt"
	"time"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog"

	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog"
	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/util/logging"
)

// Selector builds a RequirementSet through a fluent API and resolves it
// against the catalog. Every chaining method returns a new selector wrapping
// an updated copy of the requirement set, so a base selector can be reused
// and chained from concurrently.
//
// Choose and its variants return an empty result, not an error, when no
// model satisfies the requirements; they error only when the catalog itself
// is unavailable (or a chained glob pattern failed to compile).
type Selector struct {
	catalog *catalog.Catalog
	reqs    RequirementSet
	logger  zerolog.Logger

	// err carries the first chaining failure (an invalid glob) so fluent
	// call sites only have to check once, at Choose time.
	err error
}

// Option configures a Selector.
type Option func(*Selector)

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Selector) {
		s.logger = logger
	}
}

// New creates a selector over the given catalog with an empty requirement
// set and the default cost strategy.
func New(cat *catalog.Catalog, opts ...Option) *Selector {
	s := &Selector{
		catalog: cat,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// fork copies the selector with a fresh requirement set for the next link in
// the chain.
func (s *Selector) fork() *Selector {
	return &Selector{
		catalog: s.catalog,
		reqs:    s.reqs.clone(),
		logger:  s.logger,
		err:     s.err,
	}
}

// Require adds capability requirements. A model must have all of them.
func (s *Selector) Require(caps ...domain.Capability) *Selector {
	next := s.fork()
	next.reqs = next.reqs.unionCapabilities(caps)
	return next
}

// WithinBudget sets the input cost ceiling in USD per 1k tokens.
func (s *Selector) WithinBudget(maxInputCost float64) *Selector {
	next := s.fork()
	next.reqs.maxInputCost = &maxInputCost
	return next
}

// WithinOutputBudget sets the output cost ceiling in USD per 1k tokens.
func (s *Selector) WithinOutputBudget(maxOutputCost float64) *Selector {
	next := s.fork()
	next.reqs.maxOutputCost = &maxOutputCost
	return next
}

// MinContext sets the minimum context window in tokens.
func (s *Selector) MinContext(tokens int) *Selector {
	next := s.fork()
	next.reqs.minContextLength = &tokens
	return next
}

// RequireProviders restricts candidates to the named providers.
func (s *Selector) RequireProviders(names ...string) *Selector {
	next := s.fork()
	next.reqs.requiredProviders = append(next.reqs.requiredProviders, names...)
	return next
}

// AvoidProviders excludes candidates from the named providers.
func (s *Selector) AvoidProviders(names ...string) *Selector {
	next := s.fork()
	next.reqs.avoidedProviders = append(next.reqs.avoidedProviders, names...)
	return next
}

// PreferProviders biases ranking toward the named providers. Preference is a
// tie-break after the strategy ordering, never a filter.
func (s *Selector) PreferProviders(names ...string) *Selector {
	next := s.fork()
	next.reqs.preferredProviders = append(next.reqs.preferredProviders, names...)
	return next
}

// AvoidPatterns excludes any model whose id matches one of the glob
// patterns, e.g. "*-preview" or "openai/*-turbo".
func (s *Selector) AvoidPatterns(patterns ...string) *Selector {
	next := s.fork()
	for _, raw := range patterns {
		matcher, err := glob.Compile(raw)
		if err != nil {
			if next.err == nil {
				next.err = fmt.Errorf("invalid avoid pattern %q: %w", raw, err)
			}
			continue
		}
		next.reqs.avoidedPatterns = append(next.reqs.avoidedPatterns, avoidPattern{raw: raw, matcher: matcher})
	}
	return next
}

// NewerThan requires models released strictly after the given time. Models
// without a known release time fail this requirement.
func (s *Selector) NewerThan(t time.Time) *Selector {
	next := s.fork()
	next.reqs.releasedAfter = &t
	return next
}

// OptimizeFor sets the ranking strategy.
func (s *Selector) OptimizeFor(strategy Strategy) *Selector {
	next := s.fork()
	next.reqs.strategy = strategy
	return next
}

// Requirements returns a copy of the requirement set built so far.
func (s *Selector) Requirements() RequirementSet {
	return s.reqs.clone()
}

// Choose returns the single best model id, or "" when nothing matches.
func (s *Selector) Choose(ctx context.Context) (string, error) {
	id, _, err := s.ChooseWithSpecs(ctx)
	return id, err
}

// ChooseWithSpecs returns the best model id together with its catalog
// record. The record is nil when nothing matches.
func (s *Selector) ChooseWithSpecs(ctx context.Context) (string, *domain.ModelRecord, error) {
	ranked, err := s.evaluate(ctx, s.reqs)
	if err != nil {
		return "", nil, err
	}
	if len(ranked) == 0 {
		return "", nil, nil
	}
	best := ranked[0]
	return best.ID, &best, nil
}

// ChooseWithFallbacks returns up to limit model ids ranked best-first,
// suitable for use as an ordered fallback chain.
func (s *Selector) ChooseWithFallbacks(ctx context.Context, limit int) ([]string, error) {
	ranked, err := s.evaluate(ctx, s.reqs)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// degradationStep names one relaxation of the requirement set, applied in
// least-essential-first order.
type degradationStep struct {
	name  string
	relax func(RequirementSet) RequirementSet
}

// degradationOrder is the fixed drop order for graceful degradation. The
// performance-tier step is retained for order stability even though the tier
// only influences ranking here, so dropping it cannot change the candidate
// set.
var degradationOrder = []degradationStep{
	{name: "released_after", relax: RequirementSet.withoutReleasedAfter},
	{name: "performance_tier", relax: RequirementSet.clone},
	{name: "max_output_cost", relax: RequirementSet.withoutMaxOutputCost},
	{name: "min_context_length", relax: RequirementSet.withoutMinContext},
	{name: "max_input_cost", relax: RequirementSet.withoutMaxInputCost},
	{name: "capabilities_only", relax: RequirementSet.capabilitiesOnly},
}

// ChooseWithFallback resolves with graceful degradation: when the full
// requirement set yields nothing, requirements are dropped one at a time in
// a fixed least-essential-first order until a candidate survives. The final
// fallback ignores all requirements and returns the globally cheapest model,
// so the result is "" only when the catalog itself is empty.
func (s *Selector) ChooseWithFallback(ctx context.Context) (string, error) {
	ranked, err := s.evaluate(ctx, s.reqs)
	if err != nil {
		return "", err
	}
	if len(ranked) > 0 {
		return ranked[0].ID, nil
	}

	reqs := s.reqs
	for _, step := range degradationOrder {
		reqs = step.relax(reqs)
		ranked, err = s.evaluate(ctx, reqs)
		if err != nil {
			return "", err
		}
		if len(ranked) > 0 {
			s.logger.Debug().
				Str("dropped", step.name).
				Str("model", ranked[0].ID).
				Msg("selector degraded requirements")
			return ranked[0].ID, nil
		}
	}

	// Final fallback: cheapest model in the catalog, requirements ignored.
	all, err := s.catalog.All(ctx)
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return "", nil
	}
	cheapest := rank(collect(all), RequirementSet{strategy: StrategyCost})
	s.logger.Debug().
		Str("model", cheapest[0].ID).
		Msg("selector fell back to cheapest model")
	return cheapest[0].ID, nil
}

// evaluate filters the catalog through the predicate and ranks survivors.
func (s *Selector) evaluate(ctx context.Context, reqs RequirementSet) ([]domain.ModelRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	all, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.ModelRecord, 0, len(all))
	for _, record := range all {
		if Matches(record, reqs) {
			candidates = append(candidates, record)
		}
	}
	// Map iteration order is random; pin a deterministic baseline before the
	// stable ranking sort so tied candidates resolve the same way every call.
	sortByID(candidates)
	return rank(candidates, reqs), nil
}

// collect flattens a catalog snapshot into a slice with a deterministic
// baseline order (by id), so stable ranking is reproducible across calls.
func collect(all map[string]domain.ModelRecord) []domain.ModelRecord {
	records := make([]domain.ModelRecord, 0, len(all))
	for _, r := range all {
		records = append(records, r)
	}
	sortByID(records)
	return records
}
