// ABOUTME: Tests for the fluent selector, ranking strategies, and degradation
// ABOUTME: Exercises chain immutability, determinism, and fallback totality
package selector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog"
	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/testutils/fixtures"
	"github.com/estiens/open-router-enhanced-sub001/pkg/testutils/mocks"
)

func newTestCatalog(t *testing.T, records ...domain.ModelRecord) *catalog.Catalog {
	t.Helper()
	cat := catalog.New(mocks.NewMockDataSource(records...))
	require.NoError(t, cat.Refresh(context.Background()))
	return cat
}

func TestChooseCheapestWithCapability(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("openai/gpt-4o",
			fixtures.WithCapabilities(domain.CapabilityChat, domain.CapabilityFunctionCalling),
			fixtures.WithPricing(0.005, 0.015),
		),
		fixtures.Model("anthropic/claude-haiku",
			fixtures.WithCapabilities(domain.CapabilityChat, domain.CapabilityFunctionCalling),
			fixtures.WithPricing(0.001, 0.005),
		),
		fixtures.Model("meta/llama-chat",
			fixtures.WithPricing(0.0002, 0.0002),
		),
	)

	model, err := New(cat).
		Require(domain.CapabilityFunctionCalling).
		OptimizeFor(StrategyCost).
		Choose(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-haiku", model)
}

func TestChooseReturnsEmptyOnNoMatch(t *testing.T) {
	cat := newTestCatalog(t, fixtures.Model("meta/llama-chat"))

	model, err := New(cat).
		Require(domain.CapabilityVision).
		Choose(context.Background())
	require.NoError(t, err)
	assert.Empty(t, model)

	id, record, err := New(cat).
		Require(domain.CapabilityVision).
		ChooseWithSpecs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Nil(t, record)
}

func TestChooseWithSpecsReturnsRecord(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("openai/gpt-4o-mini", fixtures.WithContextLength(128_000)),
	)

	id, record, err := New(cat).ChooseWithSpecs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o-mini", id)
	require.NotNil(t, record)
	assert.Equal(t, 128_000, record.ContextLength)
}

func TestChainingDoesNotMutateBase(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("openai/gpt-4o", fixtures.WithCapabilities(domain.CapabilityChat, domain.CapabilityVision)),
		fixtures.Model("meta/llama-chat"),
	)

	base := New(cat).Require(domain.CapabilityChat)
	withVision := base.Require(domain.CapabilityVision)
	withBudget := base.WithinBudget(0.001)

	assert.Len(t, base.Requirements().Capabilities(), 1)
	assert.Len(t, withVision.Requirements().Capabilities(), 2)
	assert.Len(t, withBudget.Requirements().Capabilities(), 1)

	// The base still matches both models after its descendants diverged.
	ids, err := base.ChooseWithFallbacks(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestStrategyLatestSortsNilCreatedAtLast(t *testing.T) {
	old := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cat := newTestCatalog(t,
		fixtures.Model("a/dated-old", fixtures.WithCreatedAt(old)),
		fixtures.Model("b/undated"),
		fixtures.Model("c/dated-new", fixtures.WithCreatedAt(recent)),
	)

	ids, err := New(cat).
		OptimizeFor(StrategyLatest).
		ChooseWithFallbacks(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c/dated-new", "a/dated-old", "b/undated"}, ids)
}

func TestStrategyContextPrefersLargerWindow(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("a/small", fixtures.WithContextLength(8_000)),
		fixtures.Model("b/large", fixtures.WithContextLength(1_000_000)),
		fixtures.Model("c/unknown", fixtures.WithContextLength(0)),
	)

	ids, err := New(cat).
		OptimizeFor(StrategyContext).
		ChooseWithFallbacks(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b/large", "a/small", "c/unknown"}, ids)
}

func TestStrategyPerformancePrefersPremiumThenCheaper(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("a/economy", fixtures.WithPricing(0.0001, 0.0004)),
		fixtures.Model("b/premium-pricey", fixtures.WithPricing(0.05, 0.1)),
		fixtures.Model("c/premium-cheap", fixtures.WithPricing(0.01, 0.03)),
	)

	ids, err := New(cat).
		OptimizeFor(StrategyPerformance).
		ChooseWithFallbacks(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c/premium-cheap", "b/premium-pricey", "a/economy"}, ids)
}

func TestPreferProvidersBreaksTies(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("alpha/model", fixtures.WithPricing(0.002, 0.006)),
		fixtures.Model("beta/model", fixtures.WithPricing(0.002, 0.006)),
	)

	model, err := New(cat).
		PreferProviders("beta").
		Choose(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "beta/model", model)

	// Preference never filters: a cheaper non-preferred model still wins.
	cat = newTestCatalog(t,
		fixtures.Model("alpha/cheap", fixtures.WithPricing(0.0005, 0.001)),
		fixtures.Model("beta/model", fixtures.WithPricing(0.002, 0.006)),
	)
	model, err = New(cat).
		PreferProviders("beta").
		Choose(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alpha/cheap", model)
}

func TestChooseIsDeterministicForTies(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("c/tied", fixtures.WithPricing(0.001, 0.002)),
		fixtures.Model("a/tied", fixtures.WithPricing(0.001, 0.002)),
		fixtures.Model("b/tied", fixtures.WithPricing(0.001, 0.002)),
	)

	s := New(cat)
	for i := 0; i < 25; i++ {
		model, err := s.Choose(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "a/tied", model)
	}
}

func TestAvoidPatternsExcludesMatches(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("openai/gpt-5-preview", fixtures.WithPricing(0.0001, 0.0002)),
		fixtures.Model("openai/gpt-4o", fixtures.WithPricing(0.005, 0.015)),
	)

	model, err := New(cat).
		AvoidPatterns("*-preview").
		Choose(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o", model)
}

func TestAvoidPatternsInvalidGlobSurfacesAtChoose(t *testing.T) {
	cat := newTestCatalog(t, fixtures.Model("openai/gpt-4o"))

	_, err := New(cat).
		AvoidPatterns("[").
		Choose(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid avoid pattern")
}

func TestProviderFilters(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("openai/gpt-4o-mini", fixtures.WithPricing(0.00015, 0.0006)),
		fixtures.Model("anthropic/claude-haiku", fixtures.WithPricing(0.001, 0.005)),
		fixtures.Model("meta/llama-chat", fixtures.WithPricing(0.0001, 0.0001)),
	)

	model, err := New(cat).
		RequireProviders("anthropic").
		Choose(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-haiku", model)

	model, err = New(cat).
		AvoidProviders("meta", "openai").
		Choose(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-haiku", model)
}

func TestNewerThanExcludesUndatedRecords(t *testing.T) {
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cat := newTestCatalog(t,
		fixtures.Model("a/undated"),
		fixtures.Model("b/older", fixtures.WithCreatedAt(cutoff.Add(-time.Hour))),
		fixtures.Model("c/exact", fixtures.WithCreatedAt(cutoff)),
		fixtures.Model("d/newer", fixtures.WithCreatedAt(cutoff.Add(time.Hour))),
	)

	ids, err := New(cat).
		NewerThan(cutoff).
		ChooseWithFallbacks(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"d/newer"}, ids)
}

func TestChooseWithFallbackDegradesInOrder(t *testing.T) {
	recent := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	// Only an older, pricier model exists. Full requirements fail; dropping
	// the recency floor alone is not enough, but dropping the output cost
	// ceiling afterwards yields a match.
	cat := newTestCatalog(t,
		fixtures.Model("openai/gpt-4o",
			fixtures.WithCreatedAt(recent.Add(-24*time.Hour)),
			fixtures.WithPricing(0.002, 0.02),
		),
	)

	model, err := New(cat).
		NewerThan(recent).
		WithinOutputBudget(0.01).
		ChooseWithFallback(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o", model)
}

func TestChooseWithFallbackFinalFallbackIsCheapest(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("a/pricey", fixtures.WithPricing(0.01, 0.02)),
		fixtures.Model("b/cheap", fixtures.WithPricing(0.0001, 0.0002)),
	)

	// The vision capability is unsatisfiable, so every degradation step up
	// to capabilities-only fails and the final fallback picks the cheapest
	// model regardless of requirements.
	model, err := New(cat).
		Require(domain.CapabilityVision).
		WithinBudget(0.005).
		ChooseWithFallback(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "b/cheap", model)
}

func TestChooseWithFallbackEmptyCatalog(t *testing.T) {
	cat := newTestCatalog(t)

	model, err := New(cat).
		Require(domain.CapabilityChat).
		ChooseWithFallback(context.Background())
	require.NoError(t, err)
	assert.Empty(t, model)
}

func TestChooseWithFallbacksHonorsLimit(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("a/one", fixtures.WithPricing(0.001, 0.002)),
		fixtures.Model("b/two", fixtures.WithPricing(0.002, 0.004)),
		fixtures.Model("c/three", fixtures.WithPricing(0.003, 0.006)),
	)

	ids, err := New(cat).ChooseWithFallbacks(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/one", "b/two"}, ids)
}

func TestMinContextRejectsUnknownLength(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("a/unknown", fixtures.WithContextLength(0)),
		fixtures.Model("b/big", fixtures.WithContextLength(200_000)),
	)

	ids, err := New(cat).
		MinContext(100_000).
		ChooseWithFallbacks(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b/big"}, ids)
}
