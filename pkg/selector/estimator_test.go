// ABOUTME: Tests for cost estimation over catalog pricing
package selector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog"
	"github.com/estiens/open-router-enhanced-sub001/pkg/testutils/fixtures"
)

func TestEstimate(t *testing.T) {
	cat := newTestCatalog(t,
		fixtures.Model("openai/gpt-4o", fixtures.WithPricing(0.003, 0.015)),
		fixtures.Model("meta/free", fixtures.WithPricing(0, 0)),
	)
	estimator := NewEstimator(cat)

	cost, err := estimator.Estimate(context.Background(), "openai/gpt-4o", 1000, 500)
	require.NoError(t, err)
	assert.InDelta(t, 0.0105, cost, 1e-12)

	cost, err = estimator.Estimate(context.Background(), "meta/free", 50_000, 50_000)
	require.NoError(t, err)
	assert.Zero(t, cost)

	cost, err = estimator.Estimate(context.Background(), "openai/gpt-4o", 0, 0)
	require.NoError(t, err)
	assert.Zero(t, cost)
}

func TestEstimateUnknownModel(t *testing.T) {
	cat := newTestCatalog(t, fixtures.Model("openai/gpt-4o"))
	estimator := NewEstimator(cat)

	_, err := estimator.Estimate(context.Background(), "nonexistent/model", 100, 100)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrModelNotFound)
}
