package selector

// ABOUTME: Cost estimation over catalog pricing and token counts
// ABOUTME: Decimal arithmetic internally, float out; callers round for display

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog"
)

var oneThousand = decimal.NewFromInt(1000)

// Estimator computes completion cost estimates from catalog pricing.
type Estimator struct {
	catalog *catalog.Catalog
}

// NewEstimator creates an estimator over the given catalog.
func NewEstimator(cat *catalog.Catalog) *Estimator {
	return &Estimator{catalog: cat}
}

// Estimate returns the estimated USD cost of a completion:
// input_tokens/1000 * input price + output_tokens/1000 * output price.
// No rounding is applied. Returns catalog.ErrModelNotFound when the model id
// is unknown.
func (e *Estimator) Estimate(ctx context.Context, modelID string, inputTokens, outputTokens int) (float64, error) {
	record, err := e.catalog.Get(ctx, modelID)
	if err != nil {
		return 0, err
	}

	input := decimal.NewFromInt(int64(inputTokens)).
		Div(oneThousand).
		Mul(decimal.NewFromFloat(record.Pricing.InputPer1K))
	output := decimal.NewFromInt(int64(outputTokens)).
		Div(oneThousand).
		Mul(decimal.NewFromFloat(record.Pricing.OutputPer1K))

	return input.Add(output).InexactFloat64(), nil
}
