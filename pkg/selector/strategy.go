package selector

// ABOUTME: Candidate ranking by optimization strategy with nil-safe ordering
// ABOUTME: Preferred providers act as a tie-break after the strategy key

import (
	"sort"

	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
)

// rank orders candidates best-first according to the active strategy. The
// sort is stable, so models the strategy considers equal keep catalog order.
// Preferred providers break ties after the strategy key.
func rank(candidates []domain.ModelRecord, reqs RequirementSet) []domain.ModelRecord {
	out := append([]domain.ModelRecord(nil), candidates...)
	strategy := reqs.Strategy()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ka, kb := strategyKey(a, strategy), strategyKey(b, strategy)
		if ka != kb {
			return ka < kb
		}
		// Tie-break: preferred providers ahead of the rest.
		pa := containsString(reqs.preferredProviders, a.Provider())
		pb := containsString(reqs.preferredProviders, b.Provider())
		return pa && !pb
	})

	return out
}

// sortByID orders records lexicographically by model id.
func sortByID(records []domain.ModelRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})
}

// strategyKey maps a record to a sortable scalar, ascending is better.
func strategyKey(r domain.ModelRecord, strategy Strategy) float64 {
	switch strategy {
	case StrategyPerformance:
		// Premium tier first, then cheaper within each band.
		tier := 1.0
		if r.Tier == domain.TierPremium {
			tier = 0.0
		}
		return tier*1e9 + r.Pricing.InputPer1K
	case StrategyLatest:
		// Newest first; a nil release time sorts after every dated record.
		if r.CreatedAt == nil {
			return 0
		}
		return -float64(r.CreatedAt.Unix())
	case StrategyContext:
		// Largest window first; unknown (zero) length sorts last.
		return -float64(r.ContextLength)
	default: // StrategyCost
		return r.Pricing.InputPer1K
	}
}
