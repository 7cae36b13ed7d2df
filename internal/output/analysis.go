package output

import (
	"sort"

	"github.com/rpgo/fi-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName          string
	WithRiskAge           *int
	NoRiskAge             *int
	FinalWithRisk         decimal.Decimal
	YearsBeforeRetirement int
}

// AnalyzeScenarios picks the scenario whose with-risk path reaches its target
// earliest, breaking ties on the no-risk age and then the final with-risk
// balance. Scenarios that never reach their target rank last.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranks := make([]domain.ScenarioSummary, len(results.Scenarios))
	copy(ranks, results.Scenarios)
	sort.SliceStable(ranks, func(i, j int) bool {
		fi, fj := ranks[i].EffectiveFinding(), ranks[j].EffectiveFinding()
		if c := compareAges(fi.WithRiskAge, fj.WithRiskAge); c != 0 {
			return c < 0
		}
		if c := compareAges(fi.NoRiskAge, fj.NoRiskAge); c != 0 {
			return c < 0
		}
		return ranks[i].FinalWithRisk.GreaterThan(ranks[j].FinalWithRisk)
	})
	best := ranks[0]
	f := best.EffectiveFinding()
	rec := Recommendation{
		ScenarioName:  best.Name,
		WithRiskAge:   f.WithRiskAge,
		NoRiskAge:     f.NoRiskAge,
		FinalWithRisk: best.FinalWithRisk,
	}
	if f.WithRiskAge != nil {
		rec.YearsBeforeRetirement = best.RetirementAge - *f.WithRiskAge
	}
	return rec
}

// compareAges orders reached ages ascending with nil (never reached) last
func compareAges(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}
