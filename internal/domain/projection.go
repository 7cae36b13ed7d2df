package domain

import (
	"github.com/shopspring/decimal"
)

// YearlySnapshot represents the four wealth balances at the end of one simulated age
type YearlySnapshot struct {
	Age int `json:"age" yaml:"age"`

	NoRisk          decimal.Decimal `json:"no_risk" yaml:"no_risk"`                   // risk-free only
	WithRisk        decimal.Decimal `json:"with_risk" yaml:"with_risk"`               // stochastic path at the configured allocation
	Expected        decimal.Decimal `json:"expected" yaml:"expected"`                 // deterministic blend of expected returns
	LowerPercentile decimal.Decimal `json:"lower_percentile" yaml:"lower_percentile"` // downside-biased deterministic path

	MonthlyContribution decimal.Decimal `json:"monthly_contribution" yaml:"monthly_contribution"`
	AnnualContribution  decimal.Decimal `json:"annual_contribution" yaml:"annual_contribution"`
	RequiredCorpus      decimal.Decimal `json:"required_corpus" yaml:"required_corpus"`
}

// Balances returns the four balances in a fixed order (no-risk, with-risk, expected, lower)
func (s *YearlySnapshot) Balances() [4]decimal.Decimal {
	return [4]decimal.Decimal{s.NoRisk, s.WithRisk, s.Expected, s.LowerPercentile}
}

// Subtract removes amount from all four balances
func (s *YearlySnapshot) Subtract(amount decimal.Decimal) {
	s.NoRisk = s.NoRisk.Sub(amount)
	s.WithRisk = s.WithRisk.Sub(amount)
	s.Expected = s.Expected.Sub(amount)
	s.LowerPercentile = s.LowerPercentile.Sub(amount)
}

// CloneSnapshots returns an independent copy of a snapshot sequence
func CloneSnapshots(in []YearlySnapshot) []YearlySnapshot {
	if in == nil {
		return nil
	}
	out := make([]YearlySnapshot, len(in))
	copy(out, in)
	return out
}

// IndependenceFinding holds the first ages at which each path met the target.
// A nil age means the target was not reached within the projection.
type IndependenceFinding struct {
	NoRiskAge   *int `json:"no_risk_age" yaml:"no_risk_age"`
	WithRiskAge *int `json:"with_risk_age" yaml:"with_risk_age"`
}

// Record sets each age that is still unset and whose balance meets target
func (f *IndependenceFinding) Record(s *YearlySnapshot, target decimal.Decimal) {
	if f.NoRiskAge == nil && s.NoRisk.GreaterThanOrEqual(target) {
		age := s.Age
		f.NoRiskAge = &age
	}
	if f.WithRiskAge == nil && s.WithRisk.GreaterThanOrEqual(target) {
		age := s.Age
		f.WithRiskAge = &age
	}
}

// Clone returns a copy that does not share age pointers
func (f IndependenceFinding) Clone() IndependenceFinding {
	var out IndependenceFinding
	if f.NoRiskAge != nil {
		v := *f.NoRiskAge
		out.NoRiskAge = &v
	}
	if f.WithRiskAge != nil {
		v := *f.WithRiskAge
		out.WithRiskAge = &v
	}
	return out
}

// PathStatistics summarizes the realized monthly returns of the with-risk path
type PathStatistics struct {
	Months               int     `json:"months" yaml:"months"`
	MonthlyMean          float64 `json:"monthly_mean" yaml:"monthly_mean"`
	MonthlyStdDev        float64 `json:"monthly_std_dev" yaml:"monthly_std_dev"`
	AnnualizedReturn     float64 `json:"annualized_return" yaml:"annualized_return"`
	AnnualizedVolatility float64 `json:"annualized_volatility" yaml:"annualized_volatility"`
}

// ProjectionResult is the output of one projector pass
type ProjectionResult struct {
	Target               decimal.Decimal     `json:"target" yaml:"target"`
	FutureAnnualSpending decimal.Decimal     `json:"future_annual_spending" yaml:"future_annual_spending"`
	Snapshots            []YearlySnapshot    `json:"snapshots" yaml:"snapshots"`
	Finding              IndependenceFinding `json:"finding" yaml:"finding"`
	PathStats            PathStatistics      `json:"path_stats" yaml:"path_stats"`
}

// ScenarioSummary provides the key results of a scenario run
type ScenarioSummary struct {
	RunID                string              `json:"run_id" yaml:"run_id"`
	Name                 string              `json:"name" yaml:"name"`
	CurrentAge           int                 `json:"current_age" yaml:"current_age"`
	RetirementAge        int                 `json:"retirement_age" yaml:"retirement_age"`
	Target               decimal.Decimal     `json:"target" yaml:"target"`
	FutureAnnualSpending decimal.Decimal     `json:"future_annual_spending" yaml:"future_annual_spending"`
	Finding              IndependenceFinding `json:"finding" yaml:"finding"` // before any shock
	Projection           []YearlySnapshot    `json:"projection" yaml:"projection"`
	PathStats            PathStatistics      `json:"path_stats" yaml:"path_stats"`
	Assumptions          []string            `json:"assumptions" yaml:"assumptions"`

	// Shock results are only populated when a shock was configured and in range
	Shock             *ShockEvent          `json:"shock,omitempty" yaml:"shock,omitempty"`
	ShockApplied      bool                 `json:"shock_applied" yaml:"shock_applied"`
	ShockWarning      string               `json:"shock_warning,omitempty" yaml:"shock_warning,omitempty"`
	ShockedFinding    *IndependenceFinding `json:"shocked_finding,omitempty" yaml:"shocked_finding,omitempty"`
	ShockedProjection []YearlySnapshot     `json:"shocked_projection,omitempty" yaml:"shocked_projection,omitempty"`

	// Final balances of the effective (post-shock when applied) projection
	FinalNoRisk          decimal.Decimal `json:"final_no_risk" yaml:"final_no_risk"`
	FinalWithRisk        decimal.Decimal `json:"final_with_risk" yaml:"final_with_risk"`
	FinalExpected        decimal.Decimal `json:"final_expected" yaml:"final_expected"`
	FinalLowerPercentile decimal.Decimal `json:"final_lower_percentile" yaml:"final_lower_percentile"`
}

// EffectiveProjection returns the shocked projection when a shock applied, else the base projection
func (s *ScenarioSummary) EffectiveProjection() []YearlySnapshot {
	if s.ShockApplied {
		return s.ShockedProjection
	}
	return s.Projection
}

// EffectiveFinding returns the post-shock finding when a shock applied, else the base finding
func (s *ScenarioSummary) EffectiveFinding() IndependenceFinding {
	if s.ShockApplied && s.ShockedFinding != nil {
		return *s.ShockedFinding
	}
	return s.Finding
}

// ScenarioComparison groups the summaries of every scenario in a file
type ScenarioComparison struct {
	Currency  string            `json:"currency" yaml:"currency"`
	Scenarios []ScenarioSummary `json:"scenarios" yaml:"scenarios"`
}
