package calculation

import (
	"math"

	"github.com/rpgo/fi-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxHorizonYears caps the distance between the current and retirement age
const MaxHorizonYears = 80

var (
	minusOne      = decimal.NewFromInt(-1)
	minInflation  = decimal.NewFromFloat(-0.10)
	maxInflation  = decimal.NewFromInt(1)
	maxVolatility = decimal.NewFromInt(5)
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
)

// ValidateSimulationConfig checks a configuration before any simulation state is built.
// Every failure is an *domain.InvalidConfigError.
func ValidateSimulationConfig(cfg *domain.SimulationConfig) error {
	if cfg == nil {
		return domain.NewInvalidConfig("", "configuration is required")
	}
	if cfg.CurrentAge < 0 {
		return domain.NewInvalidConfig("current_age", "cannot be negative")
	}
	if cfg.RetirementAge <= cfg.CurrentAge {
		return domain.NewInvalidConfig("retirement_age", "must be greater than current age %d, got %d", cfg.CurrentAge, cfg.RetirementAge)
	}
	if cfg.Horizon() > MaxHorizonYears {
		return domain.NewInvalidConfig("retirement_age", "horizon of %d years exceeds %d", cfg.Horizon(), MaxHorizonYears)
	}
	if err := requireFinite("current_assets", cfg.CurrentAssets); err != nil {
		return err
	}
	if cfg.CurrentAssets.IsNegative() {
		return domain.NewInvalidConfig("current_assets", "cannot be negative")
	}
	if err := validateAssumptions(&cfg.Assumptions); err != nil {
		return err
	}
	if err := validateContributions(cfg); err != nil {
		return err
	}
	if cfg.Shock != nil {
		if err := validateShock(cfg.Shock); err != nil {
			return err
		}
	}
	return nil
}

func validateAssumptions(a *domain.Assumptions) error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"inflation_rate", a.InflationRate},
		{"risk_free_return", a.RiskFreeReturn},
		{"risky_return", a.RiskyReturn},
		{"risky_volatility", a.RiskyVolatility},
		{"risk_allocation", a.RiskAllocation},
		{"insurance_monthly_cost", a.InsuranceMonthlyCost},
		{"withdrawal_rate", a.WithdrawalRate},
	}
	for _, f := range fields {
		if err := requireFinite("assumptions."+f.name, f.value); err != nil {
			return err
		}
	}

	if a.InflationRate.LessThan(minInflation) || a.InflationRate.GreaterThan(maxInflation) {
		return domain.NewInvalidConfig("assumptions.inflation_rate", "must be between -10%% and 100%%, got %s", a.InflationRate)
	}
	if a.RiskFreeReturn.LessThanOrEqual(minusOne) {
		return domain.NewInvalidConfig("assumptions.risk_free_return", "must be greater than -100%%")
	}
	if a.RiskyReturn.LessThanOrEqual(minusOne) {
		return domain.NewInvalidConfig("assumptions.risky_return", "must be greater than -100%%")
	}
	if a.RiskyVolatility.IsNegative() || a.RiskyVolatility.GreaterThan(maxVolatility) {
		return domain.NewInvalidConfig("assumptions.risky_volatility", "must be between 0 and 500%%, got %s", a.RiskyVolatility)
	}
	if a.RiskAllocation.IsNegative() || a.RiskAllocation.GreaterThan(decimalOne) {
		return domain.NewInvalidConfig("assumptions.risk_allocation", "must be between 0 and 1, got %s", a.RiskAllocation)
	}
	if a.InsuranceMonthlyCost.IsNegative() {
		return domain.NewInvalidConfig("assumptions.insurance_monthly_cost", "cannot be negative")
	}
	if !a.WithdrawalRate.IsPositive() || a.WithdrawalRate.GreaterThan(decimalOne) {
		return domain.NewInvalidConfig("assumptions.withdrawal_rate", "must be in (0, 1], got %s", a.WithdrawalRate)
	}
	return nil
}

func validateContributions(cfg *domain.SimulationConfig) error {
	plan := cfg.Contributions
	switch plan.Kind() {
	case "growing":
		g := plan.Growing
		if err := requireFinite("contributions.growing.monthly_amount", g.MonthlyAmount); err != nil {
			return err
		}
		if g.MonthlyAmount.IsNegative() {
			return domain.NewInvalidConfig("contributions.growing.monthly_amount", "cannot be negative")
		}
		if g.AnnualIncrease.LessThanOrEqual(minusOne) {
			return domain.NewInvalidConfig("contributions.growing.annual_increase", "must be greater than -100%%")
		}
		if !cfg.DesiredMonthlySpending.IsPositive() {
			return domain.NewInvalidConfig("desired_monthly_spending", "must be positive")
		}
		return nil
	case "staged":
		return validateStages(cfg)
	case "ambiguous":
		return domain.NewInvalidConfig("contributions", "specify either growing or staged, not both")
	}
	return domain.NewInvalidConfig("contributions", "a growing or staged plan is required")
}

// validateStages requires 1..MaxStages stages covering [current age, retirement age]
// contiguously and in order.
func validateStages(cfg *domain.SimulationConfig) error {
	staged := cfg.Contributions.Staged
	n := len(staged.Stages)
	if n < 1 || n > domain.MaxStages {
		return domain.NewInvalidConfig("contributions.staged.stages", "must contain between 1 and %d stages, got %d", domain.MaxStages, n)
	}
	if !staged.AnnualCostOfLiving.IsPositive() {
		return domain.NewInvalidConfig("contributions.staged.annual_cost_of_living", "must be positive")
	}
	if cfg.RetirementAge < domain.ReferenceAdultAge {
		return domain.NewInvalidConfig("retirement_age", "staged plans require a retirement age of at least %d", domain.ReferenceAdultAge)
	}

	expectedStart := cfg.CurrentAge
	for i, st := range staged.Stages {
		if st.StartAge != expectedStart {
			return domain.NewInvalidConfig("contributions.staged.stages", "stage %d must start at age %d, got %d", i+1, expectedStart, st.StartAge)
		}
		if st.EndAge < st.StartAge {
			return domain.NewInvalidConfig("contributions.staged.stages", "stage %d ends (%d) before it starts (%d)", i+1, st.EndAge, st.StartAge)
		}
		if err := requireFinite("contributions.staged.stages.monthly_amount", st.MonthlyAmount); err != nil {
			return err
		}
		if st.MonthlyAmount.IsNegative() {
			return domain.NewInvalidConfig("contributions.staged.stages", "stage %d monthly amount cannot be negative", i+1)
		}
		if st.AnnualIncrease.LessThanOrEqual(minusOne) {
			return domain.NewInvalidConfig("contributions.staged.stages", "stage %d annual increase must be greater than -100%%", i+1)
		}
		expectedStart = st.EndAge + 1
	}
	if last := staged.Stages[n-1].EndAge; last != cfg.RetirementAge {
		return domain.NewInvalidConfig("contributions.staged.stages", "last stage must end at retirement age %d, got %d", cfg.RetirementAge, last)
	}
	return nil
}

func validateShock(s *domain.ShockEvent) error {
	if err := requireFinite("shock.gross_loss", s.GrossLoss); err != nil {
		return err
	}
	if s.GrossLoss.IsNegative() {
		return domain.NewInvalidConfig("shock.gross_loss", "cannot be negative")
	}
	if s.InsuranceCoverage.IsNegative() || s.InsuranceCoverage.GreaterThan(decimalOne) {
		return domain.NewInvalidConfig("shock.insurance_coverage", "must be between 0 and 1, got %s", s.InsuranceCoverage)
	}
	return nil
}

// requireFinite rejects values that cannot be represented as a finite float64,
// which the stochastic path needs for its exponential.
func requireFinite(field string, d decimal.Decimal) error {
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return domain.NewInvalidConfig(field, "must be a finite number")
	}
	return nil
}
