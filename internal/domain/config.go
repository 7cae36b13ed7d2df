package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ReferenceAdultAge is the baseline age the staged plan inflates the cost of living from.
const ReferenceAdultAge = 18

// MaxStages bounds the number of contribution stages in a staged plan.
const MaxStages = 3

// ScenarioSet is the top-level document of a scenario file
type ScenarioSet struct {
	Currency  string             `yaml:"currency,omitempty" json:"currency,omitempty"`
	Scenarios []SimulationConfig `yaml:"scenarios" json:"scenarios"`
}

// SimulationConfig holds every input of a single projection run
type SimulationConfig struct {
	Name                   string           `yaml:"name" json:"name"`
	CurrentAge             int              `yaml:"current_age" json:"current_age"`
	RetirementAge          int              `yaml:"retirement_age" json:"retirement_age"`
	CurrentAssets          decimal.Decimal  `yaml:"current_assets" json:"current_assets"`
	DesiredMonthlySpending decimal.Decimal  `yaml:"desired_monthly_spending" json:"desired_monthly_spending"` // today's money
	Contributions          ContributionPlan `yaml:"contributions" json:"contributions"`
	Assumptions            Assumptions      `yaml:"assumptions" json:"assumptions"`
	Shock                  *ShockEvent      `yaml:"shock,omitempty" json:"shock,omitempty"`

	// Seed fixes the stochastic path; zero means "use the engine's seed provider".
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Horizon returns the number of years between the current and retirement age
func (c *SimulationConfig) Horizon() int {
	return c.RetirementAge - c.CurrentAge
}

// Years returns the number of simulated ages, both ends inclusive
func (c *SimulationConfig) Years() int {
	return c.Horizon() + 1
}

// Assumptions contains the macro constants of a run
type Assumptions struct {
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	RiskFreeReturn       decimal.Decimal `yaml:"risk_free_return" json:"risk_free_return"`
	RiskyReturn          decimal.Decimal `yaml:"risky_return" json:"risky_return"`
	RiskyVolatility      decimal.Decimal `yaml:"risky_volatility" json:"risky_volatility"`
	RiskAllocation       decimal.Decimal `yaml:"risk_allocation" json:"risk_allocation"` // 0..1 share in the risky asset
	InsuranceMonthlyCost decimal.Decimal `yaml:"insurance_monthly_cost" json:"insurance_monthly_cost"`
	WithdrawalRate       decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"`
}

// HasRisk reports whether any part of the portfolio is exposed to risky returns
func (a *Assumptions) HasRisk() bool {
	return a.RiskAllocation.IsPositive()
}

// GenerateAssumptions creates a human readable list of the assumptions in force
func (a *Assumptions) GenerateAssumptions() []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		fmt.Sprintf("Inflation: %.2f%% annually", a.InflationRate.Mul(hundred).InexactFloat64()),
		fmt.Sprintf("Risk-free return: %.2f%% annually", a.RiskFreeReturn.Mul(hundred).InexactFloat64()),
		fmt.Sprintf("Risky asset: %.2f%% expected, %.2f%% volatility", a.RiskyReturn.Mul(hundred).InexactFloat64(), a.RiskyVolatility.Mul(hundred).InexactFloat64()),
		fmt.Sprintf("Risk allocation: %.0f%%", a.RiskAllocation.Mul(hundred).InexactFloat64()),
		fmt.Sprintf("Withdrawal rate: %.4f%%", a.WithdrawalRate.Mul(hundred).InexactFloat64()),
	}
}

// ContributionPlan is a tagged variant: exactly one of Growing or Staged is set
type ContributionPlan struct {
	Growing *GrowingContribution `yaml:"growing,omitempty" json:"growing,omitempty"`
	Staged  *StagedContributions `yaml:"staged,omitempty" json:"staged,omitempty"`
}

// Kind names the configured variant ("growing", "staged" or "" when unset)
func (p ContributionPlan) Kind() string {
	switch {
	case p.Growing != nil && p.Staged != nil:
		return "ambiguous"
	case p.Growing != nil:
		return "growing"
	case p.Staged != nil:
		return "staged"
	}
	return ""
}

// GrowingContribution is a single monthly amount raised every year by a fixed rate
type GrowingContribution struct {
	MonthlyAmount  decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
	AnnualIncrease decimal.Decimal `yaml:"annual_increase" json:"annual_increase"`
}

// StagedContributions is a piecewise schedule of up to three savings stages.
// The retirement target of a staged plan is sized from an annual cost of
// living inflated from ReferenceAdultAge.
type StagedContributions struct {
	AnnualCostOfLiving decimal.Decimal `yaml:"annual_cost_of_living" json:"annual_cost_of_living"`
	Stages             []Stage         `yaml:"stages" json:"stages"`
}

// Stage is one contiguous age range with its own starting amount and growth
type Stage struct {
	StartAge       int             `yaml:"start_age" json:"start_age"`
	EndAge         int             `yaml:"end_age" json:"end_age"`
	AnnualIncrease decimal.Decimal `yaml:"annual_increase" json:"annual_increase"`
	MonthlyAmount  decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
}

// Covers reports whether age falls inside the stage
func (s Stage) Covers(age int) bool {
	return age >= s.StartAge && age <= s.EndAge
}

// ShockEvent is a one-time wealth loss at a given age, partially insured
type ShockEvent struct {
	Age               int             `yaml:"age" json:"age"`
	GrossLoss         decimal.Decimal `yaml:"gross_loss" json:"gross_loss"`
	InsuranceCoverage decimal.Decimal `yaml:"insurance_coverage" json:"insurance_coverage"` // 0..1
}

// NetLoss is the uninsured part of the loss
func (s ShockEvent) NetLoss() decimal.Decimal {
	return s.GrossLoss.Mul(decimal.NewFromInt(1).Sub(s.InsuranceCoverage))
}
