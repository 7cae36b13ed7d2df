package calculation

import (
	"github.com/rpgo/fi-projector/internal/domain"
	fidec "github.com/rpgo/fi-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// RetirementTarget sizes the corpus needed at retirement age and returns it with
// the inflated annual spending it has to sustain.
//
// Growing plans inflate desired monthly spending over the years to retirement.
// Staged plans inflate their annual cost of living from ReferenceAdultAge
// instead of the current age.
func RetirementTarget(cfg *domain.SimulationConfig) (target, futureAnnualSpending decimal.Decimal) {
	a := cfg.Assumptions
	if staged := cfg.Contributions.Staged; staged != nil {
		years := cfg.RetirementAge - domain.ReferenceAdultAge
		futureAnnualSpending = staged.AnnualCostOfLiving.Mul(fidec.GrowthFactor(a.InflationRate, years))
	} else {
		annual := cfg.DesiredMonthlySpending.Mul(decimalTwelve)
		futureAnnualSpending = annual.Mul(fidec.GrowthFactor(a.InflationRate, cfg.Horizon()))
	}
	return futureAnnualSpending.Div(a.WithdrawalRate), futureAnnualSpending
}

// ContributionSchedule resolves the plan into the monthly contribution in force
// at each simulated age, indexed by age offset from the current age.
// Growth is applied at each year boundary; a staged plan restarts from the
// stage's own monthly amount when a new stage begins.
func ContributionSchedule(cfg *domain.SimulationConfig) []decimal.Decimal {
	schedule := make([]decimal.Decimal, 0, cfg.Years())
	switch {
	case cfg.Contributions.Staged != nil:
		for _, st := range cfg.Contributions.Staged.Stages {
			amount := st.MonthlyAmount
			for age := st.StartAge; age <= st.EndAge; age++ {
				schedule = append(schedule, amount)
				amount = fidec.Compound(amount, st.AnnualIncrease, decimal.Zero)
			}
		}
	case cfg.Contributions.Growing != nil:
		g := cfg.Contributions.Growing
		amount := g.MonthlyAmount
		for i := 0; i < cfg.Years(); i++ {
			schedule = append(schedule, amount)
			amount = fidec.Compound(amount, g.AnnualIncrease, decimal.Zero)
		}
	}
	return schedule
}
