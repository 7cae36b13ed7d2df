package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/fi-projector/internal/domain"
	fidec "github.com/rpgo/fi-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

// Projector advances the four wealth paths month by month and emits one
// snapshot per simulated age. It holds no per-run state.
type Projector struct {
	Logger Logger
}

// NewProjector creates a projector; a nil logger is replaced by NopLogger
func NewProjector(logger Logger) *Projector {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Projector{Logger: logger}
}

// monthlyRates holds the per-month rates of one run, derived once from the assumptions
type monthlyRates struct {
	riskFree   decimal.Decimal // rf/12
	expected   decimal.Decimal // blended arithmetic mean / 12
	lower      decimal.Decimal // blended downside return / 12
	allocation decimal.Decimal

	stochastic bool
	drift      float64 // (mu - sigma^2/2)/12
	diffusion  float64 // sigma/sqrt(12)
}

func newMonthlyRates(a *domain.Assumptions) monthlyRates {
	mu := a.RiskyReturn.InexactFloat64()
	sigma := a.RiskyVolatility.InexactFloat64()
	downside := a.RiskyReturn.Sub(a.RiskyVolatility)
	return monthlyRates{
		riskFree:   fidec.MonthlyRate(a.RiskFreeReturn),
		expected:   fidec.MonthlyRate(fidec.Blend(a.RiskAllocation, a.RiskyReturn, a.RiskFreeReturn)),
		lower:      fidec.MonthlyRate(fidec.Blend(a.RiskAllocation, downside, a.RiskFreeReturn)),
		allocation: a.RiskAllocation,
		stochastic: a.HasRisk(),
		drift:      (mu - sigma*sigma/2) / monthsPerYear,
		diffusion:  sigma / math.Sqrt(monthsPerYear),
	}
}

// totalReturn returns the with-risk portfolio return for one month. The source
// is consulted only when part of the portfolio is risky.
func (r monthlyRates) totalReturn(src UniformSource) (decimal.Decimal, error) {
	if !r.stochastic {
		return r.riskFree, nil
	}
	z, err := standardNormal(src)
	if err != nil {
		return decimal.Zero, err
	}
	risky := math.Exp(r.drift+r.diffusion*z) - 1
	if math.IsInf(risky, 0) || math.IsNaN(risky) {
		return decimal.Zero, fmt.Errorf("non-finite risky return for z=%v: %w", z, domain.ErrInvalidDraw)
	}
	return fidec.Blend(r.allocation, decimal.NewFromFloat(risky), r.riskFree), nil
}

// Project runs the simulation from the current age to the retirement age inclusive.
// src may be nil when the risk allocation is zero.
func (p *Projector) Project(cfg *domain.SimulationConfig, src UniformSource) (*domain.ProjectionResult, error) {
	if err := ValidateSimulationConfig(cfg); err != nil {
		return nil, err
	}
	a := cfg.Assumptions
	if a.HasRisk() && src == nil {
		return nil, domain.NewInvalidConfig("random_source", "required when risk allocation is positive")
	}

	target, futureSpending := RetirementTarget(cfg)
	schedule := ContributionSchedule(cfg)
	rates := newMonthlyRates(&a)

	p.Logger.Debugf("projecting %q: ages %d-%d, target %s", cfg.Name, cfg.CurrentAge, cfg.RetirementAge, target.StringFixed(0))

	noRisk := cfg.CurrentAssets
	withRisk := cfg.CurrentAssets
	expected := cfg.CurrentAssets
	lower := cfg.CurrentAssets

	snapshots := make([]domain.YearlySnapshot, 0, cfg.Years())
	realized := make([]float64, 0, cfg.Years()*monthsPerYear)
	var finding domain.IndependenceFinding

	for i, age := 0, cfg.CurrentAge; age <= cfg.RetirementAge; i, age = i+1, age+1 {
		monthly := schedule[i]
		flow := monthly.Sub(a.InsuranceMonthlyCost)

		for month := 1; month <= monthsPerYear; month++ {
			totalReturn, err := rates.totalReturn(src)
			if err != nil {
				return nil, fmt.Errorf("age %d month %d: %w", age, month, err)
			}
			realized = append(realized, totalReturn.InexactFloat64())

			withRisk = fidec.Compound(withRisk, totalReturn, flow)
			noRisk = fidec.Compound(noRisk, rates.riskFree, flow)
			expected = fidec.Compound(expected, rates.expected, flow)
			lower = fidec.Compound(lower, rates.lower, flow)
		}

		snapshots = append(snapshots, domain.YearlySnapshot{
			Age:                 age,
			NoRisk:              noRisk,
			WithRisk:            withRisk,
			Expected:            expected,
			LowerPercentile:     lower,
			MonthlyContribution: monthly,
			AnnualContribution:  monthly.Mul(decimalTwelve),
			RequiredCorpus:      target,
		})
		finding.Record(&snapshots[len(snapshots)-1], target)
	}

	result := &domain.ProjectionResult{
		Target:               target,
		FutureAnnualSpending: futureSpending,
		Snapshots:            snapshots,
		Finding:              finding,
		PathStats:            SummarizeReturns(realized),
	}
	logFinding(p.Logger, cfg.Name, finding)
	return result, nil
}

func logFinding(l Logger, name string, f domain.IndependenceFinding) {
	if f.NoRiskAge != nil {
		l.Infof("%s: no-risk path reaches target at age %d", name, *f.NoRiskAge)
	} else {
		l.Infof("%s: no-risk path does not reach target", name)
	}
	if f.WithRiskAge != nil {
		l.Infof("%s: with-risk path reaches target at age %d", name, *f.WithRiskAge)
	} else {
		l.Infof("%s: with-risk path does not reach target", name)
	}
}
