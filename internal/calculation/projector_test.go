package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/rpgo/fi-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleConfig is the 35 -> 65 saver with a growing contribution and no risky exposure
func exampleConfig() *domain.SimulationConfig {
	return &domain.SimulationConfig{
		Name:                   "example",
		CurrentAge:             35,
		RetirementAge:          65,
		CurrentAssets:          decimal.NewFromInt(200_000_000),
		DesiredMonthlySpending: decimal.NewFromInt(25_000_000),
		Contributions: domain.ContributionPlan{
			Growing: &domain.GrowingContribution{
				MonthlyAmount:  decimal.NewFromInt(8_000_000),
				AnnualIncrease: decimal.NewFromFloat(0.07),
			},
		},
		Assumptions: domain.Assumptions{
			InflationRate:        decimal.NewFromFloat(0.03),
			RiskFreeReturn:       decimal.NewFromFloat(0.05),
			RiskyReturn:          decimal.NewFromFloat(0.10),
			RiskyVolatility:      decimal.NewFromFloat(0.18),
			RiskAllocation:       decimal.Zero,
			InsuranceMonthlyCost: decimal.NewFromInt(1_000_000),
			WithdrawalRate:       decimal.NewFromFloat(0.040805),
		},
	}
}

func riskyConfig(allocation float64) *domain.SimulationConfig {
	cfg := exampleConfig()
	cfg.Assumptions.RiskAllocation = decimal.NewFromFloat(allocation)
	return cfg
}

// countingSource wraps a source and counts the draws it hands out
type countingSource struct {
	inner UniformSource
	calls int
}

func (c *countingSource) Float64() float64 {
	c.calls++
	return c.inner.Float64()
}

func TestProject_ExampleScenario(t *testing.T) {
	p := NewProjector(nil)
	// An empty fixed source would fail any draw, proving none is taken.
	res, err := p.Project(exampleConfig(), &FixedSource{})
	require.NoError(t, err)

	want := 25_000_000 * 12 * math.Pow(1.03, 30) / 0.040805
	assert.InDelta(t, want, res.Target.InexactFloat64(), 1e-3)
	assert.InDelta(t, 25_000_000*12*math.Pow(1.03, 30), res.FutureAnnualSpending.InexactFloat64(), 1e-4)

	final := res.Snapshots[len(res.Snapshots)-1]
	assert.Equal(t, 65, final.Age)
	assert.True(t, final.NoRisk.Equal(final.WithRisk), "no-risk %s != with-risk %s", final.NoRisk, final.WithRisk)
	assert.InDelta(t, 18_035_783_659.73, final.NoRisk.InexactFloat64(), 1.0)

	require.NotNil(t, res.Finding.NoRiskAge)
	require.NotNil(t, res.Finding.WithRiskAge)
	assert.Equal(t, 65, *res.Finding.NoRiskAge)
	assert.Equal(t, 65, *res.Finding.WithRiskAge)
}

func TestProject_FirstYearMatchesClosedForm(t *testing.T) {
	res, err := NewProjector(nil).Project(exampleConfig(), nil)
	require.NoError(t, err)

	first := res.Snapshots[0]
	assert.Equal(t, 35, first.Age)
	assert.InDelta(t, 296_184_368.0177, first.NoRisk.InexactFloat64(), 1e-3)
	assert.True(t, first.MonthlyContribution.Equal(decimal.NewFromInt(8_000_000)))
	assert.True(t, first.AnnualContribution.Equal(decimal.NewFromInt(96_000_000)))
	assert.True(t, first.RequiredCorpus.Equal(res.Target))

	// contribution grows at the year boundary
	assert.True(t, res.Snapshots[1].MonthlyContribution.Equal(decimal.NewFromInt(8_560_000)), "got %s", res.Snapshots[1].MonthlyContribution)
}

func TestProject_ZeroAllocationPathsCoincide(t *testing.T) {
	res, err := NewProjector(nil).Project(exampleConfig(), nil)
	require.NoError(t, err)
	for _, s := range res.Snapshots {
		assert.True(t, s.WithRisk.Equal(s.NoRisk), "age %d: with-risk %s no-risk %s", s.Age, s.WithRisk, s.NoRisk)
		assert.True(t, s.Expected.Equal(s.NoRisk), "age %d: expected %s no-risk %s", s.Age, s.Expected, s.NoRisk)
		assert.True(t, s.LowerPercentile.Equal(s.NoRisk), "age %d: lower %s no-risk %s", s.Age, s.LowerPercentile, s.NoRisk)
	}
	assert.InDelta(t, 0, res.PathStats.MonthlyStdDev, 1e-15)
}

func TestProject_AgesContiguous(t *testing.T) {
	res, err := NewProjector(nil).Project(riskyConfig(0.6), NewSeededSource(7))
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 31)
	for i, s := range res.Snapshots {
		assert.Equal(t, 35+i, s.Age)
	}
}

func TestProject_SeededRunsAreIdentical(t *testing.T) {
	p := NewProjector(nil)
	a, err := p.Project(riskyConfig(0.7), NewSeededSource(2024))
	require.NoError(t, err)
	b, err := p.Project(riskyConfig(0.7), NewSeededSource(2024))
	require.NoError(t, err)

	require.Len(t, b.Snapshots, len(a.Snapshots))
	for i := range a.Snapshots {
		sa, sb := a.Snapshots[i], b.Snapshots[i]
		assert.True(t, sa.WithRisk.Equal(sb.WithRisk), "age %d differs", sa.Age)
		assert.True(t, sa.NoRisk.Equal(sb.NoRisk), "age %d differs", sa.Age)
	}
	assert.Equal(t, a.PathStats, b.PathStats)

	c, err := p.Project(riskyConfig(0.7), NewSeededSource(2025))
	require.NoError(t, err)
	assert.False(t, a.Snapshots[30].WithRisk.Equal(c.Snapshots[30].WithRisk), "different seeds should give different paths")
}

func TestProject_TwoDrawsPerMonthWhenRisky(t *testing.T) {
	src := &countingSource{inner: NewSeededSource(1)}
	_, err := NewProjector(nil).Project(riskyConfig(0.5), src)
	require.NoError(t, err)
	assert.Equal(t, 2*12*31, src.calls)
}

func TestProject_DeterministicPathsIgnoreRandomness(t *testing.T) {
	a, err := NewProjector(nil).Project(riskyConfig(0.5), NewSeededSource(1))
	require.NoError(t, err)
	b, err := NewProjector(nil).Project(riskyConfig(0.5), NewSeededSource(99))
	require.NoError(t, err)
	for i := range a.Snapshots {
		assert.True(t, a.Snapshots[i].NoRisk.Equal(b.Snapshots[i].NoRisk))
		assert.True(t, a.Snapshots[i].Expected.Equal(b.Snapshots[i].Expected))
		assert.True(t, a.Snapshots[i].LowerPercentile.Equal(b.Snapshots[i].LowerPercentile))
	}
	// downside path below the expected path, expected above risk-free when mu > rf
	final := a.Snapshots[len(a.Snapshots)-1]
	assert.True(t, final.LowerPercentile.LessThan(final.Expected))
	assert.True(t, final.Expected.GreaterThan(final.NoRisk))
}

func TestProject_RequiresSourceWhenRisky(t *testing.T) {
	_, err := NewProjector(nil).Project(riskyConfig(0.3), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}

func TestProject_ZeroDrawIsInvalid(t *testing.T) {
	_, err := NewProjector(nil).Project(riskyConfig(0.3), &FixedSource{Draws: []float64{0, 0.5}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidDraw))
	var ide *domain.InvalidDrawError
	require.True(t, errors.As(err, &ide))
	assert.Equal(t, 0.0, ide.Draw)
}

func TestProject_DrawOfOneIsInvalid(t *testing.T) {
	_, err := NewProjector(nil).Project(riskyConfig(0.3), &FixedSource{Draws: []float64{0.5, 1}})
	assert.True(t, errors.Is(err, domain.ErrInvalidDraw))
}

func TestProject_FixedDrawMatchesLognormalFormula(t *testing.T) {
	// u1 = e^-0.5, u2 = 0.5 gives z = -1 every month
	u1 := math.Exp(-0.5)
	cfg := riskyConfig(1)
	cfg.Assumptions.InsuranceMonthlyCost = decimal.Zero
	cfg.Contributions.Growing.MonthlyAmount = decimal.Zero
	cfg.RetirementAge = 36

	res, err := NewProjector(nil).Project(cfg, &FixedSource{Draws: []float64{u1, 0.5}})
	require.NoError(t, err)

	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(math.Pi)
	mu, sigma := 0.10, 0.18
	monthly := math.Exp((mu-sigma*sigma/2)/12+sigma/math.Sqrt(12)*z) - 1
	want := 200_000_000 * math.Pow(1+monthly, 12)
	assert.InDelta(t, want, res.Snapshots[0].WithRisk.InexactFloat64(), 1e-2)
	assert.InDelta(t, monthly, res.PathStats.MonthlyMean, 1e-12)
}

func TestProject_NegativeNetContributionAllowed(t *testing.T) {
	cfg := exampleConfig()
	cfg.Contributions.Growing.MonthlyAmount = decimal.NewFromInt(100)
	cfg.Contributions.Growing.AnnualIncrease = decimal.Zero
	cfg.Assumptions.RiskFreeReturn = decimal.Zero
	cfg.Assumptions.InsuranceMonthlyCost = decimal.NewFromInt(1_100)
	cfg.CurrentAssets = decimal.NewFromInt(10_000)
	cfg.RetirementAge = 36

	res, err := NewProjector(nil).Project(cfg, nil)
	require.NoError(t, err)
	// 12 months of -1000
	assert.True(t, res.Snapshots[0].NoRisk.Equal(decimal.NewFromInt(-2_000)), "got %s", res.Snapshots[0].NoRisk)
	assert.True(t, res.Snapshots[1].NoRisk.Equal(decimal.NewFromInt(-14_000)), "got %s", res.Snapshots[1].NoRisk)
	assert.Nil(t, res.Finding.NoRiskAge)
}

func TestProject_StagedPlan(t *testing.T) {
	cfg := exampleConfig()
	cfg.CurrentAge = 18
	cfg.Contributions = domain.ContributionPlan{
		Staged: &domain.StagedContributions{
			AnnualCostOfLiving: decimal.NewFromInt(360_000_000),
			Stages: []domain.Stage{
				{StartAge: 18, EndAge: 29, AnnualIncrease: decimal.NewFromFloat(0.10), MonthlyAmount: decimal.NewFromInt(5_000_000)},
				{StartAge: 30, EndAge: 49, AnnualIncrease: decimal.NewFromFloat(0.05), MonthlyAmount: decimal.NewFromInt(15_000_000)},
				{StartAge: 50, EndAge: 65, AnnualIncrease: decimal.Zero, MonthlyAmount: decimal.NewFromInt(20_000_000)},
			},
		},
	}
	cfg.Assumptions.InflationRate = decimal.NewFromFloat(0.0343)

	res, err := NewProjector(nil).Project(cfg, nil)
	require.NoError(t, err)
	require.Len(t, res.Snapshots, 48)

	want := 360_000_000 * math.Pow(1.0343, 65-18) / 0.040805
	assert.InDelta(t, want, res.Target.InexactFloat64(), 1e-2)

	byAge := func(age int) domain.YearlySnapshot { return res.Snapshots[age-18] }
	assert.True(t, byAge(18).MonthlyContribution.Equal(decimal.NewFromInt(5_000_000)))
	assert.True(t, byAge(19).MonthlyContribution.Equal(decimal.NewFromInt(5_500_000)))
	assert.True(t, byAge(30).MonthlyContribution.Equal(decimal.NewFromInt(15_000_000)), "stage restarts from its own amount")
	assert.True(t, byAge(31).MonthlyContribution.Equal(decimal.NewFromInt(15_750_000)))
	assert.True(t, byAge(65).MonthlyContribution.Equal(decimal.NewFromInt(20_000_000)))
}

func TestProject_StagedTargetIgnoresCurrentAge(t *testing.T) {
	staged := func(current int) *domain.SimulationConfig {
		cfg := exampleConfig()
		cfg.CurrentAge = current
		cfg.Contributions = domain.ContributionPlan{Staged: &domain.StagedContributions{
			AnnualCostOfLiving: decimal.NewFromInt(360_000_000),
			Stages:             []domain.Stage{{StartAge: current, EndAge: 65, MonthlyAmount: decimal.NewFromInt(1)}},
		}}
		return cfg
	}
	a, _ := RetirementTarget(staged(25))
	b, _ := RetirementTarget(staged(40))
	assert.True(t, a.Equal(b))
}

func TestRetirementTarget_MonotoneInInflationAndHorizon(t *testing.T) {
	prev := decimal.Zero
	for _, infl := range []float64{0, 0.01, 0.02, 0.035, 0.08} {
		cfg := exampleConfig()
		cfg.Assumptions.InflationRate = decimal.NewFromFloat(infl)
		target, _ := RetirementTarget(cfg)
		assert.True(t, target.GreaterThan(prev), "inflation %.3f: %s <= %s", infl, target, prev)
		prev = target
	}

	prev = decimal.Zero
	for _, retirement := range []int{40, 50, 60, 65, 70} {
		cfg := exampleConfig()
		cfg.RetirementAge = retirement
		target, _ := RetirementTarget(cfg)
		assert.True(t, target.GreaterThan(prev), "retirement %d: %s <= %s", retirement, target, prev)
		prev = target
	}
}

func TestContributionSchedule_Growing(t *testing.T) {
	cfg := exampleConfig()
	cfg.Contributions.Growing.AnnualIncrease = decimal.NewFromFloat(0.10)
	cfg.Contributions.Growing.MonthlyAmount = decimal.NewFromInt(1000)
	schedule := ContributionSchedule(cfg)
	require.Len(t, schedule, 31)
	assert.True(t, schedule[0].Equal(decimal.NewFromInt(1000)))
	assert.True(t, schedule[1].Equal(decimal.NewFromInt(1100)))
	assert.True(t, schedule[2].Equal(decimal.NewFromInt(1210)))
}
