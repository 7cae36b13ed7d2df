package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/fi-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearSnapshots builds ages first..last whose balances equal step*(age-first+1)
func linearSnapshots(first, last int, step int64) []domain.YearlySnapshot {
	var out []domain.YearlySnapshot
	for age := first; age <= last; age++ {
		v := decimal.NewFromInt(step * int64(age-first+1))
		out = append(out, domain.YearlySnapshot{Age: age, NoRisk: v, WithRisk: v.Add(decimal.NewFromInt(step / 2)), Expected: v, LowerPercentile: v})
	}
	return out
}

func scan(snapshots []domain.YearlySnapshot, target decimal.Decimal) domain.IndependenceFinding {
	var f domain.IndependenceFinding
	for i := range snapshots {
		f.Record(&snapshots[i], target)
	}
	return f
}

func intPtr(v int) *int { return &v }

func TestApplyShock_OutOfRangeIsNoOp(t *testing.T) {
	snaps := linearSnapshots(35, 40, 100)
	before := domain.CloneSnapshots(snaps)
	prior := domain.IndependenceFinding{NoRiskAge: intPtr(38)}

	for _, age := range []int{30, 34, 41, 90} {
		got, err := ApplyShock(snaps, domain.ShockEvent{Age: age, GrossLoss: decimal.NewFromInt(1000)}, decimal.NewFromInt(300), prior)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrShockOutOfRange))

		var oor *domain.ShockOutOfRangeError
		require.True(t, errors.As(err, &oor))
		assert.Equal(t, age, oor.Age)
		assert.Equal(t, 35, oor.First)
		assert.Equal(t, 40, oor.Last)

		assert.Equal(t, prior, got)
		for i := range snaps {
			assert.True(t, snaps[i].NoRisk.Equal(before[i].NoRisk))
		}
	}
}

func TestApplyShock_EmptySequence(t *testing.T) {
	_, err := ApplyShock(nil, domain.ShockEvent{Age: 40}, decimal.NewFromInt(1), domain.IndependenceFinding{})
	assert.True(t, errors.Is(err, domain.ErrShockOutOfRange))
}

func TestApplyShock_SubtractsNetLossFromShockAgeOn(t *testing.T) {
	snaps := linearSnapshots(35, 45, 100)
	before := domain.CloneSnapshots(snaps)
	shock := domain.ShockEvent{Age: 40, GrossLoss: decimal.NewFromInt(400), InsuranceCoverage: decimal.NewFromFloat(0.25)}

	_, err := ApplyShock(snaps, shock, decimal.NewFromInt(10_000), domain.IndependenceFinding{})
	require.NoError(t, err)

	net := decimal.NewFromInt(300)
	for i, s := range snaps {
		b := before[i]
		if s.Age < 40 {
			assert.Equal(t, b.Balances(), s.Balances(), "age %d must be untouched", s.Age)
			continue
		}
		assert.True(t, s.NoRisk.Equal(b.NoRisk.Sub(net)), "age %d no-risk", s.Age)
		assert.True(t, s.WithRisk.Equal(b.WithRisk.Sub(net)), "age %d with-risk", s.Age)
		assert.True(t, s.Expected.Equal(b.Expected.Sub(net)), "age %d expected", s.Age)
		assert.True(t, s.LowerPercentile.Equal(b.LowerPercentile.Sub(net)), "age %d lower", s.Age)
	}
}

func TestApplyShock_NeverIncreasesBalances(t *testing.T) {
	res, err := NewProjector(nil).Project(riskyConfig(0.4), NewSeededSource(11))
	require.NoError(t, err)
	before := domain.CloneSnapshots(res.Snapshots)

	shock := domain.ShockEvent{Age: 50, GrossLoss: decimal.NewFromInt(500_000_000), InsuranceCoverage: decimal.NewFromFloat(0.6)}
	_, err = ApplyShock(res.Snapshots, shock, res.Target, res.Finding)
	require.NoError(t, err)

	for i, s := range res.Snapshots {
		for k, v := range s.Balances() {
			assert.True(t, v.LessThanOrEqual(before[i].Balances()[k]), "age %d balance %d increased", s.Age, k)
		}
		if s.Age < 50 {
			assert.Equal(t, before[i].Balances(), s.Balances())
		}
	}
}

func TestApplyShock_KeepsFindingBeforeShockAge(t *testing.T) {
	snaps := linearSnapshots(35, 45, 100) // no-risk 100..1100, with-risk +50
	target := decimal.NewFromInt(300)
	prior := scan(snaps, target)
	require.Equal(t, 37, *prior.NoRiskAge)
	require.Equal(t, 37, *prior.WithRiskAge)

	got, err := ApplyShock(snaps, domain.ShockEvent{Age: 40, GrossLoss: decimal.NewFromInt(10_000)}, target, prior)
	require.NoError(t, err)
	require.NotNil(t, got.NoRiskAge)
	require.NotNil(t, got.WithRiskAge)
	assert.Equal(t, 37, *got.NoRiskAge)
	assert.Equal(t, 37, *got.WithRiskAge)
}

func TestApplyShock_RescansFromShockAge(t *testing.T) {
	snaps := linearSnapshots(35, 45, 100)
	target := decimal.NewFromInt(600)
	prior := scan(snaps, target)
	require.Equal(t, 40, *prior.NoRiskAge)  // 600 at age 40
	require.Equal(t, 40, *prior.WithRiskAge) // 650 at age 40

	// net loss 250 pushes the crossing out: no-risk needs 850 (age 42), with-risk 800 (age 42)
	got, err := ApplyShock(snaps, domain.ShockEvent{Age: 40, GrossLoss: decimal.NewFromInt(500), InsuranceCoverage: decimal.NewFromFloat(0.5)}, target, prior)
	require.NoError(t, err)
	require.NotNil(t, got.NoRiskAge)
	require.NotNil(t, got.WithRiskAge)
	assert.Equal(t, 42, *got.NoRiskAge)
	assert.Equal(t, 42, *got.WithRiskAge)
}

func TestApplyShock_CanClearFindingAtOrAfterShock(t *testing.T) {
	snaps := linearSnapshots(35, 45, 100)
	target := decimal.NewFromInt(1000)
	prior := scan(snaps, target)
	require.NotNil(t, prior.NoRiskAge)

	got, err := ApplyShock(snaps, domain.ShockEvent{Age: 36, GrossLoss: decimal.NewFromInt(5_000)}, target, prior)
	require.NoError(t, err)
	assert.Nil(t, got.NoRiskAge)
	assert.Nil(t, got.WithRiskAge)
}

func TestApplyShock_FullyInsuredChangesNothing(t *testing.T) {
	snaps := linearSnapshots(35, 40, 100)
	before := domain.CloneSnapshots(snaps)
	_, err := ApplyShock(snaps, domain.ShockEvent{Age: 36, GrossLoss: decimal.NewFromInt(5_000), InsuranceCoverage: decimal.NewFromInt(1)}, decimal.NewFromInt(1), domain.IndependenceFinding{})
	require.NoError(t, err)
	for i := range snaps {
		assert.True(t, snaps[i].NoRisk.Equal(before[i].NoRisk))
	}
}
