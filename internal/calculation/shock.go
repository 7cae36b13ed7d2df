package calculation

import (
	"github.com/rpgo/fi-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// ApplyShock subtracts the uninsured part of a one-time loss from every
// snapshot at or after the shock age, in place, and recomputes the
// independence finding.
//
// A finding recorded before the shock age survives; any other finding is
// reset and re-scanned from the shock age forward.
//
// When the shock age lies outside the snapshot ages, snapshots are untouched,
// prior is returned as is, and a *domain.ShockOutOfRangeError is returned.
func ApplyShock(snapshots []domain.YearlySnapshot, shock domain.ShockEvent, target decimal.Decimal, prior domain.IndependenceFinding) (domain.IndependenceFinding, error) {
	if len(snapshots) == 0 {
		return prior, &domain.ShockOutOfRangeError{Age: shock.Age}
	}
	first, last := snapshots[0].Age, snapshots[len(snapshots)-1].Age
	if shock.Age < first || shock.Age > last {
		return prior, &domain.ShockOutOfRangeError{Age: shock.Age, First: first, Last: last}
	}

	start := shock.Age - first
	net := shock.NetLoss()
	for i := start; i < len(snapshots); i++ {
		snapshots[i].Subtract(net)
	}

	var finding domain.IndependenceFinding
	if prior.NoRiskAge != nil && *prior.NoRiskAge < shock.Age {
		v := *prior.NoRiskAge
		finding.NoRiskAge = &v
	}
	if prior.WithRiskAge != nil && *prior.WithRiskAge < shock.Age {
		v := *prior.WithRiskAge
		finding.WithRiskAge = &v
	}
	for i := start; i < len(snapshots); i++ {
		finding.Record(&snapshots[i], target)
	}
	return finding, nil
}
