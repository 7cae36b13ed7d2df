package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rpgo/fi-projector/internal/domain"
)

// SourceFactory builds the uniform source of a run from its seed
type SourceFactory func(seed int64) UniformSource

// CalculationEngine orchestrates a scenario run: projection, optional shock, summary
type CalculationEngine struct {
	Projector *Projector
	NewSource SourceFactory
	Debug     bool // Enable per-year debug output
	Logger    Logger
}

// NewCalculationEngine creates a new calculation engine with seeded PCG sources
func NewCalculationEngine() *CalculationEngine {
	logger := NopLogger{}
	return &CalculationEngine{
		Projector: NewProjector(logger),
		NewSource: func(seed int64) UniformSource { return NewSeededSource(seed) },
		Logger:    logger,
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Projector.Logger = l
}

// RunScenario projects a single configuration and applies its shock, if any
func (ce *CalculationEngine) RunScenario(ctx context.Context, cfg *domain.SimulationConfig) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateSimulationConfig(cfg); err != nil {
		return nil, err
	}

	var src UniformSource
	if cfg.Assumptions.HasRisk() {
		seed := cfg.Seed
		if seed == 0 {
			seed = seedFunc()
		}
		ce.Logger.Debugf("%s: stochastic path seeded with %d", cfg.Name, seed)
		src = ce.NewSource(seed)
	}

	result, err := ce.Projector.Project(cfg, src)
	if err != nil {
		return nil, fmt.Errorf("projection %q failed: %w", cfg.Name, err)
	}

	summary := &domain.ScenarioSummary{
		RunID:                uuid.NewString(),
		Name:                 cfg.Name,
		CurrentAge:           cfg.CurrentAge,
		RetirementAge:        cfg.RetirementAge,
		Target:               result.Target,
		FutureAnnualSpending: result.FutureAnnualSpending,
		Finding:              result.Finding,
		Projection:           result.Snapshots,
		PathStats:            result.PathStats,
		Assumptions:          cfg.Assumptions.GenerateAssumptions(),
		Shock:                cfg.Shock,
	}

	if cfg.Shock != nil {
		ce.applyShock(summary, *cfg.Shock)
	}

	if ce.Debug {
		for _, s := range summary.EffectiveProjection() {
			ce.Logger.Debugf("age %d: no-risk=%s with-risk=%s expected=%s lower=%s",
				s.Age, s.NoRisk.StringFixed(0), s.WithRisk.StringFixed(0), s.Expected.StringFixed(0), s.LowerPercentile.StringFixed(0))
		}
	}

	if final := lastSnapshot(summary.EffectiveProjection()); final != nil {
		summary.FinalNoRisk = final.NoRisk
		summary.FinalWithRisk = final.WithRisk
		summary.FinalExpected = final.Expected
		summary.FinalLowerPercentile = final.LowerPercentile
	}
	return summary, nil
}

// applyShock shocks a copy of the projection so the pre-shock path stays available.
// An out-of-range shock is reported as a warning and leaves the summary unshocked.
func (ce *CalculationEngine) applyShock(summary *domain.ScenarioSummary, shock domain.ShockEvent) {
	shocked := domain.CloneSnapshots(summary.Projection)
	finding, err := ApplyShock(shocked, shock, summary.Target, summary.Finding.Clone())
	if err != nil {
		var oor *domain.ShockOutOfRangeError
		if errors.As(err, &oor) {
			summary.ShockWarning = oor.Error()
			ce.Logger.Warnf("%s: %v; continuing without shock", summary.Name, oor)
			return
		}
		summary.ShockWarning = err.Error()
		ce.Logger.Errorf("%s: shock not applied: %v", summary.Name, err)
		return
	}
	summary.ShockApplied = true
	summary.ShockedProjection = shocked
	summary.ShockedFinding = &finding
	ce.Logger.Infof("%s: shock of %s applied at age %d", summary.Name, shock.NetLoss().StringFixed(0), shock.Age)
}

// RunScenarios runs every scenario in order and stops at the first failure
func (ce *CalculationEngine) RunScenarios(set *domain.ScenarioSet) (*domain.ScenarioComparison, error) {
	ctx := context.Background()
	summaries := make([]domain.ScenarioSummary, len(set.Scenarios))

	for i := range set.Scenarios {
		summary, err := ce.RunScenario(ctx, &set.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed: %w", err)
		}
		summaries[i] = *summary
	}

	return &domain.ScenarioComparison{
		Currency:  set.Currency,
		Scenarios: summaries,
	}, nil
}

func lastSnapshot(s []domain.YearlySnapshot) *domain.YearlySnapshot {
	if len(s) == 0 {
		return nil
	}
	return &s[len(s)-1]
}
