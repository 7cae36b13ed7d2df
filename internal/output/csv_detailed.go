package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fi-projector/internal/domain"
)

// CSVDetailedExporter provides the yearly snapshots per scenario/age. When a shock
// applied, the post-shock balances are exported and the Shocked column is set
// from the shock age on.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Age", "MonthlyContribution", "AnnualContribution", "NoRisk", "WithRisk", "Expected", "LowerPercentile", "RequiredCorpus", "NoRiskReached", "WithRiskReached", "Shocked"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		for _, yr := range sc.EffectiveProjection() {
			shocked := sc.ShockApplied && yr.Age >= sc.Shock.Age
			row := []string{
				sc.Name,
				intToString(yr.Age),
				yr.MonthlyContribution.StringFixed(2),
				yr.AnnualContribution.StringFixed(2),
				yr.NoRisk.StringFixed(2),
				yr.WithRisk.StringFixed(2),
				yr.Expected.StringFixed(2),
				yr.LowerPercentile.StringFixed(2),
				yr.RequiredCorpus.StringFixed(2),
				boolToString(yr.NoRisk.GreaterThanOrEqual(sc.Target)),
				boolToString(yr.WithRisk.GreaterThanOrEqual(sc.Target)),
				boolToString(shocked),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
