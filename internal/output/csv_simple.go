package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fi-projector/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "CurrentAge", "RetirementAge", "Target", "FutureAnnualSpending", "NoRiskAge", "WithRiskAge", "FinalNoRisk", "FinalWithRisk", "FinalExpected", "FinalLowerPercentile", "ShockApplied", "ShockedNoRiskAge", "ShockedWithRiskAge", "RealizedAnnualReturn", "RealizedAnnualVolatility"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		var shockedNoRisk, shockedWithRisk string
		if sc.ShockApplied && sc.ShockedFinding != nil {
			shockedNoRisk = ageToString(sc.ShockedFinding.NoRiskAge)
			shockedWithRisk = ageToString(sc.ShockedFinding.WithRiskAge)
		}
		row := []string{
			sc.Name,
			intToString(sc.CurrentAge),
			intToString(sc.RetirementAge),
			sc.Target.StringFixed(2),
			sc.FutureAnnualSpending.StringFixed(2),
			ageToString(sc.Finding.NoRiskAge),
			ageToString(sc.Finding.WithRiskAge),
			sc.FinalNoRisk.StringFixed(2),
			sc.FinalWithRisk.StringFixed(2),
			sc.FinalExpected.StringFixed(2),
			sc.FinalLowerPercentile.StringFixed(2),
			boolToString(sc.ShockApplied),
			shockedNoRisk,
			shockedWithRisk,
			floatToString(sc.PathStats.AnnualizedReturn),
			floatToString(sc.PathStats.AnnualizedVolatility),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
