package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/fi-projector/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FINANCIAL INDEPENDENCE SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range sortedScenarios(results) {
		f := sc.EffectiveFinding()
		fmt.Fprintf(&buf, "%s: Target=%s NoRiskAge=%s WithRiskAge=%s\n",
			sc.Name,
			FormatCurrencyCode(sc.Target, results.Currency),
			FormatAge(f.NoRiskAge),
			FormatAge(f.WithRiskAge),
		)
		fmt.Fprintf(&buf, "  FinalNoRisk=%s FinalWithRisk=%s FinalExpected=%s FinalLower=%s\n",
			FormatCurrency(sc.FinalNoRisk), FormatCurrency(sc.FinalWithRisk), FormatCurrency(sc.FinalExpected), FormatCurrency(sc.FinalLowerPercentile))
		if sc.ShockApplied {
			fmt.Fprintf(&buf, "  Shock at %d: net %s\n", sc.Shock.Age, FormatCurrency(sc.Shock.NetLoss()))
		} else if sc.ShockWarning != "" {
			fmt.Fprintf(&buf, "  Warning: %s\n", sc.ShockWarning)
		}
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" && len(results.Scenarios) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (with-risk age %s)\n", rec.ScenarioName, FormatAge(rec.WithRiskAge))
	}
	return buf.Bytes(), nil
}
