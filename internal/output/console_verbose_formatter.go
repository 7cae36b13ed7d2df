package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/fi-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the detailed console report: one yearly table per scenario.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "FINANCIAL INDEPENDENCE PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)

	for i := range results.Scenarios {
		sc := &results.Scenarios[i]
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		writeScenarioHeader(&buf, sc, results.Currency)
		fmt.Fprintln(&buf)
		writeYearlyTable(&buf, sc)
		fmt.Fprintln(&buf)
		writeFindings(&buf, sc, results.Currency)
		fmt.Fprintln(&buf)
	}

	if len(results.Scenarios) > 1 {
		writeComparison(&buf, results)
	}
	return buf.Bytes(), nil
}

func writeScenarioHeader(buf *bytes.Buffer, sc *domain.ScenarioSummary, currency string) {
	fmt.Fprintf(buf, "Ages:                   %d -> %d (%d years)\n", sc.CurrentAge, sc.RetirementAge, sc.RetirementAge-sc.CurrentAge+1)
	fmt.Fprintf(buf, "Required corpus:        %s\n", FormatCurrencyCode(sc.Target, currency))
	fmt.Fprintf(buf, "Future annual spending: %s\n", FormatCurrencyCode(sc.FutureAnnualSpending, currency))
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "KEY ASSUMPTIONS:")
	for _, a := range scenarioAssumptions(sc) {
		fmt.Fprintf(buf, "• %s\n", a)
	}
}

const tableRowFormat = "%4s %14s %16s %16s %16s %16s  %s\n"

func writeYearlyTable(buf *bytes.Buffer, sc *domain.ScenarioSummary) {
	if sc.ShockApplied {
		fmt.Fprintf(buf, "Balances include a net loss of %s from age %d\n", FormatCurrency(sc.Shock.NetLoss()), sc.Shock.Age)
	}
	fmt.Fprintf(buf, tableRowFormat, "Age", "Contrib/mo", "No risk", "With risk", "Expected", "Lower", "Reached")
	fmt.Fprintln(buf, strings.Repeat("-", 93))
	for _, s := range sc.EffectiveProjection() {
		fmt.Fprintf(buf, tableRowFormat,
			intToString(s.Age),
			FormatCurrency(s.MonthlyContribution),
			FormatCurrency(s.NoRisk),
			FormatCurrency(s.WithRisk),
			FormatCurrency(s.Expected),
			FormatCurrency(s.LowerPercentile),
			reachedMarker(&s, sc.Target),
		)
	}
}

// reachedMarker flags the paths at or above target: N for no-risk, W for with-risk
func reachedMarker(s *domain.YearlySnapshot, target decimal.Decimal) string {
	var m string
	if s.NoRisk.GreaterThanOrEqual(target) {
		m += "N"
	}
	if s.WithRisk.GreaterThanOrEqual(target) {
		m += "W"
	}
	return m
}

func writeFindings(buf *bytes.Buffer, sc *domain.ScenarioSummary, currency string) {
	fmt.Fprintln(buf, "INDEPENDENCE:")
	fmt.Fprintf(buf, "  No-risk path reaches target at:   %s\n", FormatAge(sc.Finding.NoRiskAge))
	fmt.Fprintf(buf, "  With-risk path reaches target at: %s\n", FormatAge(sc.Finding.WithRiskAge))

	switch {
	case sc.ShockApplied:
		f := sc.EffectiveFinding()
		fmt.Fprintf(buf, "SHOCK at age %d: gross %s, insured %s, net %s\n",
			sc.Shock.Age, FormatCurrencyCode(sc.Shock.GrossLoss, currency), FormatRate(sc.Shock.InsuranceCoverage), FormatCurrencyCode(sc.Shock.NetLoss(), currency))
		fmt.Fprintf(buf, "  No-risk path after shock:   %s\n", FormatAge(f.NoRiskAge))
		fmt.Fprintf(buf, "  With-risk path after shock: %s\n", FormatAge(f.WithRiskAge))
	case sc.ShockWarning != "":
		fmt.Fprintf(buf, "WARNING: %s; shock ignored\n", sc.ShockWarning)
	}

	fmt.Fprintln(buf, "FINAL BALANCES:")
	fmt.Fprintf(buf, "  No risk:   %s\n", FormatCurrencyCode(sc.FinalNoRisk, currency))
	fmt.Fprintf(buf, "  With risk: %s\n", FormatCurrencyCode(sc.FinalWithRisk, currency))
	fmt.Fprintf(buf, "  Expected:  %s\n", FormatCurrencyCode(sc.FinalExpected, currency))
	fmt.Fprintf(buf, "  Lower:     %s\n", FormatCurrencyCode(sc.FinalLowerPercentile, currency))

	if ps := sc.PathStats; ps.Months > 0 {
		fmt.Fprintf(buf, "REALIZED WITH-RISK RETURNS: %s annualized, %s volatility over %d months\n",
			FormatFloatRate(ps.AnnualizedReturn), FormatFloatRate(ps.AnnualizedVolatility), ps.Months)
	}
}

func writeComparison(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	fmt.Fprintln(buf, "SCENARIO COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "%-30s %12s %12s %18s\n", "Scenario", "No-risk age", "Risk age", "Final with risk")
	for _, sc := range results.Scenarios {
		f := sc.EffectiveFinding()
		fmt.Fprintf(buf, "%-30s %12s %12s %18s\n", sc.Name, FormatAge(f.NoRiskAge), FormatAge(f.WithRiskAge), FormatCurrency(sc.FinalWithRisk))
	}
	rec := AnalyzeScenarios(results)
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Earliest independence: %s (with-risk age %s)\n", rec.ScenarioName, FormatAge(rec.WithRiskAge))
}
