package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/fi-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with one table and chart per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatRate,
	"fpct": FormatFloatRate,
	"age":  FormatAge,
	"add":  func(i, j int) int { return i + j },
	"reached": func(s domain.YearlySnapshot, target decimal.Decimal) string {
		return reachedMarker(&s, target)
	},
	"assumptions": func(sc domain.ScenarioSummary) []string {
		return scenarioAssumptions(&sc)
	},
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the per-scenario data the report's chart script plots
type chartSeries struct {
	Name     string    `json:"name"`
	Ages     []int     `json:"ages"`
	NoRisk   []float64 `json:"no_risk"`
	WithRisk []float64 `json:"with_risk"`
	Expected []float64 `json:"expected"`
	Lower    []float64 `json:"lower"`
	Target   float64   `json:"target"`
}

func buildChartSeries(results *domain.ScenarioComparison) []chartSeries {
	series := make([]chartSeries, 0, len(results.Scenarios))
	for i := range results.Scenarios {
		sc := &results.Scenarios[i]
		cs := chartSeries{Name: sc.Name, Target: sc.Target.InexactFloat64()}
		for _, s := range sc.EffectiveProjection() {
			cs.Ages = append(cs.Ages, s.Age)
			cs.NoRisk = append(cs.NoRisk, s.NoRisk.Round(0).InexactFloat64())
			cs.WithRisk = append(cs.WithRisk, s.WithRisk.Round(0).InexactFloat64())
			cs.Expected = append(cs.Expected, s.Expected.Round(0).InexactFloat64())
			cs.Lower = append(cs.Lower, s.LowerPercentile.Round(0).InexactFloat64())
		}
		series = append(series, cs)
	}
	return series
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		Charts         []chartSeries
	}{results, AnalyzeScenarios(results), buildChartSeries(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
