package output

import "github.com/rpgo/fi-projector/internal/domain"

// ModelConventions lists the modeling conventions rendered in detailed outputs.
var ModelConventions = []string{
	"Annual rates compound monthly at rate/12",
	"Contributions change once per year; insurance is paid every month",
	"Expected path blends the risky mean and the risk-free rate by allocation",
	"Lower path uses the risky mean minus one volatility",
	"Required corpus = inflated annual spending / withdrawal rate",
}

// scenarioAssumptions returns the scenario's own assumptions followed by the conventions
func scenarioAssumptions(sc *domain.ScenarioSummary) []string {
	out := make([]string, 0, len(sc.Assumptions)+len(ModelConventions))
	out = append(out, sc.Assumptions...)
	return append(out, ModelConventions...)
}
