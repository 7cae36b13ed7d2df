package calculation

import (
	"math"

	"github.com/rpgo/fi-projector/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// SummarizeReturns computes the realized statistics of a monthly return series.
// Annualized figures use the same rate/12 convention as the projector.
func SummarizeReturns(monthly []float64) domain.PathStatistics {
	ps := domain.PathStatistics{Months: len(monthly)}
	if len(monthly) == 0 {
		return ps
	}
	ps.MonthlyMean = stat.Mean(monthly, nil)
	if len(monthly) > 1 {
		ps.MonthlyStdDev = stat.StdDev(monthly, nil)
	}
	ps.AnnualizedReturn = ps.MonthlyMean * monthsPerYear
	ps.AnnualizedVolatility = ps.MonthlyStdDev * math.Sqrt(monthsPerYear)
	return ps
}
