package decimal

import (
	"github.com/shopspring/decimal"
)

// BalanceScale is the number of fractional digits kept on running balances.
// Without it repeated multiplication grows the coefficient without bound.
const BalanceScale = 8

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// MonthlyRate converts an annual nominal rate into its simple monthly share (rate/12)
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	return annual.Div(twelve)
}

// GrowthFactor returns (1+rate)^years
func GrowthFactor(rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(years)))
}

// Blend returns weight*risky + (1-weight)*safe
func Blend(weight, risky, safe decimal.Decimal) decimal.Decimal {
	return weight.Mul(risky).Add(one.Sub(weight).Mul(safe))
}

// Compound applies one period of growth then a net cash flow: balance*(1+rate) + flow
func Compound(balance, rate, flow decimal.Decimal) decimal.Decimal {
	return balance.Mul(one.Add(rate)).Add(flow).Round(BalanceScale)
}
