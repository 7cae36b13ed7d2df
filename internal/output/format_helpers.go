package output

import (
	"fmt"

	fidec "github.com/rpgo/fi-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount in whole currency units with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return fidec.NewMoneyFromDecimal(amount).Format()
}

// FormatCurrencyCode formats an amount followed by a currency code, if any.
func FormatCurrencyCode(amount decimal.Decimal, code string) string {
	return fidec.NewMoneyFromDecimal(amount).FormatWithCode(code)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.05) as a percentage ("5.00%").
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

// FormatFloatRate formats a fractional float64 rate as a percentage.
func FormatFloatRate(rate float64) string { return fmt.Sprintf("%.2f%%", rate*100) }

// FormatAge renders an independence age or "not reached".
func FormatAge(age *int) string {
	if age == nil {
		return "not reached"
	}
	return fmt.Sprintf("%d", *age)
}

var decimalHundred = decimal.NewFromInt(100)
