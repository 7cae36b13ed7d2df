package decimal

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to whole currency units
func (m Money) Round() Money {
	return Money{m.Decimal.Round(0)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// String returns the amount rounded to whole units without separators
func (m Money) String() string {
	return m.Decimal.StringFixed(0)
}

// Format renders the amount with thousands separators, e.g. "7,373,000,000"
func (m Money) Format() string {
	return humanize.Comma(m.Round().IntPart())
}

// FormatWithCode appends a currency code, e.g. "1,200 VND"
func (m Money) FormatWithCode(code string) string {
	if code == "" {
		return m.Format()
	}
	return m.Format() + " " + code
}
