package money

import (
	"github.com/shopspring/decimal"
)

var (
	hundred        = decimal.NewFromInt(100)
	monthsPerYear  = decimal.NewFromInt(12)
	centsPrecision = int32(2)
	oneCent        = decimal.New(1, -2)
)

// Cents rounds an amount to whole cents (half away from zero)
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(centsPrecision)
}

// OneCent returns 0.01
func OneCent() decimal.Decimal {
	return oneCent
}

// MonthlyRate converts an annual percentage (22 = 22%) to a monthly fraction
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(hundred).Div(monthsPerYear)
}

// MonthlyInterest returns one month of interest on balance at the given annual
// percentage, rounded to cents.
func MonthlyInterest(balance, annualPercent decimal.Decimal) decimal.Decimal {
	return Cents(balance.Mul(annualPercent).Div(hundred).Div(monthsPerYear))
}

// Min returns the smaller of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// NonNegative clamps negative amounts to zero
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Sum adds up a list of amounts
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Format renders an amount as USD with two decimals
func Format(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
