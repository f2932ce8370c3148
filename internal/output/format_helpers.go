package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatDuration renders a month count as "2y 7m"
func FormatDuration(months int) string {
	if months < 12 {
		return strconv.Itoa(months) + "m"
	}
	y, m := months/12, months%12
	if m == 0 {
		return strconv.Itoa(y) + "y"
	}
	return strconv.Itoa(y) + "y " + strconv.Itoa(m) + "m"
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
