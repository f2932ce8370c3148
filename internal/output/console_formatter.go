package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/payoff-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "DEBT PAYOFF SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Total Debt: %s  Extra Payment: %s\n", FormatCurrency(results.Plan.TotalBalance()), FormatCurrency(results.Plan.ExtraPayment))
	fmt.Fprintln(&buf)
	for _, r := range results.Results {
		status := "paid off"
		if !r.Converged {
			status = "NOT paid off, remaining " + FormatCurrency(r.FinalBalance())
		}
		fmt.Fprintf(&buf, "%s: Months=%d Interest=%s TotalPaid=%s (%s)\n",
			r.Policy,
			r.MonthsToPayoff,
			FormatCurrency(r.TotalInterestPaid),
			FormatCurrency(r.TotalPaid),
			status,
		)
	}
	rec := AnalyzeResults(results)
	if rec.Compared {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Cheaper: %s (saves %s)  Faster: %s (%d months)\n", rec.CheaperPolicy, FormatCurrency(rec.InterestSaved), rec.FasterPolicy, abs(rec.MonthsSaved))
	}
	fmt.Fprintf(&buf, "Recommended: %s\n", rec.Recommendation)
	return buf.Bytes(), nil
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
