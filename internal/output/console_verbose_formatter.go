package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/rpgo/payoff-calculator/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the detailed console report: plan, per
// policy summary, comparison and the month by month schedule.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	plan := &results.Plan

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DEBT PAYOFF PLAN: SNOWBALL VS AVALANCHE")
	fmt.Fprintln(&buf, "=================================================================================")
	if plan.Name != "" {
		fmt.Fprintf(&buf, "Plan: %s\n", plan.Name)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(plan) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "DEBTS")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintf(&buf, "%-20s %14s %8s %12s\n", "Debt", "Balance", "APR", "Minimum")
	for _, d := range plan.Debts {
		fmt.Fprintf(&buf, "%-20s %14s %8s %12s\n", truncateLabel(d.Label(), 20), FormatCurrency(d.Balance), FormatPercentage(d.InterestRate), FormatCurrency(d.MinPayment))
	}
	fmt.Fprintf(&buf, "%-20s %14s %8s %12s\n", "TOTAL", FormatCurrency(plan.TotalBalance()), "", FormatCurrency(plan.TotalMinimums()))
	fmt.Fprintf(&buf, "Extra payment per month: %s\n", FormatCurrency(plan.ExtraPayment))
	fmt.Fprintln(&buf)

	for _, r := range results.Results {
		writeResultSummary(&buf, plan, &r)
	}

	rec := AnalyzeResults(results)
	fmt.Fprintln(&buf, "COMPARISON")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	if rec.Compared {
		fmt.Fprintf(&buf, "Interest saved by avalanche: %s\n", FormatCurrency(rec.InterestSaved))
		fmt.Fprintf(&buf, "Months saved by avalanche:   %d\n", rec.MonthsSaved)
		fmt.Fprintf(&buf, "Cheaper method:              %s\n", rec.CheaperPolicy)
		fmt.Fprintf(&buf, "Faster method:               %s\n", rec.FasterPolicy)
	}
	if len(rec.NonAmortizing) > 0 {
		fmt.Fprintf(&buf, "WARNING: balance grew on minimum payments for: %s\n", strings.Join(rec.NonAmortizing, ", "))
	}
	fmt.Fprintf(&buf, "RECOMMENDATION: %s\n", rec.Recommendation)
	fmt.Fprintln(&buf)

	for _, r := range results.Results {
		writeSchedule(&buf, &r)
	}
	return buf.Bytes(), nil
}

func writeResultSummary(buf *bytes.Buffer, plan *domain.Plan, r *domain.PayoffResult) {
	fmt.Fprintf(buf, "%s METHOD\n", strings.ToUpper(string(r.Policy)))
	fmt.Fprintln(buf, strings.Repeat("-", 50))
	labels := make(map[string]string, len(plan.Debts))
	for _, d := range plan.Debts {
		labels[d.ID] = d.Label()
	}
	order := make([]string, len(r.PriorityOrder))
	for i, id := range r.PriorityOrder {
		order[i] = labels[id]
	}
	fmt.Fprintf(buf, "  Priority order:     %s\n", strings.Join(order, " -> "))
	years, months := dateutil.YearsAndMonths(r.MonthsToPayoff)
	fmt.Fprintf(buf, "  Months to payoff:   %d (%d years %d months)\n", r.MonthsToPayoff, years, months)
	fmt.Fprintf(buf, "  Total interest:     %s\n", FormatCurrency(r.TotalInterestPaid))
	fmt.Fprintf(buf, "  Total paid:         %s\n", FormatCurrency(r.TotalPaid))
	if freeOn, ok := r.DebtFreeDate(); ok {
		fmt.Fprintf(buf, "  Debt free:          %s\n", dateutil.MonthLabel(freeOn))
	}
	if !r.Converged {
		fmt.Fprintf(buf, "  NOT PAID OFF: %s still owed after %d months\n", FormatCurrency(r.FinalBalance()), r.MonthsToPayoff)
	}
	for _, d := range plan.Debts {
		if m, ok := r.PayoffMonths[d.ID]; ok {
			fmt.Fprintf(buf, "  %-20s paid off in month %d\n", truncateLabel(d.Label(), 20), m)
		}
	}
	fmt.Fprintln(buf)
}

func writeSchedule(buf *bytes.Buffer, r *domain.PayoffResult) {
	if len(r.Schedule) == 0 {
		return
	}
	fmt.Fprintf(buf, "%s SCHEDULE\n", strings.ToUpper(string(r.Policy)))
	fmt.Fprintln(buf, strings.Repeat("-", 50))
	fmt.Fprintf(buf, "%5s %-9s %12s %10s %14s  %s\n", "Month", "Date", "Paid", "Interest", "Remaining", "Extra To")
	for _, m := range r.Schedule {
		date := ""
		if !m.Date.IsZero() {
			date = dateutil.MonthLabel(m.Date)
		}
		flag := ""
		if m.HasNonAmortizing() {
			flag = " *"
		}
		fmt.Fprintf(buf, "%5d %-9s %12s %10s %14s  %s%s\n", m.Month, date, FormatCurrency(m.TotalPayment), FormatCurrency(m.TotalInterest), FormatCurrency(m.TotalRemainingBalance), m.TargetDebtID, flag)
	}
	if r.NonAmortizingDebts != nil {
		fmt.Fprintln(buf, "* a debt's minimum payment did not cover its interest that month")
	}
	fmt.Fprintln(buf)
}

func truncateLabel(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "~"
}
