package output

import (
	"fmt"

	"github.com/rpgo/payoff-calculator/internal/calculation"
	"github.com/rpgo/payoff-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling rules rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Interest accrues monthly at APR / 12 on the balance at the start of the month, rounded to cents",
	"Minimum payments are applied to every open debt before the extra payment",
	"The whole extra payment goes to the top priority debt, re-ranked every month",
	"Interest rates and minimum payments stay fixed for the life of the plan",
	fmt.Sprintf("Simulation stops after %d months (50 years)", calculation.MaxMonths),
}

// GenerateAssumptions creates the assumptions list from the actual plan values
func GenerateAssumptions(plan *domain.Plan) []string {
	out := []string{
		fmt.Sprintf("Extra payment: %s per month on top of %s in minimums", FormatCurrency(plan.ExtraPayment), FormatCurrency(plan.TotalMinimums())),
	}
	out = append(out, DefaultAssumptions[:3]...)
	if plan.CascadeExtra {
		out = append(out, "Extra left over after a payoff rolls to the next debt in the same month")
	}
	out = append(out, DefaultAssumptions[3])
	limit := calculation.MaxMonths
	if plan.MaxMonths > 0 && plan.MaxMonths < limit {
		limit = plan.MaxMonths
	}
	out = append(out, fmt.Sprintf("Simulation stops after %d months", limit))
	return out
}
