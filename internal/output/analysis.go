package output

import (
	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/rpgo/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// Tie is reported when both policies score the same on a measure.
const Tie = "tie"

// Recommendation compares the snowball run against the avalanche run.
// It is computed downstream of the simulator from the two finished results.
type Recommendation struct {
	Compared       bool            `json:"compared"`                // both policies were simulated
	InterestSaved  decimal.Decimal `json:"interest_saved"`          // max(0, snowball interest - avalanche interest)
	MonthsSaved    int             `json:"months_saved"`            // snowball months - avalanche months; positive means avalanche is faster
	CheaperPolicy  string          `json:"cheaper_policy"`          // snowball, avalanche or tie
	FasterPolicy   string          `json:"faster_policy"`           // snowball, avalanche or tie
	NotConverged   []domain.Policy `json:"not_converged,omitempty"` // runs that hit the month ceiling
	NonAmortizing  []string        `json:"non_amortizing,omitempty"`
	Recommendation string          `json:"recommendation"`
}

// AnalyzeResults derives the comparison from a plan's results.
// With a single result only the convergence and non-amortizing flags are filled.
func AnalyzeResults(results *domain.PlanComparison) Recommendation {
	var rec Recommendation
	seen := map[string]bool{}
	for _, r := range results.Results {
		if !r.Converged {
			rec.NotConverged = append(rec.NotConverged, r.Policy)
		}
		for _, id := range r.NonAmortizingDebts {
			if !seen[id] {
				seen[id] = true
				rec.NonAmortizing = append(rec.NonAmortizing, id)
			}
		}
	}

	snowball, okS := results.Result(domain.Snowball)
	avalanche, okA := results.Result(domain.Avalanche)
	if !okS || !okA {
		rec.Recommendation = summarize(rec)
		return rec
	}

	rec.Compared = true
	rec.InterestSaved = money.NonNegative(snowball.TotalInterestPaid.Sub(avalanche.TotalInterestPaid))
	rec.MonthsSaved = snowball.MonthsToPayoff - avalanche.MonthsToPayoff

	switch cmp := snowball.TotalInterestPaid.Cmp(avalanche.TotalInterestPaid); {
	case cmp > 0:
		rec.CheaperPolicy = string(domain.Avalanche)
	case cmp < 0:
		rec.CheaperPolicy = string(domain.Snowball)
	default:
		rec.CheaperPolicy = Tie
	}
	switch {
	case rec.MonthsSaved > 0:
		rec.FasterPolicy = string(domain.Avalanche)
	case rec.MonthsSaved < 0:
		rec.FasterPolicy = string(domain.Snowball)
	default:
		rec.FasterPolicy = Tie
	}
	rec.Recommendation = summarize(rec)
	return rec
}

func summarize(rec Recommendation) string {
	switch {
	case len(rec.NotConverged) > 0:
		return "Not paid off within 50 years; reconsider the extra payment"
	case !rec.Compared:
		return "Single policy simulated"
	case rec.CheaperPolicy == Tie && rec.FasterPolicy == Tie:
		return "Both methods cost the same and finish together"
	case rec.CheaperPolicy == string(domain.Avalanche):
		return "Avalanche saves " + FormatCurrency(rec.InterestSaved) + " in interest"
	case rec.CheaperPolicy == string(domain.Snowball):
		return "Snowball costs less interest on this plan"
	default:
		return "Both methods cost the same; " + rec.FasterPolicy + " finishes first"
	}
}
