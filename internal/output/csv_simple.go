package output

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/rpgo/payoff-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per policy).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Policy", "MonthsToPayoff", "StartingBalance", "TotalInterestPaid", "TotalPaid", "FinalBalance", "Converged", "PriorityOrder", "NonAmortizingDebts", "DebtFreeDate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results.Results {
		freeOn := ""
		if d, ok := r.DebtFreeDate(); ok {
			freeOn = d.Format("2006-01")
		}
		row := []string{
			string(r.Policy),
			intToString(r.MonthsToPayoff),
			r.StartingBalance.StringFixed(2),
			r.TotalInterestPaid.StringFixed(2),
			r.TotalPaid.StringFixed(2),
			r.FinalBalance().StringFixed(2),
			boolToString(r.Converged),
			strings.Join(r.PriorityOrder, " > "),
			strings.Join(r.NonAmortizingDebts, " "),
			freeOn,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
