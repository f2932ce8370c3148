package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/payoff-calculator/internal/domain"
)

// CSVScheduleExporter writes the raw amortization schedule, one row per
// policy, month and debt. This is the feed for external charting.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "detailed-csv" }

func (c CSVScheduleExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Policy", "Month", "Date", "DebtID", "Debt", "Payment", "Interest", "RemainingBalance", "PaidOff", "NonAmortizing", "ExtraTarget"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results.Results {
		for _, m := range r.Schedule {
			date := ""
			if !m.Date.IsZero() {
				date = m.Date.Format("2006-01")
			}
			for _, d := range m.PerDebt {
				row := []string{
					string(r.Policy),
					intToString(m.Month),
					date,
					d.DebtID,
					d.Name,
					d.Payment.StringFixed(2),
					d.Interest.StringFixed(2),
					d.RemainingBalance.StringFixed(2),
					boolToString(d.IsPaidOff),
					boolToString(d.NonAmortizing),
					boolToString(m.TargetDebtID == d.DebtID),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
