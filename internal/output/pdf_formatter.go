package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/rpgo/payoff-calculator/pkg/dateutil"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// PDFFormatter renders an A4 report: plan, policy summary, comparison and
// one schedule table per policy.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (p PDFFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	r := &pdfReport{pdf: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.SetTitle("Debt Payoff Report", false)
	doc.SetCatalogSort(true)
	if !results.GeneratedAt.IsZero() {
		doc.SetCreationDate(results.GeneratedAt)
		doc.SetModificationDate(results.GeneratedAt)
	}

	r.addSummaryPage(results)
	for i := range results.Results {
		r.addSchedule(&results.Plan, &results.Results[i])
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addSummaryPage(results *domain.PlanComparison) {
	plan := &results.Plan
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Debt Payoff Report", "", 1, "C", false, 0, "")
	if plan.Name != "" {
		r.pdf.SetFont("Arial", "", 13)
		r.pdf.SetTextColor(80, 80, 80)
		r.pdf.CellFormat(contentWidth, 8, r.tr(plan.Name), "", 1, "C", false, 0, "")
	}
	r.pdf.Ln(6)

	r.drawSectionHeader("Debts")
	widths := []float64{75, 40, 25, 40}
	r.drawTableHeader([]string{"Debt", "Balance", "APR", "Minimum"}, widths)
	for _, d := range plan.Debts {
		r.drawTableRow([]string{r.tr(d.Label()), FormatCurrency(d.Balance), FormatPercentage(d.InterestRate), FormatCurrency(d.MinPayment)}, widths, false)
	}
	r.drawTableRow([]string{"Total", FormatCurrency(plan.TotalBalance()), "", FormatCurrency(plan.TotalMinimums())}, widths, true)
	r.pdf.Ln(3)
	r.drawText(fmt.Sprintf("Extra payment per month: %s", FormatCurrency(plan.ExtraPayment)))
	r.pdf.Ln(6)

	r.drawSectionHeader("Policy Summary")
	widths = []float64{30, 22, 22, 38, 38, 30}
	r.drawTableHeader([]string{"Policy", "Months", "Duration", "Interest", "Total Paid", "Debt Free"}, widths)
	for _, res := range results.Results {
		freeOn := "-"
		if d, ok := res.DebtFreeDate(); ok {
			freeOn = dateutil.MonthLabel(d)
		} else if !res.Converged {
			freeOn = "not paid off"
		}
		r.drawTableRow([]string{
			string(res.Policy),
			intToString(res.MonthsToPayoff),
			FormatDuration(res.MonthsToPayoff),
			FormatCurrency(res.TotalInterestPaid),
			FormatCurrency(res.TotalPaid),
			freeOn,
		}, widths, false)
	}
	r.pdf.Ln(6)

	rec := AnalyzeResults(results)
	r.drawSectionHeader("Recommendation")
	if rec.Compared {
		r.drawText(fmt.Sprintf("Interest saved by avalanche: %s", FormatCurrency(rec.InterestSaved)))
		r.drawText(fmt.Sprintf("Months saved by avalanche: %d", rec.MonthsSaved))
	}
	if len(rec.NonAmortizing) > 0 {
		r.pdf.SetTextColor(180, 35, 24)
		r.drawText("Balance grew on minimum payments for: " + strings.Join(rec.NonAmortizing, ", "))
	}
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.MultiCell(contentWidth, 6, rec.Recommendation, "", "L", false)
}

func (r *pdfReport) addSchedule(plan *domain.Plan, res *domain.PayoffResult) {
	if len(res.Schedule) == 0 {
		return
	}
	r.pdf.AddPage()
	r.drawSectionHeader(strings.ToUpper(string(res.Policy)) + " Schedule")
	widths := []float64{16, 24, 34, 30, 40, 36}
	headers := []string{"Month", "Date", "Paid", "Interest", "Remaining", "Extra To"}
	r.drawTableHeader(headers, widths)
	labels := make(map[string]string, len(plan.Debts))
	for _, d := range plan.Debts {
		labels[d.ID] = d.Label()
	}
	for _, m := range res.Schedule {
		if r.pdf.GetY() > 297-marginBottom-10 {
			r.pdf.AddPage()
			r.drawTableHeader(headers, widths)
		}
		date := ""
		if !m.Date.IsZero() {
			date = dateutil.MonthLabel(m.Date)
		}
		r.drawTableRow([]string{
			intToString(m.Month),
			date,
			FormatCurrency(m.TotalPayment),
			FormatCurrency(m.TotalInterest),
			FormatCurrency(m.TotalRemainingBalance),
			r.tr(labels[m.TargetDebtID]),
		}, widths, m.HasNonAmortizing())
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(marginLeft, r.pdf.GetY(), marginLeft+contentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *pdfReport) drawText(text string) {
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.CellFormat(contentWidth, 6, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

// drawTableRow highlights rows in bold when flagged
func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
