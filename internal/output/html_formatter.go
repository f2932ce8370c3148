package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/rpgo/payoff-calculator/pkg/dateutil"
)

// HTMLFormatter produces a standalone HTML report with the balance series
// embedded as JSON for client-side charting.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"pct":      FormatPercentage,
	"duration": FormatDuration,
	"month": func(m domain.MonthlySnapshot) string {
		if m.Date.IsZero() {
			return ""
		}
		return dateutil.MonthLabel(m.Date)
	},
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the per-policy remaining balance series used by the chart
type chartSeries struct {
	Policy    string   `json:"policy"`
	Remaining []string `json:"remaining"`
}

func buildSeries(results *domain.PlanComparison) []chartSeries {
	out := make([]chartSeries, 0, len(results.Results))
	for _, r := range results.Results {
		s := chartSeries{Policy: string(r.Policy), Remaining: make([]string, len(r.Schedule))}
		for i, m := range r.Schedule {
			s.Remaining[i] = m.TotalRemainingBalance.StringFixed(2)
		}
		out = append(out, s)
	}
	return out
}

func (h HTMLFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.PlanComparison
		Recommendation Recommendation
		Assumptions    []string
		Series         []chartSeries
	}{results, AnalyzeResults(results), GenerateAssumptions(&results.Plan), buildSeries(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
