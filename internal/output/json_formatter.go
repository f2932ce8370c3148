package output

import (
	"encoding/json"

	"github.com/rpgo/payoff-calculator/internal/domain"
)

// JSONFormatter serializes the plan comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	doc := struct {
		*domain.PlanComparison
		Comparison Recommendation `json:"comparison"`
	}{results, AnalyzeResults(results)}
	return json.MarshalIndent(doc, "", "  ")
}
