package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpgo/payoff-calculator/internal/calculation"
	"github.com/rpgo/payoff-calculator/internal/config"
)

// TestEngineSnapshot produces a deterministic snapshot of core payoff metrics.
func TestEngineSnapshot(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })
	defer calculation.SetNowFunc(nil)

	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile("../../test/testdata/example_plan.yaml")
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}

	res, err := calculation.NewSimulator().RunPlan(context.Background(), plan)
	if err != nil {
		t.Fatalf("run plan: %v", err)
	}

	// Trim to stable summary fields only
	type policy struct {
		Policy       string         `json:"policy"`
		Months       int            `json:"months_to_payoff"`
		Interest     string         `json:"total_interest_paid"`
		TotalPaid    string         `json:"total_paid"`
		PayoffMonths map[string]int `json:"payoff_months"`
	}
	var out struct {
		StartingBalance string   `json:"starting_balance"`
		Policies        []policy `json:"policies"`
	}
	out.StartingBalance = plan.TotalBalance().StringFixed(2)
	for _, r := range res.Results {
		out.Policies = append(out.Policies, policy{
			Policy:       string(r.Policy),
			Months:       r.MonthsToPayoff,
			Interest:     r.TotalInterestPaid.StringFixed(2),
			TotalPaid:    r.TotalPaid.StringFixed(2),
			PayoffMonths: r.PayoffMonths,
		})
	}
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(golden) == "" {
		t.Fatalf("empty golden snapshot")
	}
	if string(golden) != string(data) {
		t.Fatalf("engine snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", string(data), string(golden))
	}
}
