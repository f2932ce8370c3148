package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/payoff-calculator/internal/cache"
	"github.com/rpgo/payoff-calculator/internal/calculation"
	"github.com/rpgo/payoff-calculator/internal/config"
	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/rpgo/payoff-calculator/internal/output"
)

func TestFormatters(t *testing.T) {
	d1 := stddec.NewFromFloat(123.45)
	if got := output.FormatCurrency(d1); got != "$123.45" {
		t.Fatalf("FormatCurrency got %s", got)
	}
	// FormatPercentage expects the value already in percentage units (not a 0-1 fraction)
	d2 := stddec.NewFromFloat(12.34)
	if got := output.FormatPercentage(d2); got != "12.34%" {
		t.Fatalf("FormatPercentage got %s", got)
	}
}

func TestSavePlan_WritesFile(t *testing.T) {
	plan := config.NewInputParser().CreateExamplePlan()
	out := filepath.Join(t.TempDir(), "plan.yaml")
	if err := config.SavePlan(plan, out); err != nil {
		t.Fatalf("SavePlan error: %v", err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected file exists, err: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatalf("expected non-empty file")
	}

	loaded, err := config.NewInputParser().LoadFromFile(out)
	if err != nil {
		t.Fatalf("reload saved plan: %v", err)
	}
	if len(loaded.Debts) != 3 || !loaded.ExtraPayment.Equal(stddec.NewFromInt(500)) {
		t.Fatalf("saved plan did not round trip: %+v", loaded)
	}
}

func TestNonAmortizingPlanHitsCeiling(t *testing.T) {
	plan := &domain.Plan{
		ExtraPayment: stddec.Zero,
		Policy:       domain.PolicyBoth,
		Debts: []domain.Debt{
			{ID: "store", Balance: stddec.NewFromInt(10000), InterestRate: stddec.NewFromInt(30), MinPayment: stddec.NewFromInt(200)},
		},
	}
	results, err := calculation.NewSimulator().RunPlan(context.Background(), plan)
	require.NoError(t, err)

	for _, r := range results.Results {
		assert.False(t, r.Converged)
		assert.Equal(t, calculation.MaxMonths, r.MonthsToPayoff)
		assert.Equal(t, []string{"store"}, r.NonAmortizingDebts)
		assert.True(t, r.FinalBalance().GreaterThan(stddec.NewFromInt(10000)))
	}
	rec := output.AnalyzeResults(results)
	assert.Len(t, rec.NotConverged, 2)
	assert.Equal(t, []string{"store"}, rec.NonAmortizing)
}

func TestCachedComparisonMatchesFreshRun(t *testing.T) {
	ctx := context.Background()
	plan, err := config.NewInputParser().LoadFromFile("../testdata/example_plan.yaml")
	require.NoError(t, err)
	key, err := cache.Fingerprint(plan)
	require.NoError(t, err)

	store := cache.NewMemoryCache()
	run := func(ctx context.Context) (*domain.PlanComparison, error) {
		return calculation.NewSimulator().RunPlan(ctx, plan)
	}
	fresh, hit, err := cache.LoadOrCompute(ctx, store, key, run, nil)
	require.NoError(t, err)
	assert.False(t, hit)
	cached, hit, err := cache.LoadOrCompute(ctx, store, key, run, nil)
	require.NoError(t, err)
	assert.True(t, hit)

	a, err := output.CSVScheduleExporter{}.Format(fresh)
	require.NoError(t, err)
	b, err := output.CSVScheduleExporter{}.Format(cached)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
