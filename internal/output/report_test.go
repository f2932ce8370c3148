package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	stddec "github.com/shopspring/decimal"

	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/rpgo/payoff-calculator/internal/output"
)

func TestFormatters(t *testing.T) {
	if got := output.FormatCurrency(stddec.NewFromFloat(123.45)); got != "$123.45" {
		t.Fatalf("FormatCurrency = %q", got)
	}
	if got := output.FormatPercentage(stddec.NewFromFloat(12.34)); got != "12.34%" {
		t.Fatalf("FormatPercentage = %q", got)
	}
}

func singleResultComparison() *domain.PlanComparison {
	return &domain.PlanComparison{
		Plan: domain.Plan{
			ExtraPayment: stddec.NewFromInt(0),
			Debts: []domain.Debt{
				{ID: "only", Balance: stddec.NewFromInt(100), InterestRate: stddec.Zero, MinPayment: stddec.NewFromInt(100)},
			},
		},
		GeneratedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Results: []domain.PayoffResult{
			{
				Policy:            domain.Snowball,
				MonthsToPayoff:    1,
				StartingBalance:   stddec.NewFromInt(100),
				TotalInterestPaid: stddec.Zero,
				TotalPaid:         stddec.NewFromInt(100),
				Converged:         true,
				PriorityOrder:     []string{"only"},
				Schedule: []domain.MonthlySnapshot{
					{
						Month:                 1,
						TotalPayment:          stddec.NewFromInt(100),
						TotalInterest:         stddec.Zero,
						TotalRemainingBalance: stddec.Zero,
						TargetDebtID:          "only",
						PerDebt: []domain.DebtSnapshot{
							{DebtID: "only", Name: "only", Payment: stddec.NewFromInt(100), Interest: stddec.Zero, RemainingBalance: stddec.Zero, IsPaidOff: true},
						},
					},
				},
			},
		},
	}
}

func TestReportGenerator_JSON_CSV(t *testing.T) {
	dir := t.TempDir()
	sc := singleResultComparison()

	for _, format := range []string{"json", "csv", "detailed-csv", "html", "console", "pdf"} {
		path := filepath.Join(dir, "report."+format)
		written, err := output.GenerateReport(sc, format, path)
		if err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if written != path {
			t.Fatalf("GenerateReport %s wrote %q, want %q", format, written, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s report is empty", format)
		}
	}
}

func TestGenerateReportAllWritesTextAndSchedule(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "plan.txt")
	written, err := output.GenerateReport(singleResultComparison(), "all", base)
	if err != nil {
		t.Fatalf("GenerateReport all: %v", err)
	}
	if written != base {
		t.Fatalf("expected text report at %q, got %q", base, written)
	}
	data, err := os.ReadFile(filepath.Join(dir, "plan.csv"))
	if err != nil {
		t.Fatalf("schedule csv not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "Policy,Month,Date,DebtID") {
		t.Fatalf("unexpected csv header: %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestGenerateReportUnknownFormat(t *testing.T) {
	_, err := output.GenerateReport(singleResultComparison(), "xml", filepath.Join(t.TempDir(), "x"))
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestAvailableFormatterNamesSorted(t *testing.T) {
	names := output.AvailableFormatterNames()
	want := []string{"console", "console-lite", "csv", "detailed-csv", "html", "json", "pdf"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("AvailableFormatterNames = %v, want %v", names, want)
	}
}
