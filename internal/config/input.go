package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/payoff-calculator/internal/calculation"
	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON) file and validates it
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates plan bytes
func (ip *InputParser) Parse(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidateConfiguration validates a loaded plan
func (ip *InputParser) ValidateConfiguration(plan *domain.Plan) error {
	switch plan.Policy {
	case "", domain.PolicyBoth, string(domain.Snowball), string(domain.Avalanche):
	default:
		return fmt.Errorf("policy must be 'snowball', 'avalanche' or 'both', got %q", plan.Policy)
	}

	if plan.MaxMonths < 0 || plan.MaxMonths > calculation.MaxMonths {
		return fmt.Errorf("max_months must be between 0 and %d", calculation.MaxMonths)
	}

	if err := calculation.ValidateDebts(plan.Debts); err != nil {
		return fmt.Errorf("debts: %w", err)
	}
	if err := calculation.ValidateExtraPayment(plan.ExtraPayment); err != nil {
		return err
	}

	return nil
}

// Warnings lists problems that do not stop a simulation but that the user
// should hear about before trusting the schedule.
func (ip *InputParser) Warnings(plan *domain.Plan) []string {
	var out []string
	for _, s := range calculation.NonAmortizingAtStart(plan.Debts) {
		out = append(out, fmt.Sprintf("debt %s: minimum payment $%s does not exceed monthly interest $%s; it cannot shrink on minimums alone",
			s.DebtID, s.Minimum.StringFixed(2), s.Interest.StringFixed(2)))
	}
	if plan.ExtraPayment.IsZero() {
		out = append(out, "extra payment is zero; snowball and avalanche will produce the same schedule")
	}
	return out
}

// CreateExamplePlan creates the three-card example plan
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	start, _ := time.Parse("2006-01-02", "2025-01-01")

	return &domain.Plan{
		Name:         "Three credit cards",
		ExtraPayment: decimal.NewFromInt(500),
		Policy:       domain.PolicyBoth,
		StartDate:    &start,
		Debts: []domain.Debt{
			{
				ID:           "card_a",
				Name:         "Card A",
				Balance:      decimal.NewFromInt(5000),
				InterestRate: decimal.NewFromInt(22),
				MinPayment:   decimal.NewFromInt(150),
			},
			{
				ID:           "loan_b",
				Name:         "Loan B",
				Balance:      decimal.NewFromInt(12000),
				InterestRate: decimal.NewFromInt(18),
				MinPayment:   decimal.NewFromInt(350),
			},
			{
				ID:           "card_c",
				Name:         "Card C",
				Balance:      decimal.NewFromInt(8000),
				InterestRate: decimal.NewFromInt(25),
				MinPayment:   decimal.NewFromInt(200),
			},
		},
	}
}

// SavePlan writes a plan as YAML
func SavePlan(plan *domain.Plan, filename string) error {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
