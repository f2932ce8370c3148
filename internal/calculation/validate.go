package calculation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/rpgo/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInput is wrapped by every validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownPolicy is returned for policies other than snowball and avalanche
	ErrUnknownPolicy = errors.New("unknown policy")
)

// ValidateDebts rejects inputs the simulator cannot give a meaningful answer for.
// It runs before any simulation work.
func ValidateDebts(debts []domain.Debt) error {
	if len(debts) == 0 {
		return fmt.Errorf("%w: no debts provided", ErrInvalidInput)
	}

	seen := make(map[string]bool, len(debts))
	for i, d := range debts {
		if strings.TrimSpace(d.ID) == "" {
			return fmt.Errorf("%w: debt %d: id is required", ErrInvalidInput, i+1)
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: duplicate debt id %q", ErrInvalidInput, d.ID)
		}
		seen[d.ID] = true

		if d.Balance.IsNegative() {
			return fmt.Errorf("%w: debt %q: balance cannot be negative", ErrInvalidInput, d.ID)
		}
		if d.InterestRate.IsNegative() {
			return fmt.Errorf("%w: debt %q: interest rate cannot be negative", ErrInvalidInput, d.ID)
		}
		if d.MinPayment.IsNegative() {
			return fmt.Errorf("%w: debt %q: minimum payment cannot be negative", ErrInvalidInput, d.ID)
		}
	}
	return nil
}

// ValidateExtraPayment checks the monthly extra budget
func ValidateExtraPayment(extra decimal.Decimal) error {
	if extra.IsNegative() {
		return fmt.Errorf("%w: extra payment cannot be negative", ErrInvalidInput)
	}
	return nil
}

// ParsePolicy resolves a policy name, case-insensitively
func ParsePolicy(name string) (domain.Policy, error) {
	p := domain.Policy(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case domain.Snowball, domain.Avalanche:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownPolicy, name, domain.Snowball, domain.Avalanche)
}

// Shortfall is a debt whose minimum payment does not exceed its first month of interest
type Shortfall struct {
	DebtID   string
	Interest decimal.Decimal
	Minimum  decimal.Decimal
}

// NonAmortizingAtStart lists debts that cannot shrink under minimum payments
// alone, measured at their starting balance. These are warnings, the simulator
// still runs them.
func NonAmortizingAtStart(debts []domain.Debt) []Shortfall {
	var out []Shortfall
	for _, d := range debts {
		if !d.Balance.IsPositive() {
			continue
		}
		interest := money.MonthlyInterest(money.Cents(d.Balance), d.InterestRate)
		if d.MinPayment.LessThanOrEqual(interest) {
			out = append(out, Shortfall{DebtID: d.ID, Interest: interest, Minimum: d.MinPayment})
		}
	}
	return out
}
