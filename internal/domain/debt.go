package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy selects how the extra payment is prioritized across open debts
type Policy string

const (
	// Snowball targets the smallest remaining balance first
	Snowball Policy = "snowball"
	// Avalanche targets the highest interest rate first
	Avalanche Policy = "avalanche"
)

// Policies lists the supported policies in report order
var Policies = []Policy{Snowball, Avalanche}

// Debt represents one outstanding obligation supplied by the caller
type Debt struct {
	ID           string          `yaml:"id" json:"id"`
	Name         string          `yaml:"name" json:"name"`
	Balance      decimal.Decimal `yaml:"balance" json:"balance"`
	InterestRate decimal.Decimal `yaml:"interest_rate" json:"interest_rate"` // annual percentage, 22 = 22%
	MinPayment   decimal.Decimal `yaml:"min_payment" json:"min_payment"`
}

// Label returns the display name, falling back to the id
func (d Debt) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// DebtSnapshot is one debt's state at the end of a simulated month
type DebtSnapshot struct {
	DebtID           string          `json:"debt_id"`
	Name             string          `json:"name"`
	Payment          decimal.Decimal `json:"payment"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	IsPaidOff        bool            `json:"is_paid_off"`
	NonAmortizing    bool            `json:"non_amortizing"` // minimum payment did not cover this month's interest
}

// MonthlySnapshot captures every debt after one month's payments
type MonthlySnapshot struct {
	Month                 int             `json:"month"`
	Date                  time.Time       `json:"date"`
	PerDebt               []DebtSnapshot  `json:"per_debt"`
	TotalPayment          decimal.Decimal `json:"total_payment"`
	TotalInterest         decimal.Decimal `json:"total_interest"`
	TotalRemainingBalance decimal.Decimal `json:"total_remaining_balance"`
	TargetDebtID          string          `json:"target_debt_id,omitempty"` // debt that received the extra payment
}

// HasNonAmortizing reports whether any debt was flagged this month
func (m MonthlySnapshot) HasNonAmortizing() bool {
	for _, d := range m.PerDebt {
		if d.NonAmortizing {
			return true
		}
	}
	return false
}

// Debt returns the snapshot entry for a debt id
func (m MonthlySnapshot) Debt(id string) (DebtSnapshot, bool) {
	for _, d := range m.PerDebt {
		if d.DebtID == id {
			return d, true
		}
	}
	return DebtSnapshot{}, false
}

// PayoffResult is the terminal output of one policy run
type PayoffResult struct {
	Policy             Policy            `json:"policy"`
	MonthsToPayoff     int               `json:"months_to_payoff"`
	StartingBalance    decimal.Decimal   `json:"starting_balance"`
	TotalInterestPaid  decimal.Decimal   `json:"total_interest_paid"`
	TotalPaid          decimal.Decimal   `json:"total_paid"`
	Converged          bool              `json:"converged"`
	NonAmortizingDebts []string          `json:"non_amortizing_debts,omitempty"`
	PayoffMonths       map[string]int    `json:"payoff_months,omitempty"` // debt id -> month its balance reached zero
	PriorityOrder      []string          `json:"priority_order"`          // starting priority, debt ids
	Schedule           []MonthlySnapshot `json:"schedule"`
}

// FinalBalance returns the remaining balance after the last simulated month
func (r *PayoffResult) FinalBalance() decimal.Decimal {
	if len(r.Schedule) == 0 {
		if r.Converged {
			return decimal.Zero
		}
		return r.StartingBalance
	}
	return r.Schedule[len(r.Schedule)-1].TotalRemainingBalance
}

// DebtFreeDate returns the calendar date of the last scheduled month, if dated
func (r *PayoffResult) DebtFreeDate() (time.Time, bool) {
	if !r.Converged || len(r.Schedule) == 0 {
		return time.Time{}, false
	}
	last := r.Schedule[len(r.Schedule)-1]
	if last.Date.IsZero() {
		return time.Time{}, false
	}
	return last.Date, true
}
