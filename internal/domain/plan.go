package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PolicyBoth requests a snowball and an avalanche run of the same plan
const PolicyBoth = "both"

// Plan is the user-facing input file: debts plus the monthly extra budget
type Plan struct {
	Name         string          `yaml:"name,omitempty" json:"name,omitempty"`
	ExtraPayment decimal.Decimal `yaml:"extra_payment" json:"extra_payment"`
	Policy       string          `yaml:"policy,omitempty" json:"policy,omitempty"` // snowball, avalanche or both
	StartDate    *time.Time      `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	MaxMonths    int             `yaml:"max_months,omitempty" json:"max_months,omitempty"`
	CascadeExtra bool            `yaml:"cascade_extra,omitempty" json:"cascade_extra,omitempty"`
	Debts        []Debt          `yaml:"debts" json:"debts"`
}

// RequestedPolicies expands the plan's policy field. Empty means both.
func (p *Plan) RequestedPolicies() []Policy {
	switch Policy(p.Policy) {
	case Snowball:
		return []Policy{Snowball}
	case Avalanche:
		return []Policy{Avalanche}
	default:
		return Policies
	}
}

// TotalBalance sums the starting balances of all debts
func (p *Plan) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Debts {
		total = total.Add(d.Balance)
	}
	return total
}

// TotalMinimums sums the contractual minimum payments of all debts
func (p *Plan) TotalMinimums() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Debts {
		total = total.Add(d.MinPayment)
	}
	return total
}

// PlanComparison is everything a report formatter renders for one plan
type PlanComparison struct {
	Plan        Plan           `json:"plan"`
	Results     []PayoffResult `json:"results"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Result finds the run for a policy
func (c *PlanComparison) Result(p Policy) (*PayoffResult, bool) {
	for i := range c.Results {
		if c.Results[i].Policy == p {
			return &c.Results[i], true
		}
	}
	return nil, false
}
