package calculation

import (
	"fmt"
	"sort"

	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/rpgo/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// workingDebt is the mutable per-run clone of a caller's Debt
type workingDebt struct {
	index      int // input position, the stable tie-break key
	id         string
	name       string
	balance    decimal.Decimal
	rate       decimal.Decimal
	minPayment decimal.Decimal
}

func (w *workingDebt) open() bool { return w.balance.IsPositive() }

// arena holds the working state of one simulation run, in input order
type arena struct {
	debts []*workingDebt
}

func newArena(debts []domain.Debt) *arena {
	a := &arena{debts: make([]*workingDebt, len(debts))}
	for i, d := range debts {
		a.debts[i] = &workingDebt{
			index:      i,
			id:         d.ID,
			name:       d.Label(),
			balance:    money.Cents(d.Balance),
			rate:       d.InterestRate,
			minPayment: money.Cents(d.MinPayment),
		}
	}
	return a
}

// open returns the debts with a positive balance, in input order
func (a *arena) open() []*workingDebt {
	out := make([]*workingDebt, 0, len(a.debts))
	for _, d := range a.debts {
		if d.open() {
			out = append(out, d)
		}
	}
	return out
}

func (a *arena) hasOpen() bool {
	for _, d := range a.debts {
		if d.open() {
			return true
		}
	}
	return false
}

func (a *arena) totalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, d := range a.debts {
		total = total.Add(d.balance)
	}
	return total
}

// Ordering ranks open debts for the extra payment. It must be pure: the
// input slice is left untouched and ties keep input order.
type Ordering func(open []*workingDebt) []*workingDebt

func orderSnowball(open []*workingDebt) []*workingDebt {
	out := append([]*workingDebt(nil), open...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].balance.LessThan(out[j].balance)
	})
	return out
}

func orderAvalanche(open []*workingDebt) []*workingDebt {
	out := append([]*workingDebt(nil), open...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].rate.GreaterThan(out[j].rate)
	})
	return out
}

// OrderFor returns the ordering strategy for a policy
func OrderFor(policy domain.Policy) (Ordering, error) {
	switch policy {
	case domain.Snowball:
		return orderSnowball, nil
	case domain.Avalanche:
		return orderAvalanche, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
}

// PriorityOrder returns the debt ids in the order a policy would target them
// in the first month. Debts with a zero balance are left out.
func PriorityOrder(debts []domain.Debt, policy domain.Policy) ([]string, error) {
	order, err := OrderFor(policy)
	if err != nil {
		return nil, err
	}
	return ids(order(newArena(debts).open())), nil
}

func ids(debts []*workingDebt) []string {
	out := make([]string, len(debts))
	for i, d := range debts {
		out[i] = d.id
	}
	return out
}
