package calculation

import (
	"time"

	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/rpgo/payoff-calculator/pkg/dateutil"
	"github.com/rpgo/payoff-calculator/pkg/money"
	"github.com/shopspring/decimal"
)

// MaxMonths is the hard ceiling on simulated months (50 years). A run that
// has not paid everything off by then is returned as a partial result.
const MaxMonths = 600

// Options tunes a simulation run
type Options struct {
	// MaxMonths lowers the safety ceiling. Zero, negative or anything above
	// the package MaxMonths means MaxMonths.
	MaxMonths int
	// CascadeExtra rolls extra payment that the target debt could not absorb
	// to the next debt in priority order within the same month.
	CascadeExtra bool
	// StartDate dates each snapshot when set; month 1 is the start month.
	StartDate time.Time
}

func (o Options) monthLimit() int {
	if o.MaxMonths <= 0 || o.MaxMonths > MaxMonths {
		return MaxMonths
	}
	return o.MaxMonths
}

// Simulator runs debt payoff schedules. It holds no state between runs and is
// safe for concurrent use as long as its fields are not modified.
type Simulator struct {
	Options Options
	Debug   bool // log every simulated month
	Logger  Logger
}

// NewSimulator creates a simulator with default options
func NewSimulator() *Simulator {
	return &Simulator{Logger: NopLogger{}}
}

// NewSimulatorWithOptions creates a simulator with the given options
func NewSimulatorWithOptions(opts Options) *Simulator {
	return &Simulator{Options: opts, Logger: NopLogger{}}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (s *Simulator) SetLogger(l Logger) {
	if l == nil {
		s.Logger = NopLogger{}
		return
	}
	s.Logger = l
}

func (s *Simulator) logger() Logger {
	if s.Logger == nil {
		return NopLogger{}
	}
	return s.Logger
}

// Simulate runs one policy against the debts and extra monthly budget.
// The caller's debts are never modified.
func Simulate(debts []domain.Debt, extra decimal.Decimal, policy domain.Policy) (*domain.PayoffResult, error) {
	return NewSimulator().Simulate(debts, extra, policy)
}

// Simulate runs one policy against the debts and extra monthly budget.
// Invalid input fails before any month is simulated. Debts that cannot
// amortize and runs that hit the ceiling are reported through result flags.
func (s *Simulator) Simulate(debts []domain.Debt, extra decimal.Decimal, policy domain.Policy) (*domain.PayoffResult, error) {
	order, err := OrderFor(policy)
	if err != nil {
		return nil, err
	}
	if err := ValidateDebts(debts); err != nil {
		return nil, err
	}
	if err := ValidateExtraPayment(extra); err != nil {
		return nil, err
	}

	log := s.logger()
	a := newArena(debts)
	extra = money.Cents(extra)
	limit := s.Options.monthLimit()

	result := &domain.PayoffResult{
		Policy:            policy,
		StartingBalance:   a.totalBalance(),
		TotalInterestPaid: decimal.Zero,
		TotalPaid:         decimal.Zero,
		PayoffMonths:      make(map[string]int, len(debts)),
		PriorityOrder:     ids(order(a.open())),
		Schedule:          make([]domain.MonthlySnapshot, 0, 64),
	}
	for _, d := range a.debts {
		if !d.open() {
			result.PayoffMonths[d.id] = 0
		}
	}

	flagged := make(map[string]bool)
	for month := 1; month <= limit && a.hasOpen(); month++ {
		snap := s.advanceMonth(a, order, extra, month)

		for _, ds := range snap.PerDebt {
			if ds.NonAmortizing && !flagged[ds.DebtID] {
				flagged[ds.DebtID] = true
				result.NonAmortizingDebts = append(result.NonAmortizingDebts, ds.DebtID)
				log.Warnf("debt %s: minimum payment does not cover interest of %s in month %d; balance is growing",
					ds.DebtID, ds.Interest.StringFixed(2), month)
			}
			if ds.IsPaidOff {
				if _, done := result.PayoffMonths[ds.DebtID]; !done {
					result.PayoffMonths[ds.DebtID] = month
				}
			}
		}

		result.TotalInterestPaid = result.TotalInterestPaid.Add(snap.TotalInterest)
		result.TotalPaid = result.TotalPaid.Add(snap.TotalPayment)
		result.Schedule = append(result.Schedule, snap)

		if s.Debug {
			log.Debugf("%s month %d: paid %s, interest %s, remaining %s, target %s",
				policy, month, snap.TotalPayment.StringFixed(2), snap.TotalInterest.StringFixed(2),
				snap.TotalRemainingBalance.StringFixed(2), snap.TargetDebtID)
		}
	}

	result.MonthsToPayoff = len(result.Schedule)
	result.Converged = !a.hasOpen()
	if !result.Converged {
		log.Warnf("%s: balance of %s still owed after %d months", policy, a.totalBalance().StringFixed(2), result.MonthsToPayoff)
	} else {
		log.Infof("%s: paid off in %d months, interest %s", policy, result.MonthsToPayoff, result.TotalInterestPaid.StringFixed(2))
	}
	return result, nil
}

// advanceMonth accrues interest and applies minimums to every open debt, then
// sends the extra budget to the top priority debt.
func (s *Simulator) advanceMonth(a *arena, order Ordering, extra decimal.Decimal, month int) domain.MonthlySnapshot {
	n := len(a.debts)
	payments := make([]decimal.Decimal, n)
	interest := make([]decimal.Decimal, n)
	growing := make([]bool, n)

	for i, d := range a.debts {
		payments[i] = decimal.Zero
		interest[i] = decimal.Zero
		if !d.open() {
			continue
		}
		accrued := money.MonthlyInterest(d.balance, d.rate)
		covered := d.minPayment.Sub(accrued)
		if covered.IsNegative() {
			// principal clamps at zero and the uncovered interest is added on
			growing[i] = true
			payments[i] = d.minPayment
			d.balance = d.balance.Sub(covered)
		} else {
			principal := money.Min(covered, d.balance)
			payments[i] = accrued.Add(principal)
			d.balance = d.balance.Sub(principal)
		}
		interest[i] = accrued
	}

	target := ""
	remaining := extra
	for remaining.IsPositive() {
		open := a.open()
		if len(open) == 0 {
			break
		}
		top := order(open)[0]
		applied := money.Min(remaining, top.balance)
		top.balance = top.balance.Sub(applied)
		payments[top.index] = payments[top.index].Add(applied)
		remaining = remaining.Sub(applied)
		if target == "" {
			target = top.id
		}
		if !s.Options.CascadeExtra {
			break
		}
	}

	snap := domain.MonthlySnapshot{
		Month:                 month,
		PerDebt:               make([]domain.DebtSnapshot, n),
		TotalPayment:          decimal.Zero,
		TotalInterest:         decimal.Zero,
		TotalRemainingBalance: decimal.Zero,
		TargetDebtID:          target,
	}
	if !s.Options.StartDate.IsZero() {
		snap.Date = dateutil.ScheduleDate(s.Options.StartDate, month)
	}
	for i, d := range a.debts {
		snap.PerDebt[i] = domain.DebtSnapshot{
			DebtID:           d.id,
			Name:             d.name,
			Payment:          payments[i],
			Interest:         interest[i],
			RemainingBalance: d.balance,
			IsPaidOff:        !d.open(),
			NonAmortizing:    growing[i],
		}
		snap.TotalPayment = snap.TotalPayment.Add(payments[i])
		snap.TotalInterest = snap.TotalInterest.Add(interest[i])
		snap.TotalRemainingBalance = snap.TotalRemainingBalance.Add(d.balance)
	}
	return snap
}
