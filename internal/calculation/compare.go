package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/payoff-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// SimulateBoth runs snowball and avalanche against the same input in parallel.
// Each run clones its own working state so nothing is shared between them.
func (s *Simulator) SimulateBoth(ctx context.Context, debts []domain.Debt, extra decimal.Decimal) (*domain.PayoffResult, *domain.PayoffResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if err := ValidateDebts(debts); err != nil {
		return nil, nil, err
	}
	if err := ValidateExtraPayment(extra); err != nil {
		return nil, nil, err
	}

	var snowball, avalanche *domain.PayoffResult
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.Simulate(debts, extra, domain.Snowball)
		if err != nil {
			return fmt.Errorf("snowball: %w", err)
		}
		snowball = r
		return nil
	})
	g.Go(func() error {
		r, err := s.Simulate(debts, extra, domain.Avalanche)
		if err != nil {
			return fmt.Errorf("avalanche: %w", err)
		}
		avalanche = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return snowball, avalanche, nil
}

// ForPlan returns a copy of the simulator with the plan's options applied
func (s *Simulator) ForPlan(plan *domain.Plan) *Simulator {
	runner := *s
	if plan.MaxMonths > 0 {
		runner.Options.MaxMonths = plan.MaxMonths
	}
	if plan.CascadeExtra {
		runner.Options.CascadeExtra = true
	}
	if plan.StartDate != nil {
		runner.Options.StartDate = *plan.StartDate
	}
	return &runner
}

// RunPlan simulates every policy the plan requests and packages the results
// for reporting. Results always come back in snowball, avalanche order.
func (s *Simulator) RunPlan(ctx context.Context, plan *domain.Plan) (*domain.PlanComparison, error) {
	if plan == nil {
		return nil, fmt.Errorf("%w: no plan provided", ErrInvalidInput)
	}
	switch plan.Policy {
	case "", domain.PolicyBoth, string(domain.Snowball), string(domain.Avalanche):
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, plan.Policy)
	}

	runner := s.ForPlan(plan)
	comparison := &domain.PlanComparison{
		Plan:        *plan,
		GeneratedAt: nowFunc(),
	}

	policies := plan.RequestedPolicies()
	if len(policies) == 2 {
		snowball, avalanche, err := runner.SimulateBoth(ctx, plan.Debts, plan.ExtraPayment)
		if err != nil {
			return nil, err
		}
		comparison.Results = []domain.PayoffResult{*snowball, *avalanche}
		return comparison, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := runner.Simulate(plan.Debts, plan.ExtraPayment, policies[0])
	if err != nil {
		return nil, err
	}
	comparison.Results = []domain.PayoffResult{*result}
	return comparison, nil
}
