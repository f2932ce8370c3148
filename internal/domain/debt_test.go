package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDebt_Label(t *testing.T) {
	assert.Equal(t, "Card A", Debt{ID: "card_a", Name: "Card A"}.Label())
	assert.Equal(t, "card_a", Debt{ID: "card_a"}.Label())
}

func TestMonthlySnapshot_Lookups(t *testing.T) {
	m := MonthlySnapshot{
		Month: 3,
		PerDebt: []DebtSnapshot{
			{DebtID: "a", RemainingBalance: decimal.NewFromInt(10)},
			{DebtID: "b", NonAmortizing: true},
		},
	}

	assert.True(t, m.HasNonAmortizing())
	d, ok := m.Debt("a")
	assert.True(t, ok)
	assert.True(t, d.RemainingBalance.Equal(decimal.NewFromInt(10)))
	_, ok = m.Debt("missing")
	assert.False(t, ok)

	m.PerDebt[1].NonAmortizing = false
	assert.False(t, m.HasNonAmortizing())
}

func TestPayoffResult_FinalBalance(t *testing.T) {
	testCases := []struct {
		desc     string
		result   PayoffResult
		expected decimal.Decimal
	}{
		{
			desc:     "nothing to pay",
			result:   PayoffResult{Converged: true, StartingBalance: decimal.Zero},
			expected: decimal.Zero,
		},
		{
			desc:     "empty schedule that never ran",
			result:   PayoffResult{StartingBalance: decimal.NewFromInt(50)},
			expected: decimal.NewFromInt(50),
		},
		{
			desc: "last month wins",
			result: PayoffResult{Schedule: []MonthlySnapshot{
				{Month: 1, TotalRemainingBalance: decimal.NewFromInt(80)},
				{Month: 2, TotalRemainingBalance: decimal.NewFromInt(40)},
			}},
			expected: decimal.NewFromInt(40),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.True(t, tc.expected.Equal(tc.result.FinalBalance()), "got %s", tc.result.FinalBalance())
		})
	}
}

func TestPayoffResult_DebtFreeDate(t *testing.T) {
	aug := time.Date(2027, 8, 1, 0, 0, 0, 0, time.UTC)
	r := PayoffResult{Converged: true, Schedule: []MonthlySnapshot{{Month: 1}, {Month: 2, Date: aug}}}

	got, ok := r.DebtFreeDate()
	assert.True(t, ok)
	assert.Equal(t, aug, got)

	r.Converged = false
	_, ok = r.DebtFreeDate()
	assert.False(t, ok, "an unfinished plan has no debt free date")

	undated := PayoffResult{Converged: true, Schedule: []MonthlySnapshot{{Month: 1}}}
	_, ok = undated.DebtFreeDate()
	assert.False(t, ok)
}
