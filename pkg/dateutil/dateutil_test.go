package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFirstOfMonth(t *testing.T) {
	in := time.Date(2025, 3, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), FirstOfMonth(in))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{"same month", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 0, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"month end does not skip february", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"year rollover", time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), 3, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"fifty years", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 600, time.Date(2075, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.n))
		})
	}
}

func TestScheduleDate(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), ScheduleDate(start, 1))
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), ScheduleDate(start, 12))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), ScheduleDate(start, 0))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Feb 2027", MonthLabel(time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestYearsAndMonths(t *testing.T) {
	y, m := YearsAndMonths(29)
	assert.Equal(t, 2, y)
	assert.Equal(t, 5, m)

	y, m = YearsAndMonths(0)
	assert.Equal(t, 0, y)
	assert.Equal(t, 0, m)
}
