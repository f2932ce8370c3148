package dateutil

import (
	"time"
)

// FirstOfMonth truncates a date to the first day of its month (UTC)
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves a date forward by n whole months, anchored on the first of
// the month so that month-end dates never skip a month.
func AddMonths(t time.Time, n int) time.Time {
	return FirstOfMonth(t).AddDate(0, n, 0)
}

// ScheduleDate returns the billing date of a 1-based schedule month given the
// plan start. Month 1 is the start month itself.
func ScheduleDate(start time.Time, month int) time.Time {
	if month < 1 {
		return FirstOfMonth(start)
	}
	return AddMonths(start, month-1)
}

// MonthLabel formats a date as "Jan 2025"
func MonthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}

// YearsAndMonths splits a month count into whole years and remaining months
func YearsAndMonths(months int) (years, rem int) {
	if months <= 0 {
		return 0, 0
	}
	return months / 12, months % 12
}
