package money

import "time"

// DateOnly truncates a time to its calendar date in UTC. All ledger dates are
// day-granular.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// MonthOnDay returns the date monthsAhead calendar months after base, landing
// on the given day of month. Days past the end of the target month clamp to
// its last day (cutoff day 31 falls on Feb 28).
func MonthOnDay(base time.Time, monthsAhead, day int) time.Time {
	b := DateOnly(base)
	first := time.Date(b.Year(), b.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, monthsAhead, 0)
	if last := lastDayOfMonth(first); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// AddMonthClamped advances a date by one calendar month, clamping to the
// shorter month's last day instead of rolling over.
func AddMonthClamped(t time.Time) time.Time {
	return MonthOnDay(t, 1, t.Day())
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
