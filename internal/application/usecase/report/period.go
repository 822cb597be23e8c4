// Package report contains read-only reporting use cases over the ledger.
package report

import "time"

// Period is a reporting window granularity.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// IsValidPeriod reports whether the value is a known granularity.
func IsValidPeriod(p Period) bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// PeriodBounds returns the inclusive start and end of the window
// containing the anchor. Weeks start on Sunday.
func PeriodBounds(period Period, anchor time.Time) (start, end time.Time) {
	switch period {
	case PeriodWeekly:
		start = startOfDay(anchor).AddDate(0, 0, -int(anchor.Weekday()))
		end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	case PeriodMonthly:
		start = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	default:
		start = startOfDay(anchor)
		end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return start, end
}

// Shift moves the anchor by the given number of windows, negative for
// earlier windows.
func Shift(period Period, anchor time.Time, by int) time.Time {
	switch period {
	case PeriodWeekly:
		return anchor.AddDate(0, 0, 7*by)
	case PeriodMonthly:
		return anchor.AddDate(0, by, 0)
	default:
		return anchor.AddDate(0, 0, by)
	}
}

// IsNextDisabled reports whether stepping forward from the anchor would
// leave the window containing now.
func IsNextDisabled(period Period, anchor, now time.Time) bool {
	_, end := PeriodBounds(period, anchor)
	return !end.Before(now)
}

func startOfDay(at time.Time) time.Time {
	return time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
}
