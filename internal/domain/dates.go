package domain

import "time"

// DateRange is an inclusive range of calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if both bounds are set and End is not before Start
func (r DateRange) IsValid() bool {
	if r.Start.IsZero() || r.End.IsZero() {
		return false
	}
	return !DateOnly(r.End).Before(DateOnly(r.Start))
}

// DateOnly truncates t to midnight UTC of the same calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from start to end.
// The result is negative when end is before start.
func DaysBetween(start, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)).Hours() / 24)
}

// SeasonForDate returns the meteorological season of the date's month
func SeasonForDate(t time.Time) Season {
	switch t.Month() {
	case time.December, time.January, time.February:
		return SeasonWinter
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	default:
		return SeasonAutumn
	}
}
