package daterange

import (
	"errors"
	"time"
)

// ErrInvalidRange signals a window whose start falls after its end.
var ErrInvalidRange = errors.New("daterange: start date after end date")

// Range is an inclusive window of calendar dates. Both bounds are normalized
// to UTC midnight; the time component carries no meaning.
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a range from two calendar dates.
func New(start, end time.Time) (Range, error) {
	start = Day(start)
	end = Day(end)
	if start.After(end) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start, End: end}, nil
}

// Day truncates a timestamp to its UTC calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days returns End minus Start in whole days.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Contains reports whether the calendar date of t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps reports whether the half-open stay [checkIn, checkOut) touches the range.
func (r Range) Overlaps(checkIn, checkOut time.Time) bool {
	return !Day(checkIn).After(r.End) && !Day(checkOut).Before(r.Start)
}

// OverlapDays counts the days of [checkIn, checkOut) that fall inside the
// range: min(checkOut, End) - max(checkIn, Start), clamped at zero.
func (r Range) OverlapDays(checkIn, checkOut time.Time) int {
	start := Day(checkIn)
	if r.Start.After(start) {
		start = r.Start
	}
	end := Day(checkOut)
	if r.End.Before(end) {
		end = r.End
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Year returns the range covering a full calendar year.
func Year(year int) Range {
	return Range{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's month.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}
