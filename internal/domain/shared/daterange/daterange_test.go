package daterange

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewRejectsInvertedRange(t *testing.T) {
	_, err := New(date(2025, time.March, 10), date(2025, time.March, 1))
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestNewNormalizesToCalendarDates(t *testing.T) {
	start := time.Date(2025, time.March, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 8, 0, 0, 0, time.UTC)
	r, err := New(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Start.Equal(date(2025, time.March, 1)) || !r.End.Equal(date(2025, time.March, 31)) {
		t.Fatalf("range not normalized: %+v", r)
	}
	if got := r.Days(); got != 30 {
		t.Fatalf("Days() = %d, want 30", got)
	}
}

func TestOverlapDays(t *testing.T) {
	window := Range{Start: date(2025, time.January, 1), End: date(2025, time.January, 31)}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"inside window", date(2025, time.January, 5), date(2025, time.January, 15), 10},
		{"clipped at start", date(2024, time.December, 20), date(2025, time.January, 10), 9},
		{"clipped at end", date(2025, time.January, 25), date(2025, time.February, 10), 6},
		{"spans whole window", date(2024, time.December, 1), date(2025, time.March, 1), 30},
		{"touches start only", date(2024, time.December, 1), date(2025, time.January, 1), 0},
		{"outside window", date(2025, time.March, 1), date(2025, time.March, 5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := window.OverlapDays(tt.checkIn, tt.checkOut); got != tt.want {
				t.Fatalf("OverlapDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	window := Range{Start: date(2025, time.June, 1), End: date(2025, time.June, 30)}
	if !window.Contains(time.Date(2025, time.June, 30, 23, 0, 0, 0, time.UTC)) {
		t.Fatal("end date should be inside the inclusive window")
	}
	if window.Contains(date(2025, time.July, 1)) {
		t.Fatal("day after end should be outside")
	}
	if window.Contains(date(2025, time.May, 31)) {
		t.Fatal("day before start should be outside")
	}
}

func TestYearAndMonthBounds(t *testing.T) {
	y := Year(2024)
	if !y.Start.Equal(date(2024, time.January, 1)) || !y.End.Equal(date(2024, time.December, 31)) {
		t.Fatalf("Year(2024) = %+v", y)
	}
	if got := MonthStart(date(2025, time.February, 17)); !got.Equal(date(2025, time.February, 1)) {
		t.Fatalf("MonthStart = %v", got)
	}
	if got := MonthEnd(date(2024, time.February, 3)); !got.Equal(date(2024, time.February, 29)) {
		t.Fatalf("MonthEnd leap year = %v", got)
	}
}
