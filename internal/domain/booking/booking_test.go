package booking

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	b := Booking{CheckIn: date(2025, time.June, 1), CheckOut: date(2025, time.June, 8)}
	if got := b.Nights(); got != 7 {
		t.Fatalf("Nights() = %d, want 7", got)
	}
}

func TestCovers(t *testing.T) {
	b := Booking{CheckIn: date(2025, time.June, 10), CheckOut: date(2025, time.June, 20)}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"mid stay", date(2025, time.June, 15), true},
		{"check-in day", date(2025, time.June, 10), true},
		{"check-out day", date(2025, time.June, 20), true},
		{"day before", date(2025, time.June, 9), false},
		{"day after", date(2025, time.June, 21), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Covers(tt.date); got != tt.want {
				t.Fatalf("Covers(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestRealized(t *testing.T) {
	if !(Booking{Status: StatusConfirmed}).Realized() || !(Booking{Status: StatusCompleted}).Realized() {
		t.Fatal("confirmed and completed bookings should be realized")
	}
	if (Booking{Status: StatusPending}).Realized() || (Booking{Status: StatusCancelled}).Realized() {
		t.Fatal("pending and cancelled bookings should not be realized")
	}
}
