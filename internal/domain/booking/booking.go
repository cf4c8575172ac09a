package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"propertree/internal/domain/property"
	"propertree/internal/domain/shared/daterange"
)

type BookingID string

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// RevenueStatuses are the states in which a booking counts as realized income
// and toward occupancy.
var RevenueStatuses = []Status{StatusConfirmed, StatusCompleted}

// Booking is a read-only stay snapshot. CheckIn/CheckOut form a half-open
// interval (the checkout day is not occupied); check_in < check_out is
// enforced by the booking service upstream. TotalPrice is fixed at creation
// and never recomputed here.
type Booking struct {
	ID         BookingID
	PropertyID property.PropertyID
	TenantID   string
	CheckIn    time.Time
	CheckOut   time.Time
	Status     Status
	TotalPrice decimal.Decimal
	UpdatedAt  time.Time
}

// Realized reports whether the booking counts as income/occupancy.
func (b Booking) Realized() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// Nights returns the stay length in nights.
func (b Booking) Nights() int {
	return int(daterange.Day(b.CheckOut).Sub(daterange.Day(b.CheckIn)).Hours() / 24)
}

// Covers reports whether the stay occupies the given calendar date.
func (b Booking) Covers(date time.Time) bool {
	d := daterange.Day(date)
	return !daterange.Day(b.CheckIn).After(d) && !daterange.Day(b.CheckOut).Before(d)
}

// PaymentID identifies a payment settled against a booking. Payments are
// owned by the billing collaborator; only completed amounts reach the reports.
type Payment struct {
	ID        string
	BookingID BookingID
	Amount    decimal.Decimal
	Status    string
	PaidAt    time.Time
}

// PaymentCompleted is the settled payment state.
const PaymentCompleted = "completed"
