package analytics_test

import (
	"time"

	"github.com/shopspring/decimal"

	"propertree/internal/domain/booking"
	"propertree/internal/domain/property"
)

// Shared fixture helpers for the engine tests. All tests run against a frozen
// clock so occupancy and default-window logic stay reproducible.

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func timePtr(t time.Time) *time.Time { return &t }

func frozenNow() time.Time {
	return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func prop(id, landlordID string, status property.Status) property.Property {
	return property.Property{
		ID:           property.PropertyID(id),
		LandlordID:   landlordID,
		Title:        "Listing " + id,
		City:         "Lisbon",
		PropertyType: "apartment",
		Status:       status,
		NightlyPrice: decimal.NewFromInt(80),
		CreatedAt:    day(2024, time.January, 1),
	}
}

func stay(id, propertyID string, status booking.Status, checkIn, checkOut time.Time, price float64) booking.Booking {
	return booking.Booking{
		ID:         booking.BookingID(id),
		PropertyID: property.PropertyID(propertyID),
		TenantID:   "t-" + id,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     status,
		TotalPrice: decimal.NewFromFloat(price),
		UpdatedAt:  checkIn,
	}
}

func expense(id, propertyID, category string, amount float64, date time.Time) property.Expense {
	return property.Expense{
		ID:          property.ExpenseID(id),
		PropertyID:  property.PropertyID(propertyID),
		Category:    category,
		Amount:      decimal.NewFromFloat(amount),
		ExpenseDate: date,
	}
}
