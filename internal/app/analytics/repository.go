package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"propertree/internal/domain/booking"
	"propertree/internal/domain/maintenance"
	"propertree/internal/domain/property"
	"propertree/internal/domain/shared/daterange"
)

// UserCounts are platform account totals supplied by the identity collaborator.
type UserCounts struct {
	Total     int
	Landlords int
	Tenants   int
}

// Repository is the read-only data-access port the engines consume. The
// persistence layer owns every record; implementations hand each caller a
// consistent snapshot, and a query failure propagates unchanged; the engines
// never retry or degrade to stale data.
type Repository interface {
	// Landlord-scoped queries. Bookings, maintenance and expenses are scoped
	// through property ownership.
	PropertiesForLandlord(ctx context.Context, landlordID string, statuses ...property.Status) ([]property.Property, error)
	// BookingsForLandlord filters by status, and when overlap is non-nil keeps
	// only stays touching the window.
	BookingsForLandlord(ctx context.Context, landlordID string, statuses []booking.Status, overlap *daterange.Range) ([]booking.Booking, error)
	// MaintenanceForLandlord returns the raw request list; qualification and
	// window filtering happen in the engines.
	MaintenanceForLandlord(ctx context.Context, landlordID string) ([]maintenance.Request, error)
	ExpensesForLandlord(ctx context.Context, landlordID string, window *daterange.Range) ([]property.Expense, error)

	// Platform-wide queries for the admin reports.
	Properties(ctx context.Context, statuses ...property.Status) ([]property.Property, error)
	Bookings(ctx context.Context, statuses ...booking.Status) ([]booking.Booking, error)
	Maintenance(ctx context.Context) ([]maintenance.Request, error)
	UserCounts(ctx context.Context) (UserCounts, error)
	CompletedPaymentsTotal(ctx context.Context) (decimal.Decimal, error)
}
