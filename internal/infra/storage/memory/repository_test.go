package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"propertree/internal/domain/booking"
	"propertree/internal/domain/maintenance"
	"propertree/internal/domain/property"
	"propertree/internal/domain/shared/daterange"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedTwoLandlords(t *testing.T) *Repository {
	t.Helper()
	repo := NewRepository()
	repo.SeedProperties(
		property.Property{ID: "p1", LandlordID: "u-lena", Status: property.StatusApproved},
		property.Property{ID: "p2", LandlordID: "u-lena", Status: property.StatusDraft},
		property.Property{ID: "p9", LandlordID: "u-marc", Status: property.StatusApproved},
	)
	repo.SeedBookings(
		booking.Booking{
			ID: "b1", PropertyID: "p1", Status: booking.StatusConfirmed,
			CheckIn: date(2025, time.March, 5), CheckOut: date(2025, time.March, 10),
			TotalPrice: decimal.NewFromInt(500),
		},
		booking.Booking{
			ID: "b2", PropertyID: "p2", Status: booking.StatusPending,
			CheckIn: date(2025, time.April, 1), CheckOut: date(2025, time.April, 5),
			TotalPrice: decimal.NewFromInt(300),
		},
		booking.Booking{
			ID: "b3", PropertyID: "p9", Status: booking.StatusConfirmed,
			CheckIn: date(2025, time.March, 5), CheckOut: date(2025, time.March, 10),
			TotalPrice: decimal.NewFromInt(999),
		},
	)
	repo.SeedExpenses(
		property.Expense{ID: "e1", PropertyID: "p1", Category: "utilities", Amount: decimal.NewFromInt(100), ExpenseDate: date(2025, time.March, 3)},
		property.Expense{ID: "e2", PropertyID: "p1", Category: "taxes", Amount: decimal.NewFromInt(80), ExpenseDate: date(2025, time.April, 3)},
		property.Expense{ID: "e3", PropertyID: "p9", Category: "utilities", Amount: decimal.NewFromInt(70), ExpenseDate: date(2025, time.March, 3)},
	)
	repo.SeedMaintenance(
		maintenance.Request{ID: "m1", PropertyID: "p1", Status: maintenance.StatusOpen, ReportedAt: date(2025, time.March, 1)},
		maintenance.Request{ID: "m2", PropertyID: "p9", Status: maintenance.StatusOpen, ReportedAt: date(2025, time.March, 1)},
	)
	return repo
}

func TestLandlordQueriesAreScoped(t *testing.T) {
	repo := seedTwoLandlords(t)
	ctx := context.Background()

	bookings, err := repo.BookingsForLandlord(ctx, "u-lena", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(bookings) != 2 || bookings[0].ID != "b1" || bookings[1].ID != "b2" {
		t.Fatalf("BookingsForLandlord = %+v", bookings)
	}

	expenses, err := repo.ExpensesForLandlord(ctx, "u-lena", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(expenses) != 2 || expenses[0].ID != "e1" || expenses[1].ID != "e2" {
		t.Fatalf("ExpensesForLandlord = %+v", expenses)
	}

	requests, err := repo.MaintenanceForLandlord(ctx, "u-lena")
	if err != nil {
		t.Fatal(err)
	}
	if len(requests) != 1 || requests[0].ID != "m1" {
		t.Fatalf("MaintenanceForLandlord = %+v", requests)
	}
}

func TestBookingsForLandlordFilters(t *testing.T) {
	repo := seedTwoLandlords(t)
	ctx := context.Background()

	confirmed, err := repo.BookingsForLandlord(ctx, "u-lena", []booking.Status{booking.StatusConfirmed}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(confirmed) != 1 || confirmed[0].ID != "b1" {
		t.Fatalf("status filter = %+v", confirmed)
	}

	march, err := daterange.New(date(2025, time.March, 1), date(2025, time.March, 31))
	if err != nil {
		t.Fatal(err)
	}
	overlapping, err := repo.BookingsForLandlord(ctx, "u-lena", nil, &march)
	if err != nil {
		t.Fatal(err)
	}
	if len(overlapping) != 1 || overlapping[0].ID != "b1" {
		t.Fatalf("overlap filter = %+v", overlapping)
	}
}

func TestExpensesForLandlordWindow(t *testing.T) {
	repo := seedTwoLandlords(t)

	march, err := daterange.New(date(2025, time.March, 1), date(2025, time.March, 31))
	if err != nil {
		t.Fatal(err)
	}
	expenses, err := repo.ExpensesForLandlord(context.Background(), "u-lena", &march)
	if err != nil {
		t.Fatal(err)
	}
	if len(expenses) != 1 || expenses[0].ID != "e1" {
		t.Fatalf("window filter = %+v", expenses)
	}
}

func TestPlatformQueries(t *testing.T) {
	repo := seedTwoLandlords(t)
	ctx := context.Background()

	approved, err := repo.Properties(ctx, property.StatusApproved)
	if err != nil {
		t.Fatal(err)
	}
	if len(approved) != 2 || approved[0].ID != "p1" || approved[1].ID != "p9" {
		t.Fatalf("Properties(approved) = %+v", approved)
	}

	confirmed, err := repo.Bookings(ctx, booking.StatusConfirmed)
	if err != nil {
		t.Fatal(err)
	}
	if len(confirmed) != 2 || confirmed[0].ID != "b1" || confirmed[1].ID != "b3" {
		t.Fatalf("Bookings(confirmed) = %+v", confirmed)
	}

	requests, err := repo.Maintenance(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(requests) != 2 {
		t.Fatalf("Maintenance = %+v", requests)
	}
}

func TestUserCounts(t *testing.T) {
	repo := NewRepository()
	repo.SeedUser("u-lena", "landlord")
	repo.SeedUser("t-1", "tenant")
	repo.SeedUser("t-2", "tenant")
	repo.SeedUser("adm", "admin")

	counts, err := repo.UserCounts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if counts.Total != 4 || counts.Landlords != 1 || counts.Tenants != 2 {
		t.Fatalf("UserCounts = %+v", counts)
	}
}

func TestCompletedPaymentsTotal(t *testing.T) {
	repo := NewRepository()
	repo.SeedPayments(
		booking.Payment{ID: "pay1", BookingID: "b1", Amount: decimal.NewFromInt(400), Status: booking.PaymentCompleted},
		booking.Payment{ID: "pay2", BookingID: "b1", Amount: decimal.NewFromInt(150), Status: booking.PaymentCompleted},
		booking.Payment{ID: "pay3", BookingID: "b2", Amount: decimal.NewFromInt(999), Status: "pending"},
	)

	total, err := repo.CompletedPaymentsTotal(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(decimal.NewFromInt(550)) {
		t.Fatalf("CompletedPaymentsTotal = %s, want 550", total)
	}
}
