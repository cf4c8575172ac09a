package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"propertree/internal/app/analytics"
	"propertree/internal/domain/booking"
	"propertree/internal/domain/maintenance"
	"propertree/internal/domain/property"
	"propertree/internal/domain/shared/daterange"
)

// Repository is an in-memory analytics.Repository. It backs tests and the
// fixture-driven demo mode; every query returns records sorted by id so
// report output is deterministic.
type Repository struct {
	mu          sync.RWMutex
	properties  map[property.PropertyID]property.Property
	bookings    map[booking.BookingID]booking.Booking
	maintenance map[maintenance.RequestID]maintenance.Request
	expenses    map[property.ExpenseID]property.Expense
	payments    map[string]booking.Payment
	userRoles   map[string]string
}

// NewRepository builds an empty store.
func NewRepository() *Repository {
	return &Repository{
		properties:  make(map[property.PropertyID]property.Property),
		bookings:    make(map[booking.BookingID]booking.Booking),
		maintenance: make(map[maintenance.RequestID]maintenance.Request),
		expenses:    make(map[property.ExpenseID]property.Expense),
		payments:    make(map[string]booking.Payment),
		userRoles:   make(map[string]string),
	}
}

// SeedProperties stores property snapshots.
func (r *Repository) SeedProperties(items ...property.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.properties[item.ID] = item
	}
}

// SeedBookings stores booking snapshots.
func (r *Repository) SeedBookings(items ...booking.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.bookings[item.ID] = item
	}
}

// SeedMaintenance stores maintenance request snapshots.
func (r *Repository) SeedMaintenance(items ...maintenance.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.maintenance[item.ID] = item
	}
}

// SeedExpenses stores expense records.
func (r *Repository) SeedExpenses(items ...property.Expense) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.expenses[item.ID] = item
	}
}

// SeedPayments stores payment records.
func (r *Repository) SeedPayments(items ...booking.Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.payments[item.ID] = item
	}
}

// SeedUser registers a platform account with its role.
func (r *Repository) SeedUser(id, role string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userRoles[id] = role
}

func (r *Repository) PropertiesForLandlord(ctx context.Context, landlordID string, statuses ...property.Status) ([]property.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]property.Property, 0, len(r.properties))
	for _, p := range r.properties {
		if p.LandlordID != landlordID {
			continue
		}
		if len(statuses) > 0 && !statusIncluded(p.Status, statuses) {
			continue
		}
		matches = append(matches, p)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *Repository) BookingsForLandlord(ctx context.Context, landlordID string, statuses []booking.Status, overlap *daterange.Range) ([]booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owned := r.ownedProperties(landlordID)
	matches := make([]booking.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if _, ok := owned[b.PropertyID]; !ok {
			continue
		}
		if len(statuses) > 0 && !bookingStatusIncluded(b.Status, statuses) {
			continue
		}
		if overlap != nil && !overlap.Overlaps(b.CheckIn, b.CheckOut) {
			continue
		}
		matches = append(matches, b)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *Repository) MaintenanceForLandlord(ctx context.Context, landlordID string) ([]maintenance.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owned := r.ownedProperties(landlordID)
	matches := make([]maintenance.Request, 0, len(r.maintenance))
	for _, req := range r.maintenance {
		if _, ok := owned[req.PropertyID]; ok {
			matches = append(matches, req)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *Repository) ExpensesForLandlord(ctx context.Context, landlordID string, window *daterange.Range) ([]property.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owned := r.ownedProperties(landlordID)
	matches := make([]property.Expense, 0, len(r.expenses))
	for _, exp := range r.expenses {
		if _, ok := owned[exp.PropertyID]; !ok {
			continue
		}
		if window != nil && !window.Contains(exp.ExpenseDate) {
			continue
		}
		matches = append(matches, exp)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *Repository) Properties(ctx context.Context, statuses ...property.Status) ([]property.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]property.Property, 0, len(r.properties))
	for _, p := range r.properties {
		if len(statuses) > 0 && !statusIncluded(p.Status, statuses) {
			continue
		}
		matches = append(matches, p)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *Repository) Bookings(ctx context.Context, statuses ...booking.Status) ([]booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]booking.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if len(statuses) > 0 && !bookingStatusIncluded(b.Status, statuses) {
			continue
		}
		matches = append(matches, b)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *Repository) Maintenance(ctx context.Context) ([]maintenance.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := make([]maintenance.Request, 0, len(r.maintenance))
	for _, req := range r.maintenance {
		matches = append(matches, req)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *Repository) UserCounts(ctx context.Context) (analytics.UserCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := analytics.UserCounts{Total: len(r.userRoles)}
	for _, role := range r.userRoles {
		switch role {
		case "landlord":
			counts.Landlords++
		case "tenant":
			counts.Tenants++
		}
	}
	return counts, nil
}

func (r *Repository) CompletedPaymentsTotal(ctx context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, payment := range r.payments {
		if payment.Status == booking.PaymentCompleted {
			total = total.Add(payment.Amount)
		}
	}
	return total, nil
}

func (r *Repository) ownedProperties(landlordID string) map[property.PropertyID]struct{} {
	owned := make(map[property.PropertyID]struct{})
	for id, p := range r.properties {
		if p.LandlordID == landlordID {
			owned[id] = struct{}{}
		}
	}
	return owned
}

func statusIncluded(status property.Status, allowed []property.Status) bool {
	for _, candidate := range allowed {
		if status == candidate {
			return true
		}
	}
	return false
}

func bookingStatusIncluded(status booking.Status, allowed []booking.Status) bool {
	for _, candidate := range allowed {
		if status == candidate {
			return true
		}
	}
	return false
}

var _ analytics.Repository = (*Repository)(nil)
