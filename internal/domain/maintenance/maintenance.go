package maintenance

import (
	"time"

	"github.com/shopspring/decimal"

	"propertree/internal/domain/property"
)

type RequestID string

type Status string

const (
	StatusOpen       Status = "open"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
	StatusCancelled  Status = "cancelled"
)

// OpenStatuses are the ticket states counted as open on the admin dashboard.
var OpenStatuses = []Status{StatusOpen, StatusAssigned, StatusInProgress}

// ServiceCatalog is a fixed-price service entry. Its price is the fallback
// cost source when a request carries no actual cost; catalog prices are
// bounded to 0-100 currency units upstream.
type ServiceCatalog struct {
	ID       string
	Category string
	Price    decimal.Decimal
}

// Request is a read-only maintenance/service ticket snapshot. Catalog is the
// resolved service reference, joined once when the snapshot is built so cost
// attribution never re-queries it.
type Request struct {
	ID               RequestID
	PropertyID       property.PropertyID
	Status           Status
	Cost             *decimal.Decimal
	Catalog          *ServiceCatalog
	ReportedAt       time.Time
	ResolvedAt       *time.Time
	AdminConfirmedAt *time.Time
}

// Open reports whether the ticket is still being worked.
func (r Request) Open() bool {
	return r.Status == StatusOpen || r.Status == StatusAssigned || r.Status == StatusInProgress
}

// Qualifies reports whether the request counts toward cost totals: resolved
// with an actual cost, or admin-confirmed and not cancelled.
func (r Request) Qualifies() bool {
	if r.Status == StatusResolved && r.Cost != nil {
		return true
	}
	return r.AdminConfirmedAt != nil && r.Status != StatusCancelled
}

// AttributedAmount is the monetary value of a qualifying request: the actual
// cost when present, else the catalog price, else zero. The sources are never
// combined.
func (r Request) AttributedAmount() decimal.Decimal {
	if r.Cost != nil {
		return *r.Cost
	}
	if r.Catalog != nil {
		return r.Catalog.Price
	}
	return decimal.Zero
}

// AttributionDate places the cost into a reporting window: resolved_at when
// set, else admin_confirmed_at, else reported_at, in that strict order.
func (r Request) AttributionDate() time.Time {
	if r.ResolvedAt != nil {
		return *r.ResolvedAt
	}
	if r.AdminConfirmedAt != nil {
		return *r.AdminConfirmedAt
	}
	return r.ReportedAt
}

// ResolutionHours returns the reported-to-resolved span in hours, or 0 when
// the ticket has not been resolved.
func (r Request) ResolutionHours() float64 {
	if r.ResolvedAt == nil {
		return 0
	}
	return r.ResolvedAt.Sub(r.ReportedAt).Hours()
}
