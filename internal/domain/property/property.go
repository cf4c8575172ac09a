package property

import (
	"time"

	"github.com/shopspring/decimal"
)

type PropertyID string

type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
)

// Property is a read-only listing snapshot. Lifecycle management lives in the
// CRUD service; reports never mutate these records.
type Property struct {
	ID           PropertyID
	LandlordID   string
	Title        string
	City         string
	PropertyType string
	Status       Status
	NightlyPrice decimal.Decimal
	CreatedAt    time.Time
}

// Countable reports whether the property belongs in occupancy denominators.
// Only approved listings count.
func (p Property) Countable() bool {
	return p.Status == StatusApproved
}

type ExpenseID string

// Expense is an operating cost line recorded against a property: utilities,
// taxes, insurance, HOA fees and the like. Maintenance work is tracked
// separately and must never be folded into expense totals.
type Expense struct {
	ID          ExpenseID
	PropertyID  PropertyID
	Category    string
	Amount      decimal.Decimal
	ExpenseDate time.Time
}
