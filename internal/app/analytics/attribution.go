package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"propertree/internal/domain/maintenance"
	"propertree/internal/domain/shared/daterange"
)

// AttributedCost is one maintenance request's contribution to a cost total.
type AttributedCost struct {
	Request maintenance.Request
	Amount  decimal.Decimal
	Date    time.Time
}

// AttributeMaintenanceCosts applies the cost-attribution rule to a request
// list: keep qualifying requests (resolved with an actual cost, or
// admin-confirmed and not cancelled), price each one from its single fallback
// source, and place it on its attribution date. When window is non-nil,
// requests whose attribution date falls outside the window are dropped.
//
// Every KPI that needs maintenance cost goes through this one function; the
// rule must never be re-derived at a call site.
func AttributeMaintenanceCosts(requests []maintenance.Request, window *daterange.Range) (decimal.Decimal, []AttributedCost) {
	total := decimal.Zero
	items := make([]AttributedCost, 0, len(requests))
	for _, req := range requests {
		if !req.Qualifies() {
			continue
		}
		date := req.AttributionDate()
		if window != nil && !window.Contains(date) {
			continue
		}
		amount := req.AttributedAmount()
		total = total.Add(amount)
		items = append(items, AttributedCost{Request: req, Amount: amount, Date: date})
	}
	return total, items
}
