package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"propertree/internal/app/analytics"
	"propertree/internal/domain/maintenance"
	"propertree/internal/domain/shared/daterange"
)

func TestAttributeMaintenanceCosts(t *testing.T) {
	catalog := &maintenance.ServiceCatalog{ID: "svc-plumbing", Category: "plumbing", Price: decimal.NewFromInt(45)}
	march := daterange.Range{Start: day(2025, time.March, 1), End: day(2025, time.March, 31)}

	requests := []maintenance.Request{
		{
			ID:         "m1",
			Status:     maintenance.StatusResolved,
			Cost:       decPtr(180),
			Catalog:    catalog,
			ReportedAt: day(2025, time.March, 1),
			ResolvedAt: timePtr(day(2025, time.March, 5)),
		},
		{
			ID:               "m2",
			Status:           maintenance.StatusAssigned,
			Catalog:          catalog,
			ReportedAt:       day(2025, time.March, 8),
			AdminConfirmedAt: timePtr(day(2025, time.March, 10)),
		},
		{
			ID:         "m3",
			Status:     maintenance.StatusResolved,
			ReportedAt: day(2025, time.March, 2),
			ResolvedAt: timePtr(day(2025, time.March, 4)),
		},
		{
			ID:               "m4",
			Status:           maintenance.StatusCancelled,
			Cost:             decPtr(500),
			ReportedAt:       day(2025, time.March, 3),
			AdminConfirmedAt: timePtr(day(2025, time.March, 6)),
		},
		{
			ID:               "m5",
			Status:           maintenance.StatusInProgress,
			ReportedAt:       day(2025, time.March, 11),
			AdminConfirmedAt: timePtr(day(2025, time.March, 12)),
		},
		{
			ID:         "m6",
			Status:     maintenance.StatusResolved,
			Cost:       decPtr(90),
			ReportedAt: day(2025, time.January, 28),
			ResolvedAt: timePtr(day(2025, time.February, 1)),
		},
	}

	total, items := analytics.AttributeMaintenanceCosts(requests, &march)

	// m1 uses its actual cost, m2 falls back to the catalog price, m5 has no
	// price source but still counts, m3 never qualifies, m4 is cancelled and
	// m6 resolves outside the window.
	if !total.Equal(decimal.NewFromInt(225)) {
		t.Fatalf("total = %s, want 225", total)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	wantAmounts := map[maintenance.RequestID]int64{"m1": 180, "m2": 45, "m5": 0}
	for _, item := range items {
		want, ok := wantAmounts[item.Request.ID]
		if !ok {
			t.Fatalf("unexpected request %s attributed", item.Request.ID)
		}
		if !item.Amount.Equal(decimal.NewFromInt(want)) {
			t.Fatalf("request %s amount = %s, want %d", item.Request.ID, item.Amount, want)
		}
	}
}

func TestAttributeMaintenanceCostsNoWindow(t *testing.T) {
	requests := []maintenance.Request{
		{
			ID:         "m1",
			Status:     maintenance.StatusResolved,
			Cost:       decPtr(90),
			ReportedAt: day(2023, time.July, 1),
			ResolvedAt: timePtr(day(2023, time.July, 3)),
		},
		{
			ID:               "m2",
			Status:           maintenance.StatusClosed,
			Cost:             decPtr(10),
			ReportedAt:       day(2026, time.January, 1),
			AdminConfirmedAt: timePtr(day(2026, time.January, 2)),
		},
	}
	total, items := analytics.AttributeMaintenanceCosts(requests, nil)
	if !total.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("total = %s, want 100", total)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
}
