package maintenance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func timePtr(t time.Time) *time.Time { return &t }

func TestQualifies(t *testing.T) {
	confirmed := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  Request
		want bool
	}{
		{"resolved with cost", Request{Status: StatusResolved, Cost: decPtr(120)}, true},
		{"resolved without cost", Request{Status: StatusResolved}, false},
		{"confirmed in progress", Request{Status: StatusInProgress, AdminConfirmedAt: timePtr(confirmed)}, true},
		{"confirmed but cancelled", Request{Status: StatusCancelled, AdminConfirmedAt: timePtr(confirmed)}, false},
		{"open unconfirmed", Request{Status: StatusOpen}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Qualifies(); got != tt.want {
				t.Fatalf("Qualifies() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttributedAmountPrecedence(t *testing.T) {
	catalog := &ServiceCatalog{ID: "svc-1", Category: "plumbing", Price: decimal.NewFromFloat(45)}

	tests := []struct {
		name string
		req  Request
		want float64
	}{
		{"actual cost wins over catalog", Request{Cost: decPtr(180), Catalog: catalog}, 180},
		{"catalog price fallback", Request{Catalog: catalog}, 45},
		{"no source at all", Request{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.AttributedAmount(); !got.Equal(decimal.NewFromFloat(tt.want)) {
				t.Fatalf("AttributedAmount() = %s, want %v", got, tt.want)
			}
		})
	}
}

func TestAttributionDatePrecedence(t *testing.T) {
	reported := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	confirmed := time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC)
	resolved := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)

	full := Request{ReportedAt: reported, AdminConfirmedAt: timePtr(confirmed), ResolvedAt: timePtr(resolved)}
	if !full.AttributionDate().Equal(resolved) {
		t.Fatal("resolved_at should take precedence")
	}

	confirmedOnly := Request{ReportedAt: reported, AdminConfirmedAt: timePtr(confirmed)}
	if !confirmedOnly.AttributionDate().Equal(confirmed) {
		t.Fatal("admin_confirmed_at should be the second choice")
	}

	bare := Request{ReportedAt: reported}
	if !bare.AttributionDate().Equal(reported) {
		t.Fatal("reported_at is the last resort")
	}
}

func TestResolutionHours(t *testing.T) {
	reported := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	req := Request{ReportedAt: reported, ResolvedAt: timePtr(reported.Add(36 * time.Hour))}
	if got := req.ResolutionHours(); got != 36 {
		t.Fatalf("ResolutionHours() = %v, want 36", got)
	}
	if got := (Request{ReportedAt: reported}).ResolutionHours(); got != 0 {
		t.Fatalf("unresolved ticket hours = %v, want 0", got)
	}
}
