package analytics

import (
	"context"
	"fmt"
	"time"

	"propertree/internal/app/dto"
	"propertree/internal/domain/shared/daterange"
)

// defaultDashboardWindowDays is the window applied when a dashboard request
// names no range: the trailing 30 days ending today.
const defaultDashboardWindowDays = 30

// Assembler composes engine outputs into a single dashboard payload. It does
// no computation of its own beyond default date-range resolution, and a
// failure in any sub-computation fails the whole request: callers must be able
// to tell a zero KPI from a broken one.
type Assembler struct {
	Repo Repository
	Now  func() time.Time
}

func NewAssembler(repo Repository) *Assembler {
	return &Assembler{Repo: repo, Now: time.Now}
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// ResolveWindow applies the default window when none was requested.
func (a *Assembler) ResolveWindow(window *daterange.Range) daterange.Range {
	if window != nil {
		return *window
	}
	end := daterange.Day(a.now())
	return daterange.Range{Start: end.AddDate(0, 0, -defaultDashboardWindowDays), End: end}
}

// LandlordDashboard builds the full landlord KPI payload for the window.
// A landlord with no properties gets all-zero KPIs, not an error.
func (a *Assembler) LandlordDashboard(ctx context.Context, landlordID string, window *daterange.Range) (dto.LandlordDashboard, error) {
	resolved := a.ResolveWindow(window)
	engine := &LandlordEngine{LandlordID: landlordID, Repo: a.Repo, Now: a.Now}

	var (
		payload dto.LandlordDashboard
		err     error
	)
	if payload.Properties, err = engine.TotalProperties(ctx); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	if payload.OccupancyRate, err = engine.OccupancyRate(ctx, &resolved); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	if payload.RentalIncome, err = engine.RentalIncome(ctx, &resolved); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	if payload.PendingBookings, err = engine.PendingBookings(ctx); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	if payload.MaintenanceCosts, err = engine.MaintenanceCosts(ctx, &resolved); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	if payload.PropertyExpenses, err = engine.PropertyExpenses(ctx, &resolved); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	if payload.AverageBooking, err = engine.AverageBookingDuration(ctx); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	if payload.NOI, err = engine.NOI(ctx, &resolved); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	if payload.PropertyPerformance, err = engine.PropertyPerformance(ctx); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	if payload.MonthlyCashFlow, err = engine.MonthlyCashFlow(ctx, &resolved); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	if payload.AnnualExpenses, err = engine.AnnualExpensesSummary(ctx, 0); err != nil {
		return dto.LandlordDashboard{}, fmt.Errorf("landlord dashboard: %w", err)
	}
	payload.DateRange = dto.DateRange{
		StartDate: resolved.Start.Format(time.DateOnly),
		EndDate:   resolved.End.Format(time.DateOnly),
	}
	return payload, nil
}

// AdminDashboard builds the full platform KPI payload.
func (a *Assembler) AdminDashboard(ctx context.Context) (dto.AdminDashboard, error) {
	engine := &AdminEngine{Repo: a.Repo, Now: a.Now}

	var (
		payload dto.AdminDashboard
		err     error
	)
	if payload.OpenMaintenanceTickets, err = engine.OpenMaintenanceTickets(ctx); err != nil {
		return dto.AdminDashboard{}, fmt.Errorf("admin dashboard: %w", err)
	}
	if payload.AverageResolutionTime, err = engine.AverageResolutionTime(ctx); err != nil {
		return dto.AdminDashboard{}, fmt.Errorf("admin dashboard: %w", err)
	}
	if payload.OccupancyRatio, err = engine.OccupancyRatio(ctx); err != nil {
		return dto.AdminDashboard{}, fmt.Errorf("admin dashboard: %w", err)
	}
	if payload.RentCollectionRate, err = engine.RentCollectionRate(ctx); err != nil {
		return dto.AdminDashboard{}, fmt.Errorf("admin dashboard: %w", err)
	}
	if payload.PlatformStatistics, err = engine.PlatformStatistics(ctx); err != nil {
		return dto.AdminDashboard{}, fmt.Errorf("admin dashboard: %w", err)
	}
	if payload.PropertyBreakdown, err = engine.PropertyBreakdown(ctx); err != nil {
		return dto.AdminDashboard{}, fmt.Errorf("admin dashboard: %w", err)
	}
	return payload, nil
}
