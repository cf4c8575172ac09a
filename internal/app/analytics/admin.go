package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"propertree/internal/app/dto"
	"propertree/internal/domain/booking"
	"propertree/internal/domain/maintenance"
	"propertree/internal/domain/property"
	"propertree/internal/domain/shared/daterange"
	"propertree/internal/domain/shared/money"
)

// AdminEngine computes platform-wide KPIs. Operations take no date window;
// they reflect the current whole-table snapshot.
type AdminEngine struct {
	Repo Repository
	Now  func() time.Time
}

func NewAdminEngine(repo Repository) *AdminEngine {
	return &AdminEngine{Repo: repo, Now: time.Now}
}

func (e *AdminEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// OpenMaintenanceTickets counts requests in open, assigned or in-progress state.
func (e *AdminEngine) OpenMaintenanceTickets(ctx context.Context) (int, error) {
	requests, err := e.Repo.Maintenance(ctx)
	if err != nil {
		return 0, fmt.Errorf("analytics: open tickets: %w", err)
	}
	open := 0
	for _, req := range requests {
		if req.Open() {
			open++
		}
	}
	return open, nil
}

// AverageResolutionTime reports the mean reported-to-resolved span in hours
// over resolved requests, rounded to 2 decimals; zero when none resolved.
func (e *AdminEngine) AverageResolutionTime(ctx context.Context) (float64, error) {
	requests, err := e.Repo.Maintenance(ctx)
	if err != nil {
		return 0, fmt.Errorf("analytics: resolution time: %w", err)
	}
	totalHours := 0.0
	resolved := 0
	for _, req := range requests {
		if req.Status != maintenance.StatusResolved || req.ResolvedAt == nil {
			continue
		}
		totalHours += req.ResolutionHours()
		resolved++
	}
	if resolved == 0 {
		return 0, nil
	}
	return round2(totalHours / float64(resolved)), nil
}

// OccupancyRatio is the share of approved properties occupied today by a
// confirmed booking, as a percentage rounded to 2 decimals.
func (e *AdminEngine) OccupancyRatio(ctx context.Context) (float64, error) {
	approved, err := e.Repo.Properties(ctx, property.StatusApproved)
	if err != nil {
		return 0, fmt.Errorf("analytics: occupancy ratio: %w", err)
	}
	if len(approved) == 0 {
		return 0, nil
	}
	bookings, err := e.Repo.Bookings(ctx, booking.StatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("analytics: occupancy ratio: %w", err)
	}

	approvedIDs := make(map[property.PropertyID]struct{}, len(approved))
	for _, p := range approved {
		approvedIDs[p.ID] = struct{}{}
	}
	today := daterange.Day(e.now())
	occupied := make(map[property.PropertyID]struct{})
	for _, b := range bookings {
		if !b.Covers(today) {
			continue
		}
		if _, ok := approvedIDs[b.PropertyID]; ok {
			occupied[b.PropertyID] = struct{}{}
		}
	}
	return round2(float64(len(occupied)) / float64(len(approved)) * 100), nil
}

// RentCollectionRate is completed payment volume over confirmed booking value,
// as a percentage; zero when there are no confirmed bookings.
func (e *AdminEngine) RentCollectionRate(ctx context.Context) (float64, error) {
	bookings, err := e.Repo.Bookings(ctx, booking.StatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("analytics: rent collection rate: %w", err)
	}
	due := decimal.Zero
	for _, b := range bookings {
		due = due.Add(b.TotalPrice)
	}
	collected, err := e.Repo.CompletedPaymentsTotal(ctx)
	if err != nil {
		return 0, fmt.Errorf("analytics: rent collection rate: %w", err)
	}
	return money.Ratio(collected, due), nil
}

// PlatformStatistics reports platform-wide entity counts. Active properties
// are the approved ones; active bookings are the confirmed ones.
func (e *AdminEngine) PlatformStatistics(ctx context.Context) (dto.PlatformStatistics, error) {
	users, err := e.Repo.UserCounts(ctx)
	if err != nil {
		return dto.PlatformStatistics{}, fmt.Errorf("analytics: platform statistics: %w", err)
	}
	properties, err := e.Repo.Properties(ctx)
	if err != nil {
		return dto.PlatformStatistics{}, fmt.Errorf("analytics: platform statistics: %w", err)
	}
	bookings, err := e.Repo.Bookings(ctx)
	if err != nil {
		return dto.PlatformStatistics{}, fmt.Errorf("analytics: platform statistics: %w", err)
	}

	stats := dto.PlatformStatistics{
		TotalUsers:      users.Total,
		TotalLandlords:  users.Landlords,
		TotalTenants:    users.Tenants,
		TotalProperties: len(properties),
		TotalBookings:   len(bookings),
	}
	for _, p := range properties {
		if p.Status == property.StatusApproved {
			stats.ActiveProperties++
		}
	}
	for _, b := range bookings {
		if b.Status == booking.StatusConfirmed {
			stats.ActiveBookings++
		}
	}
	return stats, nil
}

// topCities caps the by-city breakdown.
const topCities = 10

// PropertyBreakdown groups the property table by type, status and city
// (largest buckets first, cities capped at ten).
func (e *AdminEngine) PropertyBreakdown(ctx context.Context) (dto.PropertyBreakdown, error) {
	properties, err := e.Repo.Properties(ctx)
	if err != nil {
		return dto.PropertyBreakdown{}, fmt.Errorf("analytics: property breakdown: %w", err)
	}

	byType := make(map[string]int)
	byStatus := make(map[string]int)
	byCity := make(map[string]int)
	for _, p := range properties {
		byType[p.PropertyType]++
		byStatus[string(p.Status)]++
		byCity[p.City]++
	}

	cities := sortedBuckets(byCity)
	if len(cities) > topCities {
		cities = cities[:topCities]
	}
	return dto.PropertyBreakdown{
		ByType:   sortedBuckets(byType),
		ByStatus: sortedBuckets(byStatus),
		ByCity:   cities,
	}, nil
}

func sortedBuckets(counts map[string]int) []dto.CountBucket {
	buckets := make([]dto.CountBucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, dto.CountBucket{Label: label, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})
	return buckets
}
