package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"propertree/internal/app/dto"
	"propertree/internal/domain/booking"
	"propertree/internal/domain/property"
	"propertree/internal/domain/shared/daterange"
	"propertree/internal/domain/shared/money"
)

// defaultOccupancyWindowDays is the assumed window length when occupancy is
// computed without an explicit date range.
const defaultOccupancyWindowDays = 30

// LandlordEngine computes per-landlord KPIs. Every operation is scoped to the
// configured landlord's properties; all operations are read-only and
// idempotent against an unchanged repository snapshot.
type LandlordEngine struct {
	LandlordID string
	Repo       Repository
	Now        func() time.Time
}

func NewLandlordEngine(landlordID string, repo Repository) *LandlordEngine {
	return &LandlordEngine{LandlordID: landlordID, Repo: repo, Now: time.Now}
}

func (e *LandlordEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// OccupancyRate returns booked-days / (approved-unit-count x window-days) as a
// percentage rounded to 2 decimals. Overlapping bookings on the same unit are
// each counted in full, so the figure can exceed 100; see the package docs.
func (e *LandlordEngine) OccupancyRate(ctx context.Context, window *daterange.Range) (float64, error) {
	properties, err := e.Repo.PropertiesForLandlord(ctx, e.LandlordID, property.StatusApproved)
	if err != nil {
		return 0, fmt.Errorf("analytics: occupancy rate: %w", err)
	}
	units := len(properties)
	if units == 0 {
		return 0, nil
	}

	bookings, err := e.Repo.BookingsForLandlord(ctx, e.LandlordID, booking.RevenueStatuses, window)
	if err != nil {
		return 0, fmt.Errorf("analytics: occupancy rate: %w", err)
	}

	windowDays := defaultOccupancyWindowDays
	if window != nil {
		windowDays = window.Days()
	}
	if windowDays == 0 {
		return 0, nil
	}

	bookedDays := 0
	for _, b := range bookings {
		if window != nil {
			bookedDays += window.OverlapDays(b.CheckIn, b.CheckOut)
		} else {
			bookedDays += b.Nights()
		}
	}

	rate := float64(bookedDays) / float64(units*windowDays) * 100
	return round2(rate), nil
}

// RentalIncome sums total_price over every confirmed/completed booking. The
// window argument is accepted for interface symmetry and deliberately ignored:
// income realizes when a booking is confirmed, not when the stay occurs.
func (e *LandlordEngine) RentalIncome(ctx context.Context, _ *daterange.Range) (float64, error) {
	bookings, err := e.Repo.BookingsForLandlord(ctx, e.LandlordID, booking.RevenueStatuses, nil)
	if err != nil {
		return 0, fmt.Errorf("analytics: rental income: %w", err)
	}
	total := decimal.Zero
	for _, b := range bookings {
		total = total.Add(b.TotalPrice)
	}
	return money.Float(total), nil
}

// PendingBookings reports the count and summed value of pending bookings.
func (e *LandlordEngine) PendingBookings(ctx context.Context) (dto.PendingBookings, error) {
	bookings, err := e.Repo.BookingsForLandlord(ctx, e.LandlordID, []booking.Status{booking.StatusPending}, nil)
	if err != nil {
		return dto.PendingBookings{}, fmt.Errorf("analytics: pending bookings: %w", err)
	}
	total := decimal.Zero
	for _, b := range bookings {
		total = total.Add(b.TotalPrice)
	}
	return dto.PendingBookings{
		PendingCount: len(bookings),
		PendingValue: money.Float(total),
	}, nil
}

// MaintenanceCosts totals attributed maintenance cost for the window. A
// qualifying request with no cost source still contributes to the count.
func (e *LandlordEngine) MaintenanceCosts(ctx context.Context, window *daterange.Range) (dto.MaintenanceCosts, error) {
	requests, err := e.Repo.MaintenanceForLandlord(ctx, e.LandlordID)
	if err != nil {
		return dto.MaintenanceCosts{}, fmt.Errorf("analytics: maintenance costs: %w", err)
	}
	total, items := AttributeMaintenanceCosts(requests, window)
	result := dto.MaintenanceCosts{
		TotalCost: money.Float(total),
		Count:     len(items),
	}
	if len(items) > 0 {
		result.AverageCost = money.Float(total.Div(decimal.NewFromInt(int64(len(items)))))
	}
	return result, nil
}

// PropertyExpenses totals operating expenses for the window. TotalExpenses
// covers PropertyExpense records only; the ByCategory breakdown additionally
// lists attributed maintenance cost under "maintenance" for display, and that
// merged view must never feed a total.
func (e *LandlordEngine) PropertyExpenses(ctx context.Context, window *daterange.Range) (dto.PropertyExpenses, error) {
	expenses, err := e.Repo.ExpensesForLandlord(ctx, e.LandlordID, window)
	if err != nil {
		return dto.PropertyExpenses{}, fmt.Errorf("analytics: property expenses: %w", err)
	}
	requests, err := e.Repo.MaintenanceForLandlord(ctx, e.LandlordID)
	if err != nil {
		return dto.PropertyExpenses{}, fmt.Errorf("analytics: property expenses: %w", err)
	}

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, exp := range expenses {
		total = total.Add(exp.Amount)
		byCategory[exp.Category] = byCategory[exp.Category].Add(exp.Amount)
	}

	maintenanceTotal, _ := AttributeMaintenanceCosts(requests, window)
	if !maintenanceTotal.IsZero() {
		byCategory["maintenance"] = byCategory["maintenance"].Add(maintenanceTotal)
	}

	return dto.PropertyExpenses{
		TotalExpenses: money.Float(total),
		Count:         len(expenses),
		ByCategory:    sortedCategories(byCategory),
	}, nil
}

// PropertyPerformance reports per-property income, expenses and net income.
// Unlike the aggregate PropertyExpenses total, the per-property expense figure
// here includes attributed maintenance cost; the asymmetry is intentional.
func (e *LandlordEngine) PropertyPerformance(ctx context.Context) ([]dto.PropertyPerformance, error) {
	properties, err := e.Repo.PropertiesForLandlord(ctx, e.LandlordID)
	if err != nil {
		return nil, fmt.Errorf("analytics: property performance: %w", err)
	}
	bookings, err := e.Repo.BookingsForLandlord(ctx, e.LandlordID, booking.RevenueStatuses, nil)
	if err != nil {
		return nil, fmt.Errorf("analytics: property performance: %w", err)
	}
	expenses, err := e.Repo.ExpensesForLandlord(ctx, e.LandlordID, nil)
	if err != nil {
		return nil, fmt.Errorf("analytics: property performance: %w", err)
	}
	requests, err := e.Repo.MaintenanceForLandlord(ctx, e.LandlordID)
	if err != nil {
		return nil, fmt.Errorf("analytics: property performance: %w", err)
	}

	type tally struct {
		income      decimal.Decimal
		expenses    decimal.Decimal
		maintenance decimal.Decimal
		bookings    int
	}
	tallies := make(map[property.PropertyID]*tally, len(properties))
	for _, p := range properties {
		tallies[p.ID] = &tally{}
	}
	for _, b := range bookings {
		if t, ok := tallies[b.PropertyID]; ok {
			t.income = t.income.Add(b.TotalPrice)
			t.bookings++
		}
	}
	for _, exp := range expenses {
		if t, ok := tallies[exp.PropertyID]; ok {
			t.expenses = t.expenses.Add(exp.Amount)
		}
	}
	_, attributed := AttributeMaintenanceCosts(requests, nil)
	for _, item := range attributed {
		if t, ok := tallies[item.Request.PropertyID]; ok {
			t.maintenance = t.maintenance.Add(item.Amount)
		}
	}

	performance := make([]dto.PropertyPerformance, 0, len(properties))
	for _, p := range properties {
		t := tallies[p.ID]
		totalExpenses := t.expenses.Add(t.maintenance)
		performance = append(performance, dto.PropertyPerformance{
			PropertyID:    string(p.ID),
			PropertyTitle: p.Title,
			City:          p.City,
			Status:        string(p.Status),
			TotalIncome:   money.Float(t.income),
			TotalExpenses: money.Float(totalExpenses),
			NetIncome:     money.Float(t.income.Sub(totalExpenses)),
			BookingCount:  t.bookings,
		})
	}
	return performance, nil
}

// AverageBookingDuration reports the mean stay length in nights over
// confirmed/completed bookings, rounded to 1 decimal; zero bookings yield a
// zero result, never an error.
func (e *LandlordEngine) AverageBookingDuration(ctx context.Context) (dto.AverageBooking, error) {
	bookings, err := e.Repo.BookingsForLandlord(ctx, e.LandlordID, booking.RevenueStatuses, nil)
	if err != nil {
		return dto.AverageBooking{}, fmt.Errorf("analytics: average booking duration: %w", err)
	}
	if len(bookings) == 0 {
		return dto.AverageBooking{}, nil
	}
	totalNights := 0
	for _, b := range bookings {
		totalNights += b.Nights()
	}
	avg := float64(totalNights) / float64(len(bookings))
	return dto.AverageBooking{
		AverageNights: math.Round(avg*10) / 10,
		TotalBookings: len(bookings),
	}, nil
}

// NOI computes net operating income: rental income minus maintenance cost and
// property expenses for the window.
func (e *LandlordEngine) NOI(ctx context.Context, window *daterange.Range) (dto.NOI, error) {
	revenue, err := e.RentalIncome(ctx, window)
	if err != nil {
		return dto.NOI{}, err
	}
	maintenanceCosts, err := e.MaintenanceCosts(ctx, window)
	if err != nil {
		return dto.NOI{}, err
	}
	propertyExpenses, err := e.PropertyExpenses(ctx, window)
	if err != nil {
		return dto.NOI{}, err
	}

	rev := money.FromFloat(revenue)
	maint := money.FromFloat(maintenanceCosts.TotalCost)
	propExp := money.FromFloat(propertyExpenses.TotalExpenses)
	totalExpenses := maint.Add(propExp)

	return dto.NOI{
		NOI:              money.Float(rev.Sub(totalExpenses)),
		Revenue:          money.Float(rev),
		TotalExpenses:    money.Float(totalExpenses),
		MaintenanceCosts: money.Float(maint),
		PropertyExpenses: money.Float(propExp),
	}, nil
}

// TotalProperties counts the landlord's properties by lifecycle status.
func (e *LandlordEngine) TotalProperties(ctx context.Context) (dto.PropertyCounts, error) {
	properties, err := e.Repo.PropertiesForLandlord(ctx, e.LandlordID)
	if err != nil {
		return dto.PropertyCounts{}, fmt.Errorf("analytics: total properties: %w", err)
	}
	counts := dto.PropertyCounts{Total: len(properties)}
	for _, p := range properties {
		switch p.Status {
		case property.StatusApproved:
			counts.Approved++
		case property.StatusPendingApproval:
			counts.Pending++
		case property.StatusDraft:
			counts.Draft++
		}
	}
	return counts, nil
}

// MonthlyCashFlow buckets income and expenses per calendar month from the
// window's first month through its last, in order. Income is bucketed by the
// booking's last-updated timestamp, a proxy for the confirmation event, so a
// later edit to a confirmed booking shifts its counted month. Without a window
// it covers the trailing twelve months ending today.
func (e *LandlordEngine) MonthlyCashFlow(ctx context.Context, window *daterange.Range) ([]dto.MonthlyCashFlow, error) {
	var start, end time.Time
	if window != nil {
		start, end = window.Start, window.End
	} else {
		end = daterange.Day(e.now())
		start = end.AddDate(0, 0, -365)
	}

	bookings, err := e.Repo.BookingsForLandlord(ctx, e.LandlordID, booking.RevenueStatuses, nil)
	if err != nil {
		return nil, fmt.Errorf("analytics: monthly cash flow: %w", err)
	}
	expenses, err := e.Repo.ExpensesForLandlord(ctx, e.LandlordID, nil)
	if err != nil {
		return nil, fmt.Errorf("analytics: monthly cash flow: %w", err)
	}
	requests, err := e.Repo.MaintenanceForLandlord(ctx, e.LandlordID)
	if err != nil {
		return nil, fmt.Errorf("analytics: monthly cash flow: %w", err)
	}

	months := make([]dto.MonthlyCashFlow, 0, 12)
	for cursor := daterange.MonthStart(start); !cursor.After(end); cursor = cursor.AddDate(0, 1, 0) {
		monthEnd := daterange.MonthEnd(cursor)
		if monthEnd.After(end) {
			monthEnd = end
		}
		bucket := daterange.Range{Start: cursor, End: monthEnd}

		income := decimal.Zero
		for _, b := range bookings {
			if bucket.Contains(b.UpdatedAt) {
				income = income.Add(b.TotalPrice)
			}
		}
		expense := decimal.Zero
		for _, exp := range expenses {
			if bucket.Contains(exp.ExpenseDate) {
				expense = expense.Add(exp.Amount)
			}
		}
		maintenanceTotal, _ := AttributeMaintenanceCosts(requests, &bucket)
		totalExpenses := expense.Add(maintenanceTotal)

		months = append(months, dto.MonthlyCashFlow{
			Month:       cursor.Format("Jan 2006"),
			MonthShort:  cursor.Format("Jan"),
			Income:      money.Float(income),
			Expenses:    money.Float(totalExpenses),
			NetCashFlow: money.Float(income.Sub(totalExpenses)),
		})
	}
	return months, nil
}

// AnnualExpensesSummary totals expenses for a calendar year. ByCategory lists
// property-expense categories only; maintenance cost is reported as its own
// figure and folded into the grand total. A zero year means the current year.
func (e *LandlordEngine) AnnualExpensesSummary(ctx context.Context, year int) (dto.AnnualExpenses, error) {
	if year == 0 {
		year = e.now().Year()
	}
	window := daterange.Year(year)

	expenses, err := e.Repo.ExpensesForLandlord(ctx, e.LandlordID, &window)
	if err != nil {
		return dto.AnnualExpenses{}, fmt.Errorf("analytics: annual expenses: %w", err)
	}
	requests, err := e.Repo.MaintenanceForLandlord(ctx, e.LandlordID)
	if err != nil {
		return dto.AnnualExpenses{}, fmt.Errorf("analytics: annual expenses: %w", err)
	}

	propertyTotal := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, exp := range expenses {
		propertyTotal = propertyTotal.Add(exp.Amount)
		byCategory[exp.Category] = byCategory[exp.Category].Add(exp.Amount)
	}
	maintenanceTotal, _ := AttributeMaintenanceCosts(requests, &window)

	return dto.AnnualExpenses{
		Year:             year,
		TotalExpenses:    money.Float(propertyTotal.Add(maintenanceTotal)),
		ByCategory:       sortedCategories(byCategory),
		MaintenanceCosts: money.Float(maintenanceTotal),
		PropertyExpenses: money.Float(propertyTotal),
	}, nil
}

// sortedCategories renders a category map largest-first, names breaking ties.
func sortedCategories(byCategory map[string]decimal.Decimal) []dto.CategoryAmount {
	result := make([]dto.CategoryAmount, 0, len(byCategory))
	for category, amount := range byCategory {
		result = append(result, dto.CategoryAmount{Category: category, Amount: money.Float(amount)})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount != result[j].Amount {
			return result[i].Amount > result[j].Amount
		}
		return result[i].Category < result[j].Category
	})
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
