package dto

// Result records for the report engines. Each operation returns a fixed,
// named-field payload; amounts are rounded to 2 decimal places by the engine
// before they land here.

type PendingBookings struct {
	PendingCount int     `json:"pending_count"`
	PendingValue float64 `json:"pending_value"`
}

type MaintenanceCosts struct {
	TotalCost   float64 `json:"total_cost"`
	Count       int     `json:"count"`
	AverageCost float64 `json:"average_cost"`
}

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type PropertyExpenses struct {
	TotalExpenses float64          `json:"total_expenses"`
	Count         int              `json:"count"`
	ByCategory    []CategoryAmount `json:"by_category"`
}

type PropertyPerformance struct {
	PropertyID    string  `json:"property_id"`
	PropertyTitle string  `json:"property_title"`
	City          string  `json:"city"`
	Status        string  `json:"status"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetIncome     float64 `json:"net_income"`
	BookingCount  int     `json:"booking_count"`
}

type AverageBooking struct {
	AverageNights float64 `json:"average_nights"`
	TotalBookings int     `json:"total_bookings"`
}

type NOI struct {
	NOI              float64 `json:"noi"`
	Revenue          float64 `json:"revenue"`
	TotalExpenses    float64 `json:"total_expenses"`
	MaintenanceCosts float64 `json:"maintenance_costs"`
	PropertyExpenses float64 `json:"property_expenses"`
}

// PropertyCounts keeps the legacy "booked" key: the status was dropped when
// availability became date-based, but dashboard clients still read the field.
type PropertyCounts struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Booked   int `json:"booked"`
	Pending  int `json:"pending"`
	Draft    int `json:"draft"`
}

type MonthlyCashFlow struct {
	Month       string  `json:"month"`
	MonthShort  string  `json:"month_short"`
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	NetCashFlow float64 `json:"net_cash_flow"`
}

type AnnualExpenses struct {
	Year             int              `json:"year"`
	TotalExpenses    float64          `json:"total_expenses"`
	ByCategory       []CategoryAmount `json:"by_category"`
	MaintenanceCosts float64          `json:"maintenance_costs"`
	PropertyExpenses float64          `json:"property_expenses"`
}

type PlatformStatistics struct {
	TotalUsers       int `json:"total_users"`
	TotalLandlords   int `json:"total_landlords"`
	TotalTenants     int `json:"total_tenants"`
	TotalProperties  int `json:"total_properties"`
	ActiveProperties int `json:"active_properties"`
	TotalBookings    int `json:"total_bookings"`
	ActiveBookings   int `json:"active_bookings"`
}

type CountBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type PropertyBreakdown struct {
	ByType   []CountBucket `json:"by_type"`
	ByStatus []CountBucket `json:"by_status"`
	ByCity   []CountBucket `json:"by_city"`
}

type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type LandlordDashboard struct {
	Properties          PropertyCounts        `json:"properties"`
	OccupancyRate       float64               `json:"occupancy_rate"`
	RentalIncome        float64               `json:"rental_income"`
	PendingBookings     PendingBookings       `json:"pending_bookings"`
	MaintenanceCosts    MaintenanceCosts      `json:"maintenance_costs"`
	PropertyExpenses    PropertyExpenses      `json:"property_expenses"`
	AverageBooking      AverageBooking        `json:"average_booking"`
	NOI                 NOI                   `json:"noi"`
	PropertyPerformance []PropertyPerformance `json:"property_performance"`
	MonthlyCashFlow     []MonthlyCashFlow     `json:"monthly_cash_flow"`
	AnnualExpenses      AnnualExpenses        `json:"annual_expenses"`
	DateRange           DateRange             `json:"date_range"`
}

type AdminDashboard struct {
	OpenMaintenanceTickets int                `json:"open_maintenance_tickets"`
	AverageResolutionTime  float64            `json:"average_resolution_time"`
	OccupancyRatio         float64            `json:"occupancy_ratio"`
	RentCollectionRate     float64            `json:"rent_collection_rate"`
	PlatformStatistics     PlatformStatistics `json:"platform_statistics"`
	PropertyBreakdown      PropertyBreakdown  `json:"property_breakdown"`
}
