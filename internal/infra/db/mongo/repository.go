package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"propertree/internal/app/analytics"
	"propertree/internal/domain/booking"
	"propertree/internal/domain/maintenance"
	"propertree/internal/domain/property"
	"propertree/internal/domain/shared/daterange"
)

// Repository implements the analytics read port on MongoDB. Documents
// denormalize landlord_id so landlord-scoped queries need no join; amounts are
// stored as decimal strings to keep them exact.
type Repository struct {
	properties  *mongo.Collection
	bookings    *mongo.Collection
	maintenance *mongo.Collection
	expenses    *mongo.Collection
	payments    *mongo.Collection
	users       *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		properties:  db.Collection("properties"),
		bookings:    db.Collection("bookings"),
		maintenance: db.Collection("maintenance_requests"),
		expenses:    db.Collection("property_expenses"),
		payments:    db.Collection("payments"),
		users:       db.Collection("users"),
	}
}

func (r *Repository) PropertiesForLandlord(ctx context.Context, landlordID string, statuses ...property.Status) ([]property.Property, error) {
	filter := bson.M{"landlord_id": landlordID}
	applyStatusFilter(filter, propertyStatusStrings(statuses))
	return r.findProperties(ctx, filter)
}

func (r *Repository) Properties(ctx context.Context, statuses ...property.Status) ([]property.Property, error) {
	filter := bson.M{}
	applyStatusFilter(filter, propertyStatusStrings(statuses))
	return r.findProperties(ctx, filter)
}

func (r *Repository) BookingsForLandlord(ctx context.Context, landlordID string, statuses []booking.Status, overlap *daterange.Range) ([]booking.Booking, error) {
	filter := bson.M{"landlord_id": landlordID}
	applyStatusFilter(filter, bookingStatusStrings(statuses))
	if overlap != nil {
		filter["check_in"] = bson.M{"$lte": overlap.End.UnixMilli()}
		filter["check_out"] = bson.M{"$gte": overlap.Start.UnixMilli()}
	}
	return r.findBookings(ctx, filter)
}

func (r *Repository) Bookings(ctx context.Context, statuses ...booking.Status) ([]booking.Booking, error) {
	filter := bson.M{}
	applyStatusFilter(filter, bookingStatusStrings(statuses))
	return r.findBookings(ctx, filter)
}

func (r *Repository) MaintenanceForLandlord(ctx context.Context, landlordID string) ([]maintenance.Request, error) {
	return r.findMaintenance(ctx, bson.M{"landlord_id": landlordID})
}

func (r *Repository) Maintenance(ctx context.Context) ([]maintenance.Request, error) {
	return r.findMaintenance(ctx, bson.M{})
}

func (r *Repository) ExpensesForLandlord(ctx context.Context, landlordID string, window *daterange.Range) ([]property.Expense, error) {
	filter := bson.M{"landlord_id": landlordID}
	if window != nil {
		filter["expense_date"] = bson.M{
			"$gte": window.Start.UnixMilli(),
			"$lte": window.End.UnixMilli(),
		}
	}
	cursor, err := r.expenses.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: find expenses: %w", err)
	}
	var docs []expenseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode expenses: %w", err)
	}
	result := make([]property.Expense, 0, len(docs))
	for _, doc := range docs {
		exp, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		result = append(result, exp)
	}
	return result, nil
}

func (r *Repository) UserCounts(ctx context.Context) (analytics.UserCounts, error) {
	total, err := r.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return analytics.UserCounts{}, fmt.Errorf("mongo: count users: %w", err)
	}
	landlords, err := r.users.CountDocuments(ctx, bson.M{"role": "landlord"})
	if err != nil {
		return analytics.UserCounts{}, fmt.Errorf("mongo: count landlords: %w", err)
	}
	tenants, err := r.users.CountDocuments(ctx, bson.M{"role": "tenant"})
	if err != nil {
		return analytics.UserCounts{}, fmt.Errorf("mongo: count tenants: %w", err)
	}
	return analytics.UserCounts{
		Total:     int(total),
		Landlords: int(landlords),
		Tenants:   int(tenants),
	}, nil
}

func (r *Repository) CompletedPaymentsTotal(ctx context.Context) (decimal.Decimal, error) {
	cursor, err := r.payments.Find(ctx, bson.M{"status": booking.PaymentCompleted})
	if err != nil {
		return decimal.Zero, fmt.Errorf("mongo: find payments: %w", err)
	}
	var docs []paymentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return decimal.Zero, fmt.Errorf("mongo: decode payments: %w", err)
	}
	total := decimal.Zero
	for _, doc := range docs {
		amount, err := decimal.NewFromString(doc.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("mongo: payment %s amount: %w", doc.ID, err)
		}
		total = total.Add(amount)
	}
	return total, nil
}

func (r *Repository) findProperties(ctx context.Context, filter bson.M) ([]property.Property, error) {
	cursor, err := r.properties.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: find properties: %w", err)
	}
	var docs []propertyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode properties: %w", err)
	}
	result := make([]property.Property, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

func (r *Repository) findBookings(ctx context.Context, filter bson.M) ([]booking.Booking, error) {
	cursor, err := r.bookings.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: find bookings: %w", err)
	}
	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode bookings: %w", err)
	}
	result := make([]booking.Booking, 0, len(docs))
	for _, doc := range docs {
		b, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *Repository) findMaintenance(ctx context.Context, filter bson.M) ([]maintenance.Request, error) {
	cursor, err := r.maintenance.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: find maintenance: %w", err)
	}
	var docs []maintenanceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo: decode maintenance: %w", err)
	}
	result := make([]maintenance.Request, 0, len(docs))
	for _, doc := range docs {
		req, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, nil
}

func applyStatusFilter(filter bson.M, statuses []string) {
	if len(statuses) == 1 {
		filter["status"] = statuses[0]
	} else if len(statuses) > 1 {
		filter["status"] = bson.M{"$in": statuses}
	}
}

func propertyStatusStrings(statuses []property.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func bookingStatusStrings(statuses []booking.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

type propertyDocument struct {
	ID           string `bson:"_id"`
	LandlordID   string `bson:"landlord_id"`
	Title        string `bson:"title"`
	City         string `bson:"city"`
	PropertyType string `bson:"property_type"`
	Status       string `bson:"status"`
	NightlyPrice string `bson:"nightly_price"`
	CreatedAt    int64  `bson:"created_at"`
}

func (d propertyDocument) toEntity() (property.Property, error) {
	price, err := decimal.NewFromString(d.NightlyPrice)
	if err != nil {
		return property.Property{}, fmt.Errorf("mongo: property %s nightly price: %w", d.ID, err)
	}
	return property.Property{
		ID:           property.PropertyID(d.ID),
		LandlordID:   d.LandlordID,
		Title:        d.Title,
		City:         d.City,
		PropertyType: d.PropertyType,
		Status:       property.Status(d.Status),
		NightlyPrice: price,
		CreatedAt:    timestampToTime(d.CreatedAt),
	}, nil
}

type bookingDocument struct {
	ID         string `bson:"_id"`
	PropertyID string `bson:"property_id"`
	LandlordID string `bson:"landlord_id"`
	TenantID   string `bson:"tenant_id"`
	CheckIn    int64  `bson:"check_in"`
	CheckOut   int64  `bson:"check_out"`
	Status     string `bson:"status"`
	TotalPrice string `bson:"total_price"`
	UpdatedAt  int64  `bson:"updated_at"`
}

func (d bookingDocument) toEntity() (booking.Booking, error) {
	total, err := decimal.NewFromString(d.TotalPrice)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("mongo: booking %s total price: %w", d.ID, err)
	}
	return booking.Booking{
		ID:         booking.BookingID(d.ID),
		PropertyID: property.PropertyID(d.PropertyID),
		TenantID:   d.TenantID,
		CheckIn:    timestampToTime(d.CheckIn),
		CheckOut:   timestampToTime(d.CheckOut),
		Status:     booking.Status(d.Status),
		TotalPrice: total,
		UpdatedAt:  timestampToTime(d.UpdatedAt),
	}, nil
}

type maintenanceDocument struct {
	ID               string  `bson:"_id"`
	PropertyID       string  `bson:"property_id"`
	LandlordID       string  `bson:"landlord_id"`
	Status           string  `bson:"status"`
	Cost             *string `bson:"cost,omitempty"`
	CatalogID        string  `bson:"catalog_id,omitempty"`
	CatalogCategory  string  `bson:"catalog_category,omitempty"`
	CatalogPrice     *string `bson:"catalog_price,omitempty"`
	ReportedAt       int64   `bson:"reported_at"`
	ResolvedAt       *int64  `bson:"resolved_at,omitempty"`
	AdminConfirmedAt *int64  `bson:"admin_confirmed_at,omitempty"`
}

func (d maintenanceDocument) toEntity() (maintenance.Request, error) {
	req := maintenance.Request{
		ID:         maintenance.RequestID(d.ID),
		PropertyID: property.PropertyID(d.PropertyID),
		Status:     maintenance.Status(d.Status),
		ReportedAt: timestampToTime(d.ReportedAt),
	}
	if d.Cost != nil {
		cost, err := decimal.NewFromString(*d.Cost)
		if err != nil {
			return maintenance.Request{}, fmt.Errorf("mongo: request %s cost: %w", d.ID, err)
		}
		req.Cost = &cost
	}
	if d.CatalogPrice != nil {
		price, err := decimal.NewFromString(*d.CatalogPrice)
		if err != nil {
			return maintenance.Request{}, fmt.Errorf("mongo: request %s catalog price: %w", d.ID, err)
		}
		req.Catalog = &maintenance.ServiceCatalog{
			ID:       d.CatalogID,
			Category: d.CatalogCategory,
			Price:    price,
		}
	}
	if d.ResolvedAt != nil {
		t := timestampToTime(*d.ResolvedAt)
		req.ResolvedAt = &t
	}
	if d.AdminConfirmedAt != nil {
		t := timestampToTime(*d.AdminConfirmedAt)
		req.AdminConfirmedAt = &t
	}
	return req, nil
}

type expenseDocument struct {
	ID          string `bson:"_id"`
	PropertyID  string `bson:"property_id"`
	LandlordID  string `bson:"landlord_id"`
	Category    string `bson:"category"`
	Amount      string `bson:"amount"`
	ExpenseDate int64  `bson:"expense_date"`
}

func (d expenseDocument) toEntity() (property.Expense, error) {
	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return property.Expense{}, fmt.Errorf("mongo: expense %s amount: %w", d.ID, err)
	}
	return property.Expense{
		ID:          property.ExpenseID(d.ID),
		PropertyID:  property.PropertyID(d.PropertyID),
		Category:    d.Category,
		Amount:      amount,
		ExpenseDate: timestampToTime(d.ExpenseDate),
	}, nil
}

type paymentDocument struct {
	ID        string `bson:"_id"`
	BookingID string `bson:"booking_id"`
	Amount    string `bson:"amount"`
	Status    string `bson:"status"`
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

var _ analytics.Repository = (*Repository)(nil)
