package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"propertree/internal/app/analytics"
	"propertree/internal/app/schedule"
	"propertree/internal/domain/booking"
	"propertree/internal/domain/maintenance"
	"propertree/internal/domain/property"
	"propertree/internal/domain/shared/money"
	"propertree/internal/infra/config"
	mongodb "propertree/internal/infra/db/mongo"
	ginserver "propertree/internal/infra/http/gin"
	"propertree/internal/infra/obs"
	"propertree/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	repo, ready, err := buildRepository(ctx, cfg, logger)
	if err != nil {
		logger.Error("repository init failed", "error", err)
		os.Exit(1)
	}

	assembler := analytics.NewAssembler(repo)
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: ready,
	}, ginserver.Handlers{
		Dashboard: ginserver.DashboardHandler{
			Assembler: assembler,
			Logger:    logger,
		},
		AuthMiddleware: ginserver.GatewayAuth(),
	})

	snapshot := schedule.NewSnapshot(analytics.NewAdminEngine(repo), logger)
	if err := snapshot.Start(cfg.SnapshotCron); err != nil {
		logger.Warn("snapshot schedule invalid, job disabled", "spec", cfg.SnapshotCron, "error", err)
	}
	defer snapshot.Stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.Storage)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func buildRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (analytics.Repository, func() error, error) {
	if cfg.Storage == "mongo" {
		client, err := mongodb.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		ready := func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}
		return mongodb.NewRepository(client.DB), ready, nil
	}

	repo := memory.NewRepository()
	path := cfg.FixturesPath
	if path == "" {
		path = defaultFixturesPath()
	}
	if err := loadFixtures(repo, path, logger); err != nil {
		logger.Warn("analytics fixtures load failed", "error", err, "path", path)
	}
	return repo, func() error { return nil }, nil
}

func loadFixtures(repo *memory.Repository, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("analytics fixtures file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read fixtures: %w", err)
	}
	if len(data) == 0 {
		logger.Warn("analytics fixtures file empty", "path", path)
		return nil
	}

	var fx fixtureSet
	if err := json.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	for _, f := range fx.Users {
		repo.SeedUser(f.ID, f.Role)
	}
	for _, f := range fx.Properties {
		created, err := parseFixtureDate(f.CreatedAt)
		if err != nil {
			logger.Error("property fixture invalid", "id", f.ID, "error", err)
			continue
		}
		repo.SeedProperties(property.Property{
			ID:           property.PropertyID(f.ID),
			LandlordID:   f.LandlordID,
			Title:        f.Title,
			City:         f.City,
			PropertyType: f.PropertyType,
			Status:       property.Status(f.Status),
			NightlyPrice: money.FromFloat(f.NightlyPrice),
			CreatedAt:    created,
		})
	}
	for _, f := range fx.Bookings {
		checkIn, err := parseFixtureDate(f.CheckIn)
		if err != nil {
			logger.Error("booking fixture invalid", "id", f.ID, "error", err)
			continue
		}
		checkOut, err := parseFixtureDate(f.CheckOut)
		if err != nil {
			logger.Error("booking fixture invalid", "id", f.ID, "error", err)
			continue
		}
		updated, err := parseFixtureDate(f.UpdatedAt)
		if err != nil {
			logger.Error("booking fixture invalid", "id", f.ID, "error", err)
			continue
		}
		repo.SeedBookings(booking.Booking{
			ID:         booking.BookingID(f.ID),
			PropertyID: property.PropertyID(f.PropertyID),
			TenantID:   f.TenantID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Status:     booking.Status(f.Status),
			TotalPrice: money.FromFloat(f.TotalPrice),
			UpdatedAt:  updated,
		})
	}
	for _, f := range fx.Maintenance {
		req, err := f.toEntity()
		if err != nil {
			logger.Error("maintenance fixture invalid", "id", f.ID, "error", err)
			continue
		}
		repo.SeedMaintenance(req)
	}
	for _, f := range fx.Expenses {
		date, err := parseFixtureDate(f.ExpenseDate)
		if err != nil {
			logger.Error("expense fixture invalid", "id", f.ID, "error", err)
			continue
		}
		repo.SeedExpenses(property.Expense{
			ID:          property.ExpenseID(f.ID),
			PropertyID:  property.PropertyID(f.PropertyID),
			Category:    f.Category,
			Amount:      money.FromFloat(f.Amount),
			ExpenseDate: date,
		})
	}
	for _, f := range fx.Payments {
		repo.SeedPayments(booking.Payment{
			ID:        f.ID,
			BookingID: booking.BookingID(f.BookingID),
			Amount:    money.FromFloat(f.Amount),
			Status:    f.Status,
		})
	}
	logger.Info("analytics fixtures imported",
		"properties", len(fx.Properties),
		"bookings", len(fx.Bookings),
		"maintenance", len(fx.Maintenance),
		"expenses", len(fx.Expenses),
	)
	return nil
}

type fixtureSet struct {
	Users       []userFixture        `json:"users"`
	Properties  []propertyFixture    `json:"properties"`
	Bookings    []bookingFixture     `json:"bookings"`
	Maintenance []maintenanceFixture `json:"maintenance"`
	Expenses    []expenseFixture     `json:"expenses"`
	Payments    []paymentFixture     `json:"payments"`
}

type userFixture struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type propertyFixture struct {
	ID           string  `json:"id"`
	LandlordID   string  `json:"landlord_id"`
	Title        string  `json:"title"`
	City         string  `json:"city"`
	PropertyType string  `json:"property_type"`
	Status       string  `json:"status"`
	NightlyPrice float64 `json:"nightly_price"`
	CreatedAt    string  `json:"created_at"`
}

type bookingFixture struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"property_id"`
	TenantID   string  `json:"tenant_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	UpdatedAt  string  `json:"updated_at"`
}

type maintenanceFixture struct {
	ID               string   `json:"id"`
	PropertyID       string   `json:"property_id"`
	Status           string   `json:"status"`
	Cost             *float64 `json:"cost"`
	CatalogID        string   `json:"catalog_id"`
	CatalogCategory  string   `json:"catalog_category"`
	CatalogPrice     *float64 `json:"catalog_price"`
	ReportedAt       string   `json:"reported_at"`
	ResolvedAt       string   `json:"resolved_at"`
	AdminConfirmedAt string   `json:"admin_confirmed_at"`
}

func (f maintenanceFixture) toEntity() (maintenance.Request, error) {
	reported, err := parseFixtureDate(f.ReportedAt)
	if err != nil {
		return maintenance.Request{}, err
	}
	req := maintenance.Request{
		ID:         maintenance.RequestID(f.ID),
		PropertyID: property.PropertyID(f.PropertyID),
		Status:     maintenance.Status(f.Status),
		ReportedAt: reported,
	}
	if f.Cost != nil {
		cost := money.FromFloat(*f.Cost)
		req.Cost = &cost
	}
	if f.CatalogPrice != nil {
		req.Catalog = &maintenance.ServiceCatalog{
			ID:       f.CatalogID,
			Category: f.CatalogCategory,
			Price:    money.FromFloat(*f.CatalogPrice),
		}
	}
	if f.ResolvedAt != "" {
		t, err := parseFixtureDate(f.ResolvedAt)
		if err != nil {
			return maintenance.Request{}, err
		}
		req.ResolvedAt = &t
	}
	if f.AdminConfirmedAt != "" {
		t, err := parseFixtureDate(f.AdminConfirmedAt)
		if err != nil {
			return maintenance.Request{}, err
		}
		req.AdminConfirmedAt = &t
	}
	return req, nil
}

type expenseFixture struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"property_id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expense_date"`
}

type paymentFixture struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

func parseFixtureDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func defaultFixturesPath() string {
	return filepath.Join("data", "analytics.json")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
