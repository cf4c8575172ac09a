package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"propertree/internal/app/analytics"
)

// Snapshot periodically computes platform statistics and logs them, giving
// operators a daily baseline without hitting the dashboard endpoint.
type Snapshot struct {
	cron   *cron.Cron
	engine *analytics.AdminEngine
	logger *slog.Logger
}

// NewSnapshot builds the scheduler around an admin engine.
func NewSnapshot(engine *analytics.AdminEngine, logger *slog.Logger) *Snapshot {
	return &Snapshot{
		cron:   cron.New(),
		engine: engine,
		logger: logger,
	}
}

// Start registers the snapshot job with the given cron spec and launches the
// scheduler.
func (s *Snapshot) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the scheduler; running jobs finish on their own.
func (s *Snapshot) Stop() {
	s.cron.Stop()
}

func (s *Snapshot) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stats, err := s.engine.PlatformStatistics(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("platform snapshot failed", "error", err)
		}
		return
	}
	tickets, err := s.engine.OpenMaintenanceTickets(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("platform snapshot failed", "error", err)
		}
		return
	}
	if s.logger != nil {
		s.logger.Info("platform snapshot",
			"users", stats.TotalUsers,
			"properties", stats.TotalProperties,
			"active_properties", stats.ActiveProperties,
			"bookings", stats.TotalBookings,
			"active_bookings", stats.ActiveBookings,
			"open_tickets", tickets,
		)
	}
}
