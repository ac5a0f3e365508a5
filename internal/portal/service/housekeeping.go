package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/northbeamhq/portal/internal/portal/store"
)

// HousekeepingService periodically sweeps pending invitations past their
// deadline into the expired state. The validate read path already does this
// lazily for tokens that get presented; the sweep covers invitations nobody
// ever clicks so listings stay honest.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs the sweep.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a sweep immediately on startup
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep flips every overdue pending invitation to expired. Expired rows are
// kept, not deleted: terminal invitations are historical records.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()

	flipped, err := s.Store.Invitations().MarkExpiredInvitations(ctx, time.Now())
	if err != nil {
		s.Logger.Error("failed to mark expired invitations", "error", err)
		return
	}
	if flipped > 0 {
		s.Logger.Info("housekeeping sweep completed", "expired", flipped)
	}
}
