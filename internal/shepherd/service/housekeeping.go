package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
)

// DefaultHousekeepingSchedule is used when no schedule is configured.
const DefaultHousekeepingSchedule = "@every 5m"

// HousekeepingService moves events through their lifecycle on a cron
// schedule: scheduled events whose window contains now become in-progress,
// and anything that has ended becomes completed.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Schedule string

	// Now defaults to time.Now.
	Now func() time.Time

	cron *cron.Cron
}

// NewHousekeepingService creates a housekeeping service. An empty schedule
// defaults to DefaultHousekeepingSchedule.
func NewHousekeepingService(store store.Store, logger *slog.Logger, schedule string) *HousekeepingService {
	if schedule == "" {
		schedule = DefaultHousekeepingSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Schedule: schedule,
		cron:     cron.New(),
	}
}

// Start runs one pass immediately and then registers the cron entry. It
// fails only if the schedule cannot be parsed.
func (s *HousekeepingService) Start() error {
	if _, err := s.cron.AddFunc(s.Schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return err
	}
	s.RunOnce(context.Background())
	s.cron.Start()
	s.Logger.Info("housekeeping service started", slog.String("schedule", s.Schedule))
	return nil
}

// Stop waits for a running pass to finish.
func (s *HousekeepingService) Stop() {
	<-s.cron.Stop().Done()
	s.Logger.Info("housekeeping service stopped")
}

// RunOnce advances event statuses once. Failures are logged, not returned.
func (s *HousekeepingService) RunOnce(ctx context.Context) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	started, completed, err := s.Store.Events().AdvanceStatuses(ctx, now)
	if err != nil {
		s.Logger.Error("failed to advance event statuses", slog.Any("error", err))
		return
	}
	s.Logger.Debug("housekeeping completed",
		slog.Int64("events_started", started),
		slog.Int64("events_completed", completed),
	)
}
