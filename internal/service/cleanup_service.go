package service

import (
	"context"
	"time"

	"github.com/vital110/doctor-portal-backend/internal/repository"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/rs/zerolog"
)

// CleanupService periodically deletes appointments dated before today.
// It keeps no state between sweeps; a restart simply waits for the next
// tick.
type CleanupService struct {
	appointmentRepo *repository.AppointmentRepository
	clock           utils.Clock
	interval        time.Duration
	logger          zerolog.Logger
}

func NewCleanupService(
	appointmentRepo *repository.AppointmentRepository,
	clock utils.Clock,
	interval time.Duration,
	logger zerolog.Logger,
) *CleanupService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CleanupService{
		appointmentRepo: appointmentRepo,
		clock:           clock,
		interval:        interval,
		logger:          logger.With().Str("component", "cleanup").Logger(),
	}
}

// Start runs a sweep every interval until ctx is cancelled
func (w *CleanupService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("appointment cleanup started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("appointment cleanup stopped")
			return
		case <-ticker.C:
			if _, err := w.RunOnce(ctx); err != nil && ctx.Err() == nil {
				w.logger.Error().Err(err).Msg("appointment cleanup failed")
			}
		}
	}
}

// Cutoff is the first calendar day whose appointments survive a sweep
func (w *CleanupService) Cutoff() time.Time {
	return w.clock.Today()
}

// RunOnce deletes every appointment dated before today and returns how many
// were removed
func (w *CleanupService) RunOnce(ctx context.Context) (int64, error) {
	cutoff := w.Cutoff()
	deleted, err := w.appointmentRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	w.logger.Info().
		Int64("deleted", deleted).
		Str("cutoff", utils.FormatDate(cutoff)).
		Msg("old appointments cleaned up")
	return deleted, nil
}
