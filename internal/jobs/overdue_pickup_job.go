package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverduePickupJob watches for confirmed or in-progress pickups that slipped
// past their scheduled date by more than the SLA threshold. Runs every minute
// and reports each breach so operations can intervene.
type OverduePickupJob struct {
	handler queries.GetOverduePickupsQueryHandler
	clock   ports.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverduePickupJob creates a job for overdue pickup detection.
func NewOverduePickupJob(handler queries.GetOverduePickupsQueryHandler,
	clock ports.Clock, logger *slog.Logger) *OverduePickupJob {
	return &OverduePickupJob{
		handler: handler,
		clock:   clock,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_pickup_job"),
	}
}

// Start begins the overdue pickup job to run every minute.
func (j *OverduePickupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOverduePickupsQuery(j.clock.Now())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Overdue pickup query construction failed", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue pickup job failed", "error", handleErr)
			return
		}

		for _, breach := range overdue {
			j.logger.WarnContext(ctx, "Pickup past collection SLA",
				"pickup_id", breach.ID.String(),
				"guide_id", breach.GuideID.String(),
				"status", breach.Status,
				"scheduled_date", breach.ScheduledDate,
				"overdue_by", breach.OverdueBy.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue pickup job started (running every minute)")
	return nil
}

// Stop stops the overdue pickup job.
func (j *OverduePickupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue pickup job stopped")
}
