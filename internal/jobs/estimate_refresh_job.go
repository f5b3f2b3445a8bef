package jobs

import (
	"context"
	"log/slog"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EstimateRefreshJob periodically recomputes completion estimates for all
// uncompleted orders, folding in machine availability changes that happened
// since the last pass.
type EstimateRefreshJob struct {
	handler commands.RecalculateEstimatesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEstimateRefreshJob creates the estimate refresh job. Uses
// RecalculateEstimatesCommandHandler to recompute estimates every minute.
func NewEstimateRefreshJob(
	handler commands.RecalculateEstimatesCommandHandler,
	logger *slog.Logger,
) *EstimateRefreshJob {
	return &EstimateRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "estimate_refresh_job"),
	}
}

// Start begins the estimate refresh job to run at the top of every minute.
func (j *EstimateRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRecalculateEstimatesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Estimate refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Estimate refresh job started (running every minute)")
	return nil
}

// Stop stops the estimate refresh job.
func (j *EstimateRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Estimate refresh job stopped")
}
