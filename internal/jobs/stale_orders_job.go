package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrdersJob periodically cancels pending orders that were never moved
// into fulfillment, releasing the stock they still hold.
type StaleOrdersJob struct {
	handler commands.ReleaseStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrdersJob creates a job that cancels pending orders older than maxAge.
func NewStaleOrdersJob(
	handler commands.ReleaseStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrdersJob {
	return &StaleOrdersJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_orders_job"),
	}
}

// Start begins the stale order sweep, running once a minute.
func (j *StaleOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReleaseStaleOrdersCommand(time.Now().UTC().Add(-j.maxAge))
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale orders job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale orders job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale orders job started (running every minute)")
	return nil
}

// Stop stops the stale order sweep.
func (j *StaleOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale orders job stopped")
}
