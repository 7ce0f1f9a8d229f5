package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BoardRefreshJob periodically re-reads the order registry and logs a
// compact summary of the board. It keeps the kitchen display current even
// when no mutation has pushed a notification, e.g. after a restart that
// reloaded orders from the store.
type BoardRefreshJob struct {
	handler queries.GetAllOrdersQueryHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBoardRefreshJob creates a job refreshing the board on the given cron
// spec (seconds-resolution, e.g. "*/5 * * * * *").
func NewBoardRefreshJob(handler queries.GetAllOrdersQueryHandler, spec string, logger *slog.Logger) *BoardRefreshJob {
	return &BoardRefreshJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "board_refresh_job"),
	}
}

// Start begins the periodic board refresh.
func (j *BoardRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		query := queries.NewGetAllOrdersQuery()

		views, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Board refresh job failed", "error", err)
			return
		}

		active := 0
		for _, view := range views {
			if !view.Terminal {
				active++
			}
		}
		j.logger.InfoContext(ctx, "Board refreshed", "orders", len(views), "active", active)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the board refresh job.
func (j *BoardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board refresh job stopped")
}
