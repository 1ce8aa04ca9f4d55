package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fooddelivery/internal/core/application/usecases/queries"
)

// staleOrderThreshold is how long an order may sit in the newly-placed state
// before the watch job reports it.
const staleOrderThreshold = 15 * time.Minute

// StaleOrderWatchJob periodically reports orders that nobody has accepted.
// Runs every minute and logs each stale order so operators can chase the
// restaurant before the customer does.
type StaleOrderWatchJob struct {
	handler queries.GetStaleOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderWatchJob creates a job that watches for unaccepted orders.
func NewStaleOrderWatchJob(handler queries.GetStaleOrdersQueryHandler, logger *slog.Logger) *StaleOrderWatchJob {
	return &StaleOrderWatchJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With(slog.String("component", "stale_order_watch_job")),
	}
}

// Start begins the watch job, running once a minute.
func (j *StaleOrderWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetStaleOrdersQuery(staleOrderThreshold)
		if err != nil {
			j.logger.ErrorContext(ctx, "stale order watch failed to build query", slog.Any("error", err))
			return
		}

		stale, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "stale order watch failed", slog.Any("error", err))
			return
		}

		for _, ord := range stale {
			j.logger.WarnContext(ctx, "order awaiting acceptance",
				slog.Int64("orderId", ord.ID.Int64()),
				slog.Int64("restaurantId", ord.RestaurantID.Int64()),
				slog.Time("createdAt", ord.CreatedAt),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order watch job started (running every minute)")
	return nil
}

// Stop stops the watch job.
func (j *StaleOrderWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order watch job stopped")
}
