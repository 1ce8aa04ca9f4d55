package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderWatchJob *StaleOrderWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	staleOrdersHandler queries.GetStaleOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderWatchJob: NewStaleOrderWatchJob(staleOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order watch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderWatchJob.Stop()
}
