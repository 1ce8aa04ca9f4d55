// Package jobs provides scheduled background tasks for the coordination service.
//
// Jobs are cron-driven (github.com/robfig/cron/v3) and managed through
// JobManager, which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(staleOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StaleOrderWatchJob runs every minute and logs orders that have sat
// unaccepted longer than a threshold. It only observes and reports; it never
// mutates order state.
package jobs
