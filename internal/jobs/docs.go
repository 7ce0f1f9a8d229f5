// Package jobs provides scheduled background tasks for the pizzeria.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order board.
//
// # Available Jobs
//
// 1. BoardRefreshJob - Periodically re-reads the order registry and logs a
// board summary so operators see current state even without traffic
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getAllOrdersHandler, "*/5 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job takes a seconds-resolution cron spec from configuration;
// the default "*/5 * * * * *" runs it every five seconds.
//
// # Error Handling
//
// - Refresh failures are logged and the next tick retries from scratch
// - A failed job start aborts StartAll with a wrapped error
package jobs
