// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the request path cannot cover.
//
// # Available Jobs
//
// 1. StaleOrdersJob - Runs every minute to cancel pending orders older than
// the configured maximum age and return their stock reservations.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(releaseStaleOrdersHandler, maxAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and retried on the next tick; a sweep that finds
// nothing to cancel is not an error.
package jobs
