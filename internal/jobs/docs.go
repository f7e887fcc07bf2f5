// Package jobs provides scheduled background tasks for the shipment
// tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance work.
//
// # Available Jobs
//
// 1. SessionPurgeJob - Runs hourly to delete expired session tokens
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(sessionStore, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Purge failures are logged and retried on the next tick; an expired
// session that outlives a failed purge is still rejected at resolution
// time, so the job is purely housekeeping.
package jobs
