// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipping service.
//
// # Available Jobs
//
// 1. OverduePickupJob - Runs every minute to detect confirmed or in-progress
// pickups that slipped past their scheduled date by more than the SLA
// threshold and report the breach.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueHandler, clock, logger)
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
// The overdue pickup job uses the cron expression "* * * * *", running once a
// minute. The SLA threshold is two hours, so minute granularity detects
// breaches well within operational tolerance.
//
// # Error Handling
//
// Query failures are logged and the tick is skipped; each detected breach is
// logged at warning level with the pickup and guide identifiers.
package jobs
