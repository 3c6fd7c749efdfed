// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. StuckOrderReportJob - Runs every minute to report orders whose fulfillment has stalled
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(orderRepository, stuckThreshold, logger)
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
// The report job uses the cron expression "0 * * * * *" which means it runs
// once a minute. Stalled fulfillment is an operational signal, not a
// real-time one, so a minute of latency is acceptable.
//
// # Error Handling
//
// The report job is read-only and never mutates orders; query failures are
// logged and the next tick retries from scratch.
package jobs
