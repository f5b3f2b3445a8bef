// Package jobs provides scheduled background tasks for the laundry system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the laundry service.
//
// # Available Jobs
//
// 1. EstimateRefreshJob - Runs every minute to recompute completion estimates
// for uncompleted orders against the current machine park.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(recalculateEstimatesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Estimate refresh failures are logged and retried on the next tick; a
// single failed pass only delays estimate updates, it never corrupts order
// state.
package jobs
