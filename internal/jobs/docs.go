// Package jobs provides scheduled background tasks for the rental system.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled).
//
// # Available Jobs
//
// 1. ReconciliationJob - Periodically repairs vehicle and driver statuses
// that drifted from their orders, for example after a partial failure that
// nobody retried.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Config{ReconcileSpec: "0 */5 * * * *"}, reconcileHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run that fails is logged and counted; the next tick tries again. A
// partial failure still records the repairs that went through.
package jobs
