// Package jobs provides scheduled background tasks for the dealership back office.
//
// Jobs are built on github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// OfferReconciliationJob compares every offer status with the orders that
// reference it. An offer is expected to be sold when a completed order points at
// it, reserved when a pending or confirmed order does, and available otherwise.
// Each mismatch is logged at WARN level with the offer id, its current status and
// the expected one. Nothing is changed automatically.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(driftHandler, cfg.ReconcileSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The default schedule "0 */5 * * * *" runs at second zero of every fifth minute.
// RECONCILE_SCHEDULE overrides it.
package jobs
