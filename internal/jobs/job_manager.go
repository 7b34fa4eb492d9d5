package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	offerReconciliationJob *OfferReconciliationJob
}

// NewJobManager creates the job manager. reconcileSchedule may be empty to use
// DefaultReconcileSchedule.
func NewJobManager(finder driftFinder, reconcileSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		offerReconciliationJob: NewOfferReconciliationJob(finder, reconcileSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.offerReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start offer reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.offerReconciliationJob.Stop()
}
