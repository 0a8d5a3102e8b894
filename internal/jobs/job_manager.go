package jobs

import (
	"fmt"

	"github.com/rs/zerolog"
)

type Config struct {
	// ReconcileSpec is a six-field cron expression. Empty uses
	// DefaultReconcileSpec; "off" disables the job.
	ReconcileSpec string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reconciliationJob *ReconciliationJob
}

func NewJobManager(cfg Config, reconcileHandler ReconcileHandler, logger zerolog.Logger) *JobManager {
	jm := &JobManager{}
	if cfg.ReconcileSpec != "off" {
		jm.reconciliationJob = NewReconciliationJob(reconcileHandler, cfg.ReconcileSpec, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.reconciliationJob == nil {
		return nil
	}
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.reconciliationJob != nil {
		jm.reconciliationJob.Stop()
	}
}
