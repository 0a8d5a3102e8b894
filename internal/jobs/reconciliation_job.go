package jobs

import (
	"context"
	"errors"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/metrics"
	"rental/internal/pkg/logging"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const DefaultReconcileSpec = "0 */5 * * * *"

type ReconcileHandler interface {
	Handle(ctx context.Context, cmd commands.ReconcileResourcesCommand) (commands.ReconciliationReport, error)
}

// ReconciliationJob runs resource reconciliation on a cron schedule.
type ReconciliationJob struct {
	handler ReconcileHandler
	spec    string
	timeout time.Duration
	cron    *cron.Cron
	logger  zerolog.Logger
}

func NewReconciliationJob(handler ReconcileHandler, spec string, logger zerolog.Logger) *ReconciliationJob {
	if spec == "" {
		spec = DefaultReconcileSpec
	}
	return &ReconciliationJob{
		handler: handler,
		spec:    spec,
		timeout: time.Minute,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logging.Component(logger, "reconciliation_job"),
	}
}

func (j *ReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("spec", j.spec).Msg("reconciliation job started")
	return nil
}

// Stop waits for a running reconciliation to finish.
func (j *ReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("reconciliation job stopped")
}

// RunOnce performs one reconciliation pass and records its outcome.
func (j *ReconciliationJob) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	report, err := j.handler.Handle(ctx, commands.NewReconcileResourcesCommand(false))
	metrics.ObserveCommand("reconcile_resources", commands.Classify(err).String())
	if err != nil && !errors.Is(err, commands.ErrPartialFailure) {
		j.logger.Error().Err(err).Msg("reconciliation failed")
		return
	}

	metrics.ObserveReconciliation(report.VehiclesRepaired, report.DriversRepaired, len(report.Conflicts))

	event := j.logger.Debug()
	if err != nil || report.Repaired() > 0 || len(report.Conflicts) > 0 {
		event = j.logger.Warn().Err(err)
	}
	event.
		Int("vehicles_checked", report.VehiclesChecked).
		Int("drivers_checked", report.DriversChecked).
		Int("vehicles_repaired", report.VehiclesRepaired).
		Int("drivers_repaired", report.DriversRepaired).
		Strs("conflicts", report.Conflicts).
		Msg("reconciliation finished")
}
