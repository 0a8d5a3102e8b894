package commands

import (
	"context"
	"fmt"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"

	"github.com/rs/zerolog"
)

// ReconciliationReport summarizes one reconciliation pass.
type ReconciliationReport struct {
	VehiclesChecked  int
	DriversChecked   int
	VehiclesRepaired int
	DriversRepaired  int

	// Conflicts lists invariant violations that cannot be repaired by
	// rewriting a status, such as a vehicle with two active orders.
	Conflicts []string

	Failed []FailedWrite
}

// Repaired is the total number of resources whose status was (or, in a dry
// run, would have been) rewritten.
func (r ReconciliationReport) Repaired() int {
	return r.VehiclesRepaired + r.DriversRepaired
}

// ReconcileResourcesCommandHandler recomputes every vehicle and driver status
// from the active orders using the same state machine as the coordinator.
// It repairs drift left behind by partial failures that were never retried.
type ReconcileResourcesCommandHandler struct {
	repos  Repositories
	states services.ResourceStates
	logger zerolog.Logger
}

func NewReconcileResourcesCommandHandler(
	repos Repositories,
	states services.ResourceStates,
	logger zerolog.Logger,
) ReconcileResourcesCommandHandler {
	return ReconcileResourcesCommandHandler{
		repos:  repos,
		states: states,
		logger: logger,
	}
}

// Handle returns the report together with a PartialFailureError when some
// repair writes failed.
func (h ReconcileResourcesCommandHandler) Handle(ctx context.Context, cmd ReconcileResourcesCommand) (ReconciliationReport, error) {
	var report ReconciliationReport

	if err := cmd.Validate(); err != nil {
		return report, err
	}

	active, err := h.repos.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return report, &PersistenceError{Op: "load active orders", Cause: err}
	}
	vehicles, err := h.repos.VehicleRepository().GetAll(ctx)
	if err != nil {
		return report, &PersistenceError{Op: "load vehicles", Cause: err}
	}
	drivers, err := h.repos.DriverRepository().GetAll(ctx)
	if err != nil {
		return report, &PersistenceError{Op: "load drivers", Cause: err}
	}

	byVehicle := make(map[string][]*order.Order)
	byDriver := make(map[string][]*order.Order)
	for _, o := range active {
		byVehicle[o.VehicleID().String()] = append(byVehicle[o.VehicleID().String()], o)
		if o.HoldsDriver() {
			id := o.DriverID().String()
			byDriver[id] = append(byDriver[id], o)
		}
	}

	known := make(map[string]bool, len(vehicles))
	for _, v := range vehicles {
		known[v.ID().String()] = true
		report.VehiclesChecked++
		h.reconcileVehicle(ctx, cmd, v, byVehicle[v.ID().String()], &report)
	}
	for id := range byVehicle {
		if !known[id] {
			report.Conflicts = append(report.Conflicts, fmt.Sprintf("active order references missing vehicle %s", id))
		}
	}

	known = make(map[string]bool, len(drivers))
	for _, d := range drivers {
		known[d.ID().String()] = true
		report.DriversChecked++
		h.reconcileDriver(ctx, cmd, d, byDriver[d.ID().String()], &report)
	}
	for id := range byDriver {
		if !known[id] {
			report.Conflicts = append(report.Conflicts, fmt.Sprintf("active order references missing driver %s", id))
		}
	}

	h.logger.Info().
		Bool("dry_run", cmd.DryRun()).
		Int("vehicles_checked", report.VehiclesChecked).
		Int("drivers_checked", report.DriversChecked).
		Int("vehicles_repaired", report.VehiclesRepaired).
		Int("drivers_repaired", report.DriversRepaired).
		Int("conflicts", len(report.Conflicts)).
		Msg("reconciliation finished")

	for _, c := range report.Conflicts {
		h.logger.Warn().Str("conflict", c).Msg("resource invariant violated")
	}

	if len(report.Failed) > 0 {
		return report, &PartialFailureError{Failed: report.Failed}
	}
	return report, nil
}

func (h ReconcileResourcesCommandHandler) reconcileVehicle(
	ctx context.Context,
	cmd ReconcileResourcesCommand,
	v *vehicle.Vehicle,
	holders []*order.Order,
	report *ReconciliationReport,
) {
	if len(holders) > 1 {
		report.Conflicts = append(report.Conflicts,
			fmt.Sprintf("vehicle %s has %d active orders", v.ID(), len(holders)))
		return
	}

	expected := vehicle.Available
	if len(holders) == 1 {
		status, err := h.states.VehicleStatusFor(holders[0].Status())
		if err != nil {
			report.Conflicts = append(report.Conflicts, fmt.Sprintf("order %s: %v", holders[0].ID(), err))
			return
		}
		expected = status
	}
	if v.Status() == expected {
		return
	}

	report.VehiclesRepaired++
	if cmd.DryRun() {
		return
	}

	err := v.ChangeStatus(expected)
	if err == nil {
		err = h.repos.VehicleRepository().Update(ctx, v)
	}
	if err != nil {
		report.VehiclesRepaired--
		report.Failed = append(report.Failed, FailedWrite{Resource: "vehicle", ID: v.ID(), Target: expected.String(), Cause: err})
	}
}

func (h ReconcileResourcesCommandHandler) reconcileDriver(
	ctx context.Context,
	cmd ReconcileResourcesCommand,
	d *driver.Driver,
	holders []*order.Order,
	report *ReconciliationReport,
) {
	if len(holders) > 1 {
		report.Conflicts = append(report.Conflicts,
			fmt.Sprintf("driver %s is assigned to %d active orders", d.ID(), len(holders)))
		return
	}

	expected := h.states.DriverStatusFor(len(holders) == 1)
	if d.Status() == expected {
		return
	}

	report.DriversRepaired++
	if cmd.DryRun() {
		return
	}

	err := d.ChangeStatus(expected)
	if err == nil {
		err = h.repos.DriverRepository().Update(ctx, d)
	}
	if err != nil {
		report.DriversRepaired--
		report.Failed = append(report.Failed, FailedWrite{Resource: "driver", ID: d.ID(), Target: expected.String(), Cause: err})
	}
}
