package commands

import (
	"context"
	"fmt"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"

	"github.com/rs/zerolog"
)

// TransitionOrderCommandHandler is the order coordinator. It moves an order
// through its lifecycle and cascades the resulting vehicle and driver
// statuses.
//
// Writes happen in a fixed order with no rollback:
//  1. the order status (optimistic version check)
//  2. the vehicle status
//  3. the driver status, when the order holds one
//
// A failure at step 1 is a PersistenceError and nothing changed. A failure at
// step 2 or 3 is a PartialFailureError; calling Handle again with the same
// command converges because the order already sits at the target status and
// only the resource writes are replayed.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(repos, states, hook, logger)
//	cmd, _ := NewTransitionOrderCommand(orderID, order.Approved)
//	updated, err := handler.Handle(ctx, cmd)
//	switch Classify(err) {
//	case OutcomePartial:
//	    // retry the same call
//	case OutcomeNothingHappened:
//	    // retry later
//	}
type TransitionOrderCommandHandler struct {
	repos  Repositories
	states services.ResourceStates
	hook   ports.RevalidationHook
	logger zerolog.Logger
}

func NewTransitionOrderCommandHandler(
	repos Repositories,
	states services.ResourceStates,
	hook ports.RevalidationHook,
	logger zerolog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		repos:  repos,
		states: states,
		hook:   hook,
		logger: logger,
	}
}

func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders := h.repos.OrderRepository()
	vehicles := h.repos.VehicleRepository()
	drivers := h.repos.DriverRepository()
	target := cmd.Target()

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, loadError(ErrOrderNotFound, "load order", err)
	}

	replay := o.Status() == target
	if !replay {
		if err = o.Status().CanTransitionTo(target); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}
	}

	v, err := vehicles.Get(ctx, o.VehicleID())
	if err != nil {
		return nil, loadError(ErrVehicleNotFound, "load vehicle", err)
	}

	var d *driver.Driver
	if driverID := o.DriverID(); o.RequiresDriver() && driverID != nil {
		if d, err = drivers.Get(ctx, *driverID); err != nil {
			return nil, loadError(ErrDriverNotFound, "load driver", err)
		}
	}

	vehicleTarget, err := h.states.VehicleStatusFor(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}

	if target.IsTerminal() {
		// A terminal order no longer owns its resources; another active order may.
		if v, d, err = h.dropReclaimed(ctx, o, v, d, replay); err != nil {
			return nil, err
		}
	}

	if !replay {
		if err = o.Transition(target); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}
		if err = orders.Update(ctx, o); err != nil {
			return nil, &PersistenceError{Op: "update order", Cause: err}
		}
	}

	var failed []FailedWrite

	if v != nil && v.Status() != vehicleTarget {
		if err = v.ChangeStatus(vehicleTarget); err == nil {
			err = vehicles.Update(ctx, v)
		}
		if err != nil {
			failed = append(failed, FailedWrite{Resource: "vehicle", ID: v.ID(), Target: vehicleTarget.String(), Cause: err})
		}
	}

	if d != nil {
		driverTarget := h.states.DriverStatusFor(o.HoldsDriver())
		if d.Status() != driverTarget {
			if err = d.ChangeStatus(driverTarget); err == nil {
				err = drivers.Update(ctx, d)
			}
			if err != nil {
				failed = append(failed, FailedWrite{Resource: "driver", ID: d.ID(), Target: driverTarget.String(), Cause: err})
			}
		}
	}

	if len(failed) > 0 {
		partial := &PartialFailureError{Order: o, Failed: failed}
		h.logger.Warn().Err(partial).
			Str("order_id", o.ID().String()).
			Str("status", o.Status().String()).
			Msg("order transition committed with resource write failures")
		return nil, partial
	}

	h.logger.Info().
		Str("order_id", o.ID().String()).
		Str("status", o.Status().String()).
		Bool("replay", replay).
		Msg("order transitioned")

	revalidate(ctx, h.hook, h.logger, orderPaths(o))
	return o, nil
}

// dropReclaimed returns nil for any resource that another active order now
// holds. Placement refuses a second active order per vehicle, so the vehicle
// can only have moved on once this order already left the active states.
func (h TransitionOrderCommandHandler) dropReclaimed(
	ctx context.Context,
	o *order.Order,
	v *vehicle.Vehicle,
	d *driver.Driver,
	replay bool,
) (*vehicle.Vehicle, *driver.Driver, error) {
	orders := h.repos.OrderRepository()

	if replay {
		held, err := orders.HasActiveForVehicle(ctx, o.VehicleID())
		if err != nil {
			return nil, nil, &PersistenceError{Op: "check vehicle holder", Cause: err}
		}
		if held {
			v = nil
		}
	}

	if d != nil {
		held, err := orders.HasActiveForDriverExcept(ctx, d.ID(), o.ID())
		if err != nil {
			return nil, nil, &PersistenceError{Op: "check driver holder", Cause: err}
		}
		if held {
			h.logger.Warn().
				Str("order_id", o.ID().String()).
				Str("driver_id", d.ID().String()).
				Msg("driver is held by another order, skipping release")
			d = nil
		}
	}

	return v, d, nil
}
