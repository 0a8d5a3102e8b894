package commands

import (
	"context"
	"errors"
	"fmt"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// AssignDriverCommandHandler assigns or reassigns the driver of an active
// chauffeured order.
//
// Preconditions are checked before any write. The writes then run as
// release previous driver, write the order, claim the new driver. The first
// failing write is a PersistenceError when nothing before it committed and a
// PartialFailureError otherwise. Repeating the command converges.
type AssignDriverCommandHandler struct {
	repos  Repositories
	states services.ResourceStates
	hook   ports.RevalidationHook
	logger zerolog.Logger
}

func NewAssignDriverCommandHandler(
	repos Repositories,
	states services.ResourceStates,
	hook ports.RevalidationHook,
	logger zerolog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		repos:  repos,
		states: states,
		hook:   hook,
		logger: logger,
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders := h.repos.OrderRepository()
	drivers := h.repos.DriverRepository()

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, loadError(ErrOrderNotFound, "load order", err)
	}
	if o.Status().IsTerminal() {
		return nil, fmt.Errorf("%w: order %s is %s", ErrOrderTerminal, o.ID(), o.Status())
	}
	if !o.RequiresDriver() {
		return nil, fmt.Errorf("%w: driver not required for %s", ErrInvalidTransition, o.ServiceType())
	}

	next, err := drivers.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, loadError(ErrDriverNotFound, "load driver", err)
	}

	prevID := o.DriverID()
	sameDriver := prevID != nil && prevID.IsEqual(next.ID())
	if !sameDriver {
		if !next.IsAvailable() {
			return nil, fmt.Errorf("%w: driver %s is %s", ErrDriverUnavailable, next.ID(), next.Status())
		}
		// A stale available status can hide an assignment left by a partial failure.
		held, err := orders.HasActiveForDriverExcept(ctx, next.ID(), o.ID())
		if err != nil {
			return nil, &PersistenceError{Op: "check driver holder", Cause: err}
		}
		if held {
			return nil, fmt.Errorf("%w: driver %s is assigned to another active order", ErrDriverUnavailable, next.ID())
		}
	}

	var prev *driver.Driver
	if prevID != nil && !sameDriver {
		prev, err = drivers.Get(ctx, *prevID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Warn().Str("driver_id", prevID.String()).Msg("previous driver no longer exists, skipping release")
			err = nil
		}
		if err != nil {
			return nil, &PersistenceError{Op: "load previous driver", Cause: err}
		}
	}

	if prev != nil {
		held, err := orders.HasActiveForDriverExcept(ctx, prev.ID(), o.ID())
		if err != nil {
			return nil, &PersistenceError{Op: "check previous driver holder", Cause: err}
		}
		if held {
			h.logger.Warn().
				Str("order_id", o.ID().String()).
				Str("driver_id", prev.ID().String()).
				Msg("previous driver is held by another order, skipping release")
			prev = nil
		}
	}

	known, err := order.RestoreOrder(o.Snapshot())
	if err != nil {
		return nil, err
	}
	w := writeLog{order: known}

	if prev != nil && prev.Status() != driver.Available {
		target := h.states.DriverStatusFor(false)
		if err = prev.ChangeStatus(target); err == nil {
			err = drivers.Update(ctx, prev)
		}
		if err != nil {
			return nil, w.fail("release previous driver", FailedWrite{Resource: "driver", ID: prev.ID(), Target: target.String(), Cause: err})
		}
		w.committed = true
	}

	if !sameDriver {
		if err = o.AssignDriver(next.ID()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}
		if err = orders.Update(ctx, o); err != nil {
			return nil, w.fail("update order", FailedWrite{Resource: "order", ID: o.ID(), Target: "driver " + next.ID().String(), Cause: err})
		}
		w.order = o
		w.committed = true
	}

	target := h.states.DriverStatusFor(o.HoldsDriver())
	if next.Status() != target {
		if err = next.ChangeStatus(target); err == nil {
			err = drivers.Update(ctx, next)
		}
		if err != nil {
			return nil, w.fail("claim driver", FailedWrite{Resource: "driver", ID: next.ID(), Target: target.String(), Cause: err})
		}
	}

	h.logger.Info().
		Str("order_id", o.ID().String()).
		Str("driver_id", next.ID().String()).
		Bool("reassigned", prevID != nil && !sameDriver).
		Msg("driver assigned")

	revalidate(ctx, h.hook, h.logger, orderPaths(o))
	return o, nil
}

// writeLog tracks the last committed order state and whether any write in
// the sequence has committed, which decides how a later failure is reported.
type writeLog struct {
	order     *order.Order
	committed bool
}

func (w writeLog) fail(op string, fw FailedWrite) error {
	if !w.committed {
		return &PersistenceError{Op: op, Cause: fw.Cause}
	}
	return &PartialFailureError{Order: w.order, Failed: []FailedWrite{fw}}
}
