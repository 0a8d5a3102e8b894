package commands

import (
	"context"
	"fmt"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"

	"github.com/rs/zerolog"
)

// PlaceOrderCommandHandler books a vehicle. The vehicle row is locked for the
// duration of the transaction, so two customers racing for the same vehicle
// cannot both get a pending order.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	states     services.ResourceStates
	pricer     services.RentalPricer
	hook       ports.RevalidationHook
	logger     zerolog.Logger
}

func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	states services.ResourceStates,
	pricer services.RentalPricer,
	hook ports.RevalidationHook,
	logger zerolog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		states:     states,
		pricer:     pricer,
		hook:       hook,
		logger:     logger,
	}
}

// Handle places the booking in pending status and applies the pending
// vehicle hold. Returns ErrVehicleUnavailable when the vehicle already has an
// active order or is not available.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, &PersistenceError{Op: "begin transaction", Cause: err}
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicles := uow.VehicleRepository()
	orders := uow.OrderRepository()

	v, err := vehicles.GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return nil, loadError(ErrVehicleNotFound, "lock vehicle", err)
	}

	held, err := orders.HasActiveForVehicle(ctx, v.ID())
	if err != nil {
		return nil, &PersistenceError{Op: "check vehicle holder", Cause: err}
	}
	if held || !v.IsAvailable() {
		return nil, fmt.Errorf("%w: vehicle %s is %s", ErrVehicleUnavailable, v.ID(), v.Status())
	}

	total, err := h.pricer.Total(v.DailyRate(), cmd.Period(), cmd.ServiceType())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), v.ID(), cmd.ServiceType(), cmd.Customer(), cmd.Period(), total)
	if err != nil {
		return nil, err
	}

	if err = orders.Add(ctx, o); err != nil {
		return nil, &PersistenceError{Op: "add order", Cause: err}
	}

	hold, err := h.states.VehicleStatusFor(o.Status())
	if err != nil {
		return nil, err
	}
	if v.Status() != hold {
		if err = v.ChangeStatus(hold); err != nil {
			return nil, err
		}
		if err = vehicles.Update(ctx, v); err != nil {
			return nil, &PersistenceError{Op: "hold vehicle", Cause: err}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, &PersistenceError{Op: "commit booking", Cause: err}
	}

	h.logger.Info().
		Str("order_id", o.ID().String()).
		Str("vehicle_id", v.ID().String()).
		Str("total", o.Total().String()).
		Msg("booking placed")

	revalidate(ctx, h.hook, h.logger, orderPaths(o))
	return o, nil
}
