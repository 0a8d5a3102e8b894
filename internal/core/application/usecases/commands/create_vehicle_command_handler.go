package commands

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"
)

// CreateVehicleCommandHandler adds a vehicle to the fleet in available
// status. A plate number already in the fleet is rejected.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Name(), cmd.PlateNumber(), cmd.DailyRate())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, &PersistenceError{Op: "begin transaction", Cause: err}
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "add vehicle", Cause: err}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, &PersistenceError{Op: "commit vehicle", Cause: err}
	}

	return v, nil
}
