package commands

import (
	"errors"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand registers a vehicle in the fleet. A fresh id is
// generated by the constructor.
//
// Example:
//
//	rate, _ := kernel.MoneyFromString("350000")
//	cmd, err := NewCreateVehicleCommand("Toyota Avanza", "B 1234 XYZ", rate)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//	v, err := handler.Handle(ctx, cmd)
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	name        string
	plateNumber string
	dailyRate   kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(name, plateNumber string, dailyRate kernel.Money) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		vehicleID: kernel.NewUUID(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPlateNumber(plateNumber),
		cmd.setDailyRate(dailyRate),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier for the new vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c CreateVehicleCommand) Name() string {
	return c.name
}

func (c CreateVehicleCommand) PlateNumber() string {
	return c.plateNumber
}

// DailyRate returns the price per rental day.
func (c CreateVehicleCommand) DailyRate() kernel.Money {
	return c.dailyRate
}

func (c *CreateVehicleCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateVehicleCommand) setPlateNumber(plate string) error {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return errs.NewValueIsRequiredError("plate number")
	}

	c.plateNumber = plate
	return nil
}

func (c *CreateVehicleCommand) setDailyRate(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	c.dailyRate = rate
	return nil
}
