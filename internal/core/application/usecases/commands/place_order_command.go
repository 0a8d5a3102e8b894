package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand is a storefront booking request.
//
// Example:
//
//	customer, _ := order.NewCustomer("Ayu", "+62 812 0000", "ayu@example.com")
//	period, _ := order.NewRentalPeriod(start, 3)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), vehicleID, order.WithDriver, customer, period)
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	vehicleID   kernel.UUID
	serviceType order.ServiceType
	customer    order.Customer
	period      order.RentalPeriod

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	orderID kernel.UUID,
	vehicleID kernel.UUID,
	serviceType order.ServiceType,
	customer order.Customer,
	period order.RentalPeriod,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		vehicleID.Validate(),
		serviceType.Validate(),
		customer.Validate(),
		period.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.vehicleID = vehicleID
	cmd.serviceType = serviceType
	cmd.customer = customer
	cmd.period = period
	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VehicleID returns the vehicle to book.
func (c PlaceOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c PlaceOrderCommand) ServiceType() order.ServiceType {
	return c.serviceType
}

func (c PlaceOrderCommand) Customer() order.Customer {
	return c.customer
}

// Period returns the requested rental dates.
func (c PlaceOrderCommand) Period() order.RentalPeriod {
	return c.period
}
