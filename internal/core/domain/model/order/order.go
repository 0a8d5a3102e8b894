package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsTerminal is returned by mutations attempted on a rejected or
	// completed order.
	ErrOrderIsTerminal = errors.New("order is terminal")

	// ErrDriverIsNotRequired is returned when assigning a driver to a
	// self-drive order.
	ErrDriverIsNotRequired = errors.New("service type does not require a driver")
)

// Order is a rental booking. It is the aggregate root that owns the booking
// lifecycle; the vehicle and the driver it references are shared resources
// kept in sync by the coordination use cases.
//
// Order follows these invariants:
//   - Has a valid identifier and vehicle, both immutable
//   - Status transitions follow the table in Status.CanTransitionTo
//   - A driver is only referenced by orders whose service type requires one
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	vehicleID   kernel.UUID
	driverID    *kernel.UUID
	serviceType ServiceType
	customer    Customer
	period      RentalPeriod
	total       kernel.Money

	paymentProofURL string
	status          Status

	// version is the optimistic-concurrency counter owned by persistence.
	version   int
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending booking.
//
// Example:
//
//	customer, _ := order.NewCustomer("Ayu", "+62 812 0000", "")
//	period, _ := order.NewRentalPeriod(start, 3)
//	total, _ := kernel.MoneyFromString("750000")
//	o, err := order.NewOrder(kernel.NewUUID(), vehicleID, order.SelfDrive, customer, period, total)
func NewOrder(
	id kernel.UUID,
	vehicleID kernel.UUID,
	serviceType ServiceType,
	customer Customer,
	period RentalPeriod,
	total kernel.Money,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setVehicleID(vehicleID),
		o.setServiceType(serviceType),
		o.setCustomer(customer),
		o.setPeriod(period),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID              kernel.UUID
	VehicleID       kernel.UUID
	DriverID        *kernel.UUID
	ServiceType     ServiceType
	Customer        Customer
	Period          RentalPeriod
	Total           kernel.Money
	PaymentProofURL string
	Status          Status
	Version         int
	CreatedAt       time.Time
}

// RestoreOrder rebuilds an order loaded from persistence, validating the
// same invariants NewOrder does plus status/driver consistency.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		paymentProofURL: s.PaymentProofURL,
		version:         s.Version,
		createdAt:       s.CreatedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setVehicleID(s.VehicleID),
		o.setServiceType(s.ServiceType),
		o.setCustomer(s.Customer),
		o.setPeriod(s.Period),
		o.setTotal(s.Total),
		o.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	if s.DriverID != nil {
		if err := o.setDriverID(*s.DriverID); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Snapshot exports the current state in the form RestoreOrder accepts.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:              o.id,
		VehicleID:       o.vehicleID,
		DriverID:        o.DriverID(),
		ServiceType:     o.serviceType,
		Customer:        o.customer,
		Period:          o.period,
		Total:           o.total,
		PaymentProofURL: o.paymentProofURL,
		Status:          o.status,
		Version:         o.version,
		CreatedAt:       o.createdAt,
	}
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VehicleID returns the booked vehicle.
func (o *Order) VehicleID() kernel.UUID {
	return o.vehicleID
}

// ServiceType returns how the vehicle is rented.
func (o *Order) ServiceType() ServiceType {
	return o.serviceType
}

// Customer returns the contact details given at booking.
func (o *Order) Customer() Customer {
	return o.customer
}

// Period returns the rental dates.
func (o *Order) Period() RentalPeriod {
	return o.period
}

// Total returns the price fixed at booking.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PaymentProofURL returns the uploaded receipt location, or an empty string.
func (o *Order) PaymentProofURL() string {
	return o.paymentProofURL
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic concurrency counter.
func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// RequiresDriver reports whether the service type needs a driver.
func (o *Order) RequiresDriver() bool {
	return o.serviceType.RequiresDriver()
}

// DriverID returns the assigned driver, or nil when none is assigned.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

// HoldsDriver reports whether the order currently keeps its driver on duty.
func (o *Order) HoldsDriver() bool {
	return o.status.IsActive() && o.RequiresDriver() && o.driverID != nil
}

// Transition moves the order to target if the transition table allows it.
func (o *Order) Transition(target Status) error {
	if err := o.status.CanTransitionTo(target); err != nil {
		return err
	}
	o.status = target
	return nil
}

// AssignDriver sets or replaces the driver of an active, chauffeured order.
// Assigning the current driver again is a no-op.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrOrderIsTerminal, o.status)
	}
	if !o.RequiresDriver() {
		return fmt.Errorf("%w: %s", ErrDriverIsNotRequired, o.serviceType)
	}

	o.driverID = &driverID
	return nil
}

// AttachPaymentProof records where the customer's transfer receipt is stored.
// The proof is not validated.
func (o *Order) AttachPaymentProof(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return errs.NewValueIsRequiredError("payment proof url")
	}
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrOrderIsTerminal, o.status)
	}

	o.paymentProofURL = url
	return nil
}

// AdvanceVersion is called by persistence after a successful write.
func (o *Order) AdvanceVersion() {
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicle id", err)
	}
	o.vehicleID = id
	return nil
}

func (o *Order) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}
	if !o.RequiresDriver() {
		return fmt.Errorf("%w: %s", ErrDriverIsNotRequired, o.serviceType)
	}
	o.driverID = &id
	return nil
}

func (o *Order) setServiceType(t ServiceType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.serviceType = t
	return nil
}

func (o *Order) setCustomer(c Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.customer = c
	return nil
}

func (o *Order) setPeriod(p RentalPeriod) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.period = p
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}
