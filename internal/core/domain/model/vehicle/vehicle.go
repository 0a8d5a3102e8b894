// Package vehicle provides the Vehicle entity: a car of the rental fleet and
// its availability.
//
// Vehicle status is never chosen by callers directly. The coordination use
// cases derive it from the state of the order that holds the vehicle and
// apply it through ChangeStatus.
package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Status is the availability of a vehicle.
type Status int

const (
	Unknown Status = iota
	Available
	Reserved
	Rented
)

var statusNames = map[Status]string{
	Available: "available",
	Reserved:  "reserved",
	Rented:    "rented",
}

func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("vehicle status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Vehicle is a shared resource referenced by orders.
type Vehicle struct {
	id          kernel.UUID
	name        string
	plateNumber string
	dailyRate   kernel.Money
	status      Status
	guard       guard.ConstructorGuard
}

// NewVehicle registers a fleet vehicle; it starts Available.
func NewVehicle(id kernel.UUID, name, plateNumber string, dailyRate kernel.Money) (*Vehicle, error) {
	return RestoreVehicle(id, name, plateNumber, dailyRate, Available)
}

// RestoreVehicle rebuilds a vehicle loaded from persistence.
func RestoreVehicle(id kernel.UUID, name, plateNumber string, dailyRate kernel.Money, status Status) (*Vehicle, error) {
	v := &Vehicle{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setPlateNumber(plateNumber),
		v.setDailyRate(dailyRate),
		v.ChangeStatus(status),
	); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Name returns the display name shown in the fleet.
func (v *Vehicle) Name() string {
	return v.name
}

// PlateNumber returns the normalized plate number.
func (v *Vehicle) PlateNumber() string {
	return v.plateNumber
}

// DailyRate returns the price per rental day.
func (v *Vehicle) DailyRate() kernel.Money {
	return v.dailyRate
}

// Status returns the current availability status.
func (v *Vehicle) Status() Status {
	return v.status
}

// IsAvailable reports whether the vehicle can be booked.
func (v *Vehicle) IsAvailable() bool {
	return v.status == Available
}

// ChangeStatus sets the status. Setting the current status again is allowed
// so that resource writes can be replayed.
func (v *Vehicle) ChangeStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	v.status = s
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("vehicle name")
	}
	v.name = name
	return nil
}

func (v *Vehicle) setPlateNumber(plate string) error {
	plate = strings.ToUpper(strings.Join(strings.Fields(plate), " "))
	if plate == "" {
		return errs.NewValueIsRequiredError("plate number")
	}
	v.plateNumber = plate
	return nil
}

func (v *Vehicle) setDailyRate(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	v.dailyRate = rate
	return nil
}
