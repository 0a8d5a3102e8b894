// Package driver provides the Driver entity: a chauffeur who can be assigned
// to chauffeured bookings.
package driver

import (
	"errors"
	"fmt"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Status is the duty state of a driver.
type Status int

const (
	Unknown Status = iota
	Available
	OnDuty
)

var statusNames = map[Status]string{
	Available: "available",
	OnDuty:    "on_duty",
}

func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Driver is a shared resource referenced by chauffeured orders.
type Driver struct {
	id     kernel.UUID
	name   string
	phone  string
	status Status
	guard  guard.ConstructorGuard
}

// NewDriver registers a driver; it starts Available.
func NewDriver(id kernel.UUID, name, phone string) (*Driver, error) {
	return RestoreDriver(id, name, phone, Available)
}

func RestoreDriver(id kernel.UUID, name, phone string, status Status) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.ChangeStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Phone() string {
	return d.phone
}

// Status returns the current duty status.
func (d *Driver) Status() Status {
	return d.status
}

func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

// ChangeStatus sets the duty state. Replays of the current state are allowed.
func (d *Driver) ChangeStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	d.status = s
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("driver phone")
	}
	d.phone = phone
	return nil
}
