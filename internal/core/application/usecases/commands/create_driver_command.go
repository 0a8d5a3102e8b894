package commands

import (
	"errors"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a chauffeur. A fresh id is generated by the
// constructor.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	phone    string

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(name, phone string) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		driverID: kernel.NewUUID(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c CreateDriverCommand) Phone() string {
	return c.phone
}

func (c *CreateDriverCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
