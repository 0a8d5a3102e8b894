package commands

import (
	"context"

	"rental/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler registers a driver in available status.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.Phone())
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

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return nil, &PersistenceError{Op: "add driver", Cause: err}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, &PersistenceError{Op: "commit driver", Cause: err}
	}

	return d, nil
}
