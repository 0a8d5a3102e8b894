package ports

import (
	"context"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for drivers.
type DriverRepository interface {
	Add(ctx context.Context, d *driver.Driver) error
	Update(ctx context.Context, d *driver.Driver) error

	// Get returns errs.ObjectNotFoundError when the driver does not exist.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	GetAll(ctx context.Context) ([]*driver.Driver, error)
}
