package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for the fleet.
type VehicleRepository interface {
	Add(ctx context.Context, v *vehicle.Vehicle) error
	Update(ctx context.Context, v *vehicle.Vehicle) error

	// Get returns errs.ObjectNotFoundError when the vehicle does not exist.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends. Outside a transaction it behaves like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)
}
