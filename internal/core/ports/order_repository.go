// Package ports defines the contracts between the rental core and its
// infrastructure: repositories for the three persisted entities, the
// transaction boundary used by booking placement, and the outbound
// collaborators (page revalidation, object storage).
package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The order must be valid and not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order using its version as an
	// optimistic concurrency check. When the stored version differs, Update
	// returns an errs.VersionIsInvalidError and writes nothing. On success the
	// aggregate's version is advanced.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// HasActiveForVehicle reports whether a pending or approved order
	// references the vehicle.
	HasActiveForVehicle(ctx context.Context, vehicleID kernel.UUID) (bool, error)

	// HasActiveForDriverExcept reports whether a pending or approved order
	// other than orderID has the driver assigned.
	HasActiveForDriverExcept(ctx context.Context, driverID, orderID kernel.UUID) (bool, error)

	// GetAllActive retrieves every pending or approved order.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
