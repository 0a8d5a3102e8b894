package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a database transaction boundary. Client code manages the
// lifecycle explicitly: Begin, then Commit, with a deferred Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is open; callers defer it
	// and ignore the result.
	Rollback(ctx context.Context) error

	// The repositories below are bound to the transaction started by Begin.
	OrderRepository() OrderRepository
	VehicleRepository() VehicleRepository
	DriverRepository() DriverRepository
}
