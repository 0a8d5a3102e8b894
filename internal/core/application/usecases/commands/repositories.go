// Package commands contains the write-side use cases of the rental system:
// booking placement, the order coordinator, driver assignment, payment-proof
// attachment, fleet and driver registration, and resource reconciliation.
//
// Every handler validates its command, loads what it needs before writing
// anything, and reports failures through the taxonomy in errors.go.
package commands

import (
	"context"

	"rental/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// Repositories gives non-transactional access to every repository. The
	// coordinator and the assignment service use it: their writes are
	// deliberately sequential and report partial failure instead of rolling
	// back.
	Repositories interface {
		OrderRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
	}

	// PlacementUoW is the transaction used to place a booking: the vehicle
	// row lock, the new order and the vehicle hold commit together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   v, err := uow.VehicleRepository().GetForUpdate(ctx, vehicleID)
	//   // ... add order, hold vehicle
	//
	//   err = uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// VehicleUoW manages transactions for fleet-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}
)
