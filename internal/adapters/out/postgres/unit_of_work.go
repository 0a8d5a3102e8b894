// Package postgres wires the GORM repositories into the transaction boundary
// used by the command handlers.
//
// Two entry points:
//
//   - Repositories: repositories bound to the plain connection. Every call is
//     its own statement. Used by handlers that write sequentially and report
//     partial failure instead of rolling back.
//   - GormUnitOfWork: repositories bound to one transaction between Begin and
//     Commit.
//
// Example:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	v, err := uow.VehicleRepository().GetForUpdate(ctx, vehicleID)
//	// ...
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"rental/internal/adapters/out/postgres/driverrepo"
	"rental/internal/adapters/out/postgres/orderrepo"
	"rental/internal/adapters/out/postgres/vehiclerepo"
	"rental/internal/core/ports"

	"gorm.io/gorm"
)

// Repositories hands out repositories that run outside any transaction.
type Repositories struct {
	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{db: db}
}

func (r *Repositories) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(r.db)
}

func (r *Repositories) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(r.db)
}

func (r *Repositories) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(r.db)
}

// GormUnitOfWorkFactory gives every business operation a fresh unit of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork is not safe for concurrent use; create one per operation.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// The repository accessors bind to the open transaction, or to the plain
// connection when Begin has not been called.

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn())
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
