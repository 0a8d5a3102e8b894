package postgres

import (
	"context"

	"rental/internal/adapters/out/postgres/driverrepo"
	"rental/internal/adapters/out/postgres/orderrepo"
	"rental/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the vehicles, drivers and orders tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
	)
}
