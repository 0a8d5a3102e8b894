// Package pgtest builds valid aggregates for the PostgreSQL integration suites.
package pgtest

import (
	"testing"
	"time"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

func Vehicle(t *testing.T, plate string) *vehicle.Vehicle {
	t.Helper()
	rate, err := kernel.MoneyFromString("350000")
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "Toyota Avanza", plate, rate)
	require.NoError(t, err)
	return v
}

func Driver(t *testing.T, name string) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), name, "+62 811 0000 0000")
	require.NoError(t, err)
	return d
}

func Order(t *testing.T, vehicleID kernel.UUID, serviceType order.ServiceType) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Ayu Lestari", "+62 812 5555 0101", "ayu@example.com")
	require.NoError(t, err)
	period, err := order.NewRentalPeriod(time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC), 3)
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("1050000.50")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), vehicleID, serviceType, customer, period, total)
	require.NoError(t, err)
	return o
}
