package commands_test

import (
	"errors"
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReconcileHandler(t *testing.T, f *fixture) commands.ReconcileResourcesCommandHandler {
	t.Helper()
	return commands.NewReconcileResourcesCommandHandler(f.repos, resourceStates(t, services.HoldOnBooking), zerolog.Nop())
}

func TestReconcileResourcesCommandHandler_RepairsDrift(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	// left reserved after its order was rejected
	stale := newTestVehicle(t, vehicle.Reserved)
	// approved order whose vehicle write failed
	rented := newTestVehicle(t, vehicle.Reserved)
	idle := newTestVehicle(t, vehicle.Available)

	freed := newTestDriver(t, driver.OnDuty)
	working := newTestDriver(t, driver.Available)

	active := []*order.Order{
		newTestOrder(t, rented.ID(), order.WithDriver, order.Approved, idOf(working.ID())),
	}

	f.orders.On("GetAllActive", ctx).Return(active, nil).Once()
	f.vehicles.On("GetAll", ctx).Return([]*vehicle.Vehicle{stale, rented, idle}, nil).Once()
	f.drivers.On("GetAll", ctx).Return([]*driver.Driver{freed, working}, nil).Once()
	f.vehicles.On("Update", ctx, stale).Return(nil).Once()
	f.vehicles.On("Update", ctx, rented).Return(nil).Once()
	f.drivers.On("Update", ctx, driverWithStatus(freed.ID(), driver.Available)).Return(nil).Once()
	f.drivers.On("Update", ctx, driverWithStatus(working.ID(), driver.OnDuty)).Return(nil).Once()

	report, err := newReconcileHandler(t, f).Handle(ctx, commands.NewReconcileResourcesCommand(false))

	require.NoError(t, err)
	assert.Equal(t, 3, report.VehiclesChecked)
	assert.Equal(t, 2, report.DriversChecked)
	assert.Equal(t, 2, report.VehiclesRepaired)
	assert.Equal(t, 2, report.DriversRepaired)
	assert.Equal(t, 4, report.Repaired())
	assert.Empty(t, report.Conflicts)
	assert.Equal(t, vehicle.Available, stale.Status())
	assert.Equal(t, vehicle.Rented, rented.Status())
	assert.Equal(t, vehicle.Available, idle.Status())
	f.assertExpectations(t)
}

func TestReconcileResourcesCommandHandler_DryRunWritesNothing(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	stale := newTestVehicle(t, vehicle.Rented)

	f.orders.On("GetAllActive", ctx).Return([]*order.Order{}, nil).Once()
	f.vehicles.On("GetAll", ctx).Return([]*vehicle.Vehicle{stale}, nil).Once()
	f.drivers.On("GetAll", ctx).Return([]*driver.Driver{}, nil).Once()

	report, err := newReconcileHandler(t, f).Handle(ctx, commands.NewReconcileResourcesCommand(true))

	require.NoError(t, err)
	assert.Equal(t, 1, report.VehiclesRepaired)
	assert.Equal(t, vehicle.Rented, stale.Status())
	f.vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReconcileResourcesCommandHandler_ReportsConflicts(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	v := newTestVehicle(t, vehicle.Reserved)
	d := newTestDriver(t, driver.OnDuty)

	active := []*order.Order{
		newTestOrder(t, v.ID(), order.WithDriver, order.Pending, idOf(d.ID())),
		newTestOrder(t, v.ID(), order.WithDriver, order.Approved, idOf(d.ID())),
	}

	f.orders.On("GetAllActive", ctx).Return(active, nil).Once()
	f.vehicles.On("GetAll", ctx).Return([]*vehicle.Vehicle{v}, nil).Once()
	f.drivers.On("GetAll", ctx).Return([]*driver.Driver{d}, nil).Once()

	report, err := newReconcileHandler(t, f).Handle(ctx, commands.NewReconcileResourcesCommand(false))

	require.NoError(t, err)
	assert.Len(t, report.Conflicts, 2)
	assert.Zero(t, report.Repaired())
	f.vehicles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.drivers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReconcileResourcesCommandHandler_FailedRepairIsPartial(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	stale := newTestVehicle(t, vehicle.Reserved)

	f.orders.On("GetAllActive", ctx).Return([]*order.Order{}, nil).Once()
	f.vehicles.On("GetAll", ctx).Return([]*vehicle.Vehicle{stale}, nil).Once()
	f.drivers.On("GetAll", ctx).Return([]*driver.Driver{}, nil).Once()
	f.vehicles.On("Update", ctx, stale).Return(errors.New("deadlock")).Once()

	report, err := newReconcileHandler(t, f).Handle(ctx, commands.NewReconcileResourcesCommand(false))

	require.ErrorIs(t, err, commands.ErrPartialFailure)
	assert.Zero(t, report.VehiclesRepaired)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "vehicle", report.Failed[0].Resource)
}

func TestReconcileResourcesCommandHandler_LoadFailure(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	f.orders.On("GetAllActive", ctx).Return(nil, errors.New("connection refused")).Once()

	_, err := newReconcileHandler(t, f).Handle(ctx, commands.NewReconcileResourcesCommand(false))

	require.ErrorIs(t, err, commands.ErrPersistence)
}

func TestReconcileResourcesCommandHandler_ValidationError(t *testing.T) {
	f := newFixture()

	_, err := newReconcileHandler(t, f).Handle(t.Context(), commands.ReconcileResourcesCommand{})

	require.ErrorIs(t, err, commands.ErrReconcileResourcesCommandIsNotConstructed)
}
