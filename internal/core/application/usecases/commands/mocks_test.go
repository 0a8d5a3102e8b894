package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) HasActiveForVehicle(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) HasActiveForDriverExcept(ctx context.Context, driverID, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, driverID, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

// MockRepositories hands out the same repository mocks on every call.
type MockRepositories struct {
	orders   *MockOrderRepository
	vehicles *MockVehicleRepository
	drivers  *MockDriverRepository
}

func (m *MockRepositories) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockRepositories) VehicleRepository() ports.VehicleRepository {
	return m.vehicles
}

func (m *MockRepositories) DriverRepository() ports.DriverRepository {
	return m.drivers
}

type MockUoW struct {
	mock.Mock
	*MockRepositories
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockRevalidationHook struct{ mock.Mock }

func (m *MockRevalidationHook) Revalidate(ctx context.Context, paths []string) error {
	args := m.Called(ctx, paths)
	return args.Error(0)
}

type MockObjectStorage struct{ mock.Mock }

func (m *MockObjectStorage) Upload(ctx context.Context, folder, name string, blob io.Reader) (string, error) {
	args := m.Called(ctx, folder, name, blob)
	return args.String(0), args.Error(1)
}

// fixture bundles fresh mocks for one test.
type fixture struct {
	orders   *MockOrderRepository
	vehicles *MockVehicleRepository
	drivers  *MockDriverRepository
	repos    *MockRepositories
	hook     *MockRevalidationHook
}

func newFixture() *fixture {
	f := &fixture{
		orders:   new(MockOrderRepository),
		vehicles: new(MockVehicleRepository),
		drivers:  new(MockDriverRepository),
		hook:     new(MockRevalidationHook),
	}
	f.repos = &MockRepositories{orders: f.orders, vehicles: f.vehicles, drivers: f.drivers}
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orders.AssertExpectations(t)
	f.vehicles.AssertExpectations(t)
	f.drivers.AssertExpectations(t)
	f.hook.AssertExpectations(t)
}

func resourceStates(t *testing.T, policy services.HoldPolicy) services.ResourceStates {
	t.Helper()
	states, err := services.NewResourceStates(policy)
	require.NoError(t, err)
	return states
}

func newTestVehicle(t *testing.T, status vehicle.Status) *vehicle.Vehicle {
	t.Helper()
	rate, err := kernel.MoneyFromString("300000")
	require.NoError(t, err)
	v, err := vehicle.RestoreVehicle(kernel.NewUUID(), "Toyota Avanza", "B 1234 XYZ", rate, status)
	require.NoError(t, err)
	return v
}

func newTestDriver(t *testing.T, status driver.Status) *driver.Driver {
	t.Helper()
	d, err := driver.RestoreDriver(kernel.NewUUID(), "Budi Santoso", "+62 811 2222 3333", status)
	require.NoError(t, err)
	return d
}

func newTestOrder(
	t *testing.T,
	vehicleID kernel.UUID,
	serviceType order.ServiceType,
	status order.Status,
	driverID *kernel.UUID,
) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Ayu Lestari", "+62 812 5555 0101", "ayu@example.com")
	require.NoError(t, err)
	period, err := order.NewRentalPeriod(time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC), 2)
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("600000")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.Snapshot{
		ID:          kernel.NewUUID(),
		VehicleID:   vehicleID,
		DriverID:    driverID,
		ServiceType: serviceType,
		Customer:    customer,
		Period:      period,
		Total:       total,
		Status:      status,
		Version:     1,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	return o
}

func idOf(id kernel.UUID) *kernel.UUID {
	return &id
}

func orderWithStatus(s order.Status) any {
	return mock.MatchedBy(func(o *order.Order) bool { return o.Status() == s })
}

func vehicleWithStatus(s vehicle.Status) any {
	return mock.MatchedBy(func(v *vehicle.Vehicle) bool { return v.Status() == s })
}

func driverWithStatus(id kernel.UUID, s driver.Status) any {
	return mock.MatchedBy(func(d *driver.Driver) bool { return d.ID().IsEqual(id) && d.Status() == s })
}
