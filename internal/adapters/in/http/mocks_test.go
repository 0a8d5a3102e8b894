package http

import (
	"context"
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAttachPaymentProofHandler struct{ mock.Mock }

func (m *MockAttachPaymentProofHandler) Handle(ctx context.Context, cmd commands.AttachPaymentProofCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockTransitionOrderHandler struct{ mock.Mock }

func (m *MockTransitionOrderHandler) Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAssignDriverHandler struct{ mock.Mock }

func (m *MockAssignDriverHandler) Handle(ctx context.Context, cmd commands.AssignDriverCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCreateVehicleHandler struct{ mock.Mock }

func (m *MockCreateVehicleHandler) Handle(ctx context.Context, cmd commands.CreateVehicleCommand) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, cmd)
	v, _ := args.Get(0).(*vehicle.Vehicle)
	return v, args.Error(1)
}

type MockCreateDriverHandler struct{ mock.Mock }

func (m *MockCreateDriverHandler) Handle(ctx context.Context, cmd commands.CreateDriverCommand) (*driver.Driver, error) {
	args := m.Called(ctx, cmd)
	d, _ := args.Get(0).(*driver.Driver)
	return d, args.Error(1)
}

type MockReconcileResourcesHandler struct{ mock.Mock }

func (m *MockReconcileResourcesHandler) Handle(ctx context.Context, cmd commands.ReconcileResourcesCommand) (commands.ReconciliationReport, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ReconciliationReport), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]queries.ListOrdersQueryResponse)
	return rows, args.Error(1)
}

type MockListVehiclesHandler struct{ mock.Mock }

func (m *MockListVehiclesHandler) Handle(ctx context.Context, query queries.ListVehiclesQuery) ([]queries.ListVehiclesQueryResponse, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]queries.ListVehiclesQueryResponse)
	return rows, args.Error(1)
}

type MockListDriversHandler struct{ mock.Mock }

func (m *MockListDriversHandler) Handle(ctx context.Context, query queries.ListDriversQuery) ([]queries.ListDriversQueryResponse, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]queries.ListDriversQueryResponse)
	return rows, args.Error(1)
}

type mocks struct {
	placeOrder    *MockPlaceOrderHandler
	attachProof   *MockAttachPaymentProofHandler
	transition    *MockTransitionOrderHandler
	assignDriver  *MockAssignDriverHandler
	createVehicle *MockCreateVehicleHandler
	createDriver  *MockCreateDriverHandler
	reconcile     *MockReconcileResourcesHandler
	listOrders    *MockListOrdersHandler
	listVehicles  *MockListVehiclesHandler
	listDrivers   *MockListDriversHandler
}

func newMocks() *mocks {
	return &mocks{
		placeOrder:    new(MockPlaceOrderHandler),
		attachProof:   new(MockAttachPaymentProofHandler),
		transition:    new(MockTransitionOrderHandler),
		assignDriver:  new(MockAssignDriverHandler),
		createVehicle: new(MockCreateVehicleHandler),
		createDriver:  new(MockCreateDriverHandler),
		reconcile:     new(MockReconcileResourcesHandler),
		listOrders:    new(MockListOrdersHandler),
		listVehicles:  new(MockListVehiclesHandler),
		listDrivers:   new(MockListDriversHandler),
	}
}

func (m *mocks) handlers() Handlers {
	return Handlers{
		PlaceOrder:         m.placeOrder,
		AttachPaymentProof: m.attachProof,
		TransitionOrder:    m.transition,
		AssignDriver:       m.assignDriver,
		CreateVehicle:      m.createVehicle,
		CreateDriver:       m.createDriver,
		ReconcileResources: m.reconcile,
		ListOrders:         m.listOrders,
		ListVehicles:       m.listVehicles,
		ListDrivers:        m.listDrivers,
	}
}

func (m *mocks) assertExpectations(t *testing.T) {
	m.placeOrder.AssertExpectations(t)
	m.attachProof.AssertExpectations(t)
	m.transition.AssertExpectations(t)
	m.assignDriver.AssertExpectations(t)
	m.createVehicle.AssertExpectations(t)
	m.createDriver.AssertExpectations(t)
	m.reconcile.AssertExpectations(t)
	m.listOrders.AssertExpectations(t)
	m.listVehicles.AssertExpectations(t)
	m.listDrivers.AssertExpectations(t)
}

func newTestOrder(t *testing.T, status order.Status, serviceType order.ServiceType, driverID *kernel.UUID) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Ayu Lestari", "+62 812 5555 0101", "ayu@example.com")
	require.NoError(t, err)
	period, err := order.NewRentalPeriod(time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC), 2)
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("700000")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.Snapshot{
		ID:          kernel.NewUUID(),
		VehicleID:   kernel.NewUUID(),
		DriverID:    driverID,
		ServiceType: serviceType,
		Customer:    customer,
		Period:      period,
		Total:       total,
		Status:      status,
		Version:     1,
		CreatedAt:   time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}
