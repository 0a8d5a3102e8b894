package services_test

import (
	"testing"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceStates_VehicleStatusFor(t *testing.T) {
	tests := []struct {
		policy   services.HoldPolicy
		status   order.Status
		expected vehicle.Status
	}{
		{services.HoldOnBooking, order.Pending, vehicle.Reserved},
		{services.HoldOnBooking, order.Approved, vehicle.Rented},
		{services.HoldOnBooking, order.Rejected, vehicle.Available},
		{services.HoldOnBooking, order.Completed, vehicle.Available},
		{services.HoldOnApproval, order.Pending, vehicle.Available},
		{services.HoldOnApproval, order.Approved, vehicle.Rented},
		{services.HoldOnApproval, order.Rejected, vehicle.Available},
		{services.HoldOnApproval, order.Completed, vehicle.Available},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String()+"/"+tt.status.String(), func(t *testing.T) {
			states, err := services.NewResourceStates(tt.policy)
			require.NoError(t, err)

			got, err := states.VehicleStatusFor(tt.status)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResourceStates_IsTotalOverValidStatuses(t *testing.T) {
	for _, policy := range []services.HoldPolicy{services.HoldOnBooking, services.HoldOnApproval} {
		states, err := services.NewResourceStates(policy)
		require.NoError(t, err)

		for _, s := range order.Statuses() {
			got, err := states.VehicleStatusFor(s)
			require.NoError(t, err)
			require.NoError(t, got.Validate())

			again, err := states.VehicleStatusFor(s)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		}
	}
}

func TestResourceStates_UnknownOrderStatus(t *testing.T) {
	states, err := services.NewResourceStates(services.HoldOnBooking)
	require.NoError(t, err)

	_, err = states.VehicleStatusFor(order.Unknown)
	require.Error(t, err)

	_, err = states.VehicleStatusFor(order.Status(99))
	require.Error(t, err)
}

func TestResourceStates_DriverStatusFor(t *testing.T) {
	states, err := services.NewResourceStates(services.HoldOnApproval)
	require.NoError(t, err)

	assert.Equal(t, driver.OnDuty, states.DriverStatusFor(true))
	assert.Equal(t, driver.Available, states.DriverStatusFor(false))
}

func TestNewResourceStates_InvalidPolicy(t *testing.T) {
	_, err := services.NewResourceStates(services.HoldPolicy(0))
	require.Error(t, err)
}

func TestParseHoldPolicy(t *testing.T) {
	p, err := services.ParseHoldPolicy("Approval")
	require.NoError(t, err)
	assert.Equal(t, services.HoldOnApproval, p)

	_, err = services.ParseHoldPolicy("whenever")
	require.Error(t, err)
}
