package services

import (
	"fmt"
	"strings"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"
)

// HoldPolicy decides when a booking takes its vehicle out of the available
// pool.
type HoldPolicy int

const (
	// HoldOnBooking reserves the vehicle as soon as the booking is placed and
	// marks it rented on approval.
	HoldOnBooking HoldPolicy = iota + 1

	// HoldOnApproval leaves the vehicle available while the booking is
	// pending and marks it rented on approval. Double booking is still
	// prevented by the active-order check at placement.
	HoldOnApproval
)

var holdPolicyNames = map[HoldPolicy]string{
	HoldOnBooking:  "booking",
	HoldOnApproval: "approval",
}

// ParseHoldPolicy accepts "booking" and "approval".
func ParseHoldPolicy(s string) (HoldPolicy, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for p, name := range holdPolicyNames {
		if name == needle {
			return p, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("hold policy", fmt.Errorf("%q is not a valid hold policy", s))
}

func (p HoldPolicy) String() string {
	if name, ok := holdPolicyNames[p]; ok {
		return name
	}
	return "unknown"
}

// ResourceStates is the resource state machine: a total function from order
// status to vehicle status and from assignment to driver status.
type ResourceStates struct {
	onPending  vehicle.Status
	onApproved vehicle.Status
}

// NewResourceStates builds the state machine for a hold policy.
func NewResourceStates(policy HoldPolicy) (ResourceStates, error) {
	switch policy {
	case HoldOnBooking:
		return ResourceStates{onPending: vehicle.Reserved, onApproved: vehicle.Rented}, nil
	case HoldOnApproval:
		return ResourceStates{onPending: vehicle.Available, onApproved: vehicle.Rented}, nil
	default:
		return ResourceStates{}, errs.NewValueIsInvalidErrorWithCause(
			"hold policy", fmt.Errorf("%d is not a valid hold policy", policy))
	}
}

// VehicleStatusFor returns the status a vehicle must have while its order is
// in s. Terminal statuses release the vehicle.
func (r ResourceStates) VehicleStatusFor(s order.Status) (vehicle.Status, error) {
	switch s {
	case order.Pending:
		return r.onPending, nil
	case order.Approved:
		return r.onApproved, nil
	case order.Rejected, order.Completed:
		return vehicle.Available, nil
	case order.Unknown:
	}
	return vehicle.Unknown, s.Validate()
}

// DriverStatusFor returns the status of a driver who does or does not hold
// an active assignment.
func (r ResourceStates) DriverStatusFor(hasActiveAssignment bool) driver.Status {
	if hasActiveAssignment {
		return driver.OnDuty
	}
	return driver.Available
}
