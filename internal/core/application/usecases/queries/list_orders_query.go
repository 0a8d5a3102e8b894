// Package queries contains the read side of the rental system. Handlers read
// straight from the database with raw SQL into flat response structs and
// never load aggregates.
package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists bookings for the admin console, newest first,
// optionally restricted to one status.
//
// Example:
//
//	query, _ := NewListOrdersQuery(order.Pending)
//	pending, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts at most one status filter; no argument lists
// every order.
func NewListOrdersQuery(status ...order.Status) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if len(status) == 0 {
		return q, nil
	}
	if len(status) > 1 {
		return ListOrdersQuery{}, errors.New("at most one status filter is supported")
	}
	if err := status[0].Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	s := status[0]
	q.status = &s
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter, or nil when every status is listed.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

type ListOrdersQueryResponse struct {
	ID              kernel.UUID
	VehicleID       kernel.UUID
	VehicleName     string
	PlateNumber     string
	DriverID        *kernel.UUID
	DriverName      string
	ServiceType     order.ServiceType
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	StartDate       time.Time
	Days            int
	Total           kernel.Money
	PaymentProofURL string
	Status          order.Status
	CreatedAt       time.Time
}
