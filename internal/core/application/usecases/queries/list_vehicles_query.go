package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery lists the fleet for the storefront and the admin
// console, ordered by name.
type ListVehiclesQuery struct {
	guard guard.ConstructorGuard
}

func NewListVehiclesQuery() ListVehiclesQuery {
	return ListVehiclesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

type ListVehiclesQueryResponse struct {
	ID          kernel.UUID
	Name        string
	PlateNumber string
	DailyRate   kernel.Money
	Status      vehicle.Status
}
