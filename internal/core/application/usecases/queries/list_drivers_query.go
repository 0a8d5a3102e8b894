package queries

import (
	"errors"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery lists drivers by name. With availableOnly set, drivers
// on duty are left out, which is what the assignment picker needs.
type ListDriversQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

func NewListDriversQuery(availableOnly bool) ListDriversQuery {
	return ListDriversQuery{availableOnly: availableOnly, guard: guard.NewConstructorGuard()}
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

func (q ListDriversQuery) AvailableOnly() bool {
	return q.availableOnly
}

type ListDriversQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Phone  string
	Status driver.Status
}
