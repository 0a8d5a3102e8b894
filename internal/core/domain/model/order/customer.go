package order

import (
	"errors"
	"strings"
	"time"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

const (
	MinRentalDays = 1
	MaxRentalDays = 30
)

var (
	ErrCustomerIsNotConstructed     = errors.New("Customer must be created via NewCustomer constructor")
	ErrRentalPeriodIsNotConstructed = errors.New("RentalPeriod must be created via NewRentalPeriod constructor")
)

// Customer is the contact who placed the booking. Informational only.
type Customer struct { //nolint:recvcheck // value object
	name  string
	phone string
	email string
	guard guard.ConstructorGuard
}

func NewCustomer(name, phone, email string) (Customer, error) {
	name, phone, email = strings.TrimSpace(name), strings.TrimSpace(phone), strings.TrimSpace(email)

	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer name"))
	}
	if phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer phone"))
	}
	if err := errors.Join(errList...); err != nil {
		return Customer{}, err
	}

	return Customer{name: name, phone: phone, email: email, guard: guard.NewConstructorGuard()}, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Phone() string {
	return c.phone
}

// Email is optional and may be empty.
func (c Customer) Email() string {
	return c.email
}

// RentalPeriod is the booked date range, counted in whole days.
type RentalPeriod struct { //nolint:recvcheck // value object
	start time.Time
	days  int
	guard guard.ConstructorGuard
}

// NewRentalPeriod truncates start to its calendar date (UTC).
func NewRentalPeriod(start time.Time, days int) (RentalPeriod, error) {
	if start.IsZero() {
		return RentalPeriod{}, errs.NewValueIsRequiredError("start date")
	}
	if days < MinRentalDays || days > MaxRentalDays {
		return RentalPeriod{}, errs.NewValueIsOutOfRangeError("days", days, MinRentalDays, MaxRentalDays)
	}

	y, m, d := start.UTC().Date()
	return RentalPeriod{
		start: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		days:  days,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (p RentalPeriod) Validate() error {
	return p.guard.Validate(ErrRentalPeriodIsNotConstructed)
}

// Start returns the first rental day.
func (p RentalPeriod) Start() time.Time {
	return p.start
}

func (p RentalPeriod) Days() int {
	return p.days
}

// End is the date the vehicle is due back.
func (p RentalPeriod) End() time.Time {
	return p.start.AddDate(0, 0, p.days)
}
