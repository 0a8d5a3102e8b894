package order

import (
	"fmt"
	"strings"

	"rental/internal/pkg/errs"
)

// ServiceType is the kind of rental the customer booked.
type ServiceType int

const (
	UnknownService ServiceType = iota
	// SelfDrive rents the vehicle only.
	SelfDrive
	// WithDriver rents the vehicle with a chauffeur.
	WithDriver
	// AllInclusive rents the vehicle with a chauffeur, fuel and tolls.
	AllInclusive
)

var serviceTypeNames = map[ServiceType]string{
	SelfDrive:    "self_drive",
	WithDriver:   "with_driver",
	AllInclusive: "all_inclusive",
}

func ParseServiceType(s string) (ServiceType, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for st, name := range serviceTypeNames {
		if name == needle {
			return st, nil
		}
	}
	return UnknownService, errs.NewValueIsInvalidErrorWithCause("service type", fmt.Errorf("%q is not a valid service type", s))
}

func (t ServiceType) Validate() error {
	if _, ok := serviceTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service type", fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

func (t ServiceType) String() string {
	if name, ok := serviceTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// RequiresDriver reports whether a driver must be assigned to the booking.
func (t ServiceType) RequiresDriver() bool {
	return t == WithDriver || t == AllInclusive
}
