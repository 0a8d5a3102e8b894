package order

import (
	"errors"
	"fmt"
	"strings"

	"rental/internal/pkg/errs"
)

// ErrTransitionIsNotAllowed is wrapped by every rejected status change.
var ErrTransitionIsNotAllowed = errors.New("order status transition is not allowed")

// Status represents the lifecycle state of an order.
//
//	Pending ──┬──> Approved ──> Completed
//	          │
//	          └──> Rejected
//
// Rejected and Completed are terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Approved
	Rejected
	Completed
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Approved:  "approved",
	Rejected:  "rejected",
	Completed: "completed",
}

// transitions lists, for every non-terminal status, the statuses it may move to.
var transitions = map[Status][]Status{
	Pending:  {Approved, Rejected},
	Approved: {Completed},
}

// ParseStatus converts the wire name of a status ("pending", "approved", ...).
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Approved, Rejected, Completed}
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsActive reports whether the order still holds its vehicle (and driver).
func (s Status) IsActive() bool {
	return s == Pending || s == Approved
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed
}

// CanTransitionTo checks target against the transition table without
// changing anything.
func (s Status) CanTransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrTransitionIsNotAllowed, err)
	}
	for _, allowed := range transitions[s] {
		if allowed == target {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrTransitionIsNotAllowed, s, target)
}
