package commands

import (
	"errors"
	"fmt"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrDriverNotFound     = errors.New("driver not found")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrDriverUnavailable  = errors.New("driver is unavailable")
	ErrVehicleUnavailable = errors.New("vehicle is unavailable")
	ErrOrderTerminal      = errors.New("order is terminal")

	// ErrPersistence means a write failed before anything was committed.
	// Retrying the whole operation is safe.
	ErrPersistence = errors.New("persistence failure")

	// ErrPartialFailure means the order write committed but at least one
	// resource write did not. Re-invoking the same call converges.
	ErrPartialFailure = errors.New("partial failure")
)

// PersistenceError wraps a failed read or the failed first write of an
// operation. Nothing was changed.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence, e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Cause}
}

// FailedWrite names one resource write that did not go through.
type FailedWrite struct {
	Resource string
	ID       kernel.UUID
	Target   string
	Cause    error
}

func (w FailedWrite) String() string {
	return fmt.Sprintf("%s %s -> %s: %v", w.Resource, w.ID, w.Target, w.Cause)
}

// PartialFailureError carries the last known-good order (nil for
// reconciliation) and every write that failed after it.
type PartialFailureError struct {
	Order  *order.Order
	Failed []FailedWrite
}

func (e *PartialFailureError) Error() string {
	var b strings.Builder
	b.WriteString(ErrPartialFailure.Error())
	if e.Order != nil {
		fmt.Fprintf(&b, ": order %s is %s", e.Order.ID(), e.Order.Status())
	}
	for _, w := range e.Failed {
		b.WriteString("; ")
		b.WriteString(w.String())
	}
	return b.String()
}

func (e *PartialFailureError) Unwrap() error {
	return ErrPartialFailure
}

// Outcome tells a caller what to do about an error.
type Outcome int

const (
	// OutcomeSucceeded is returned for a nil error.
	OutcomeSucceeded Outcome = iota
	// OutcomeRejected: a precondition failed, nothing was written, do not retry.
	OutcomeRejected
	// OutcomeNothingHappened: nothing was written, retrying the operation is safe.
	OutcomeNothingHappened
	// OutcomePartial: some writes committed, repeat the same call to converge.
	OutcomePartial
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeRejected:
		return "rejected"
	case OutcomeNothingHappened:
		return "nothing_happened"
	case OutcomePartial:
		return "partial"
	}
	return "unknown"
}

var rejections = []error{
	ErrOrderNotFound,
	ErrVehicleNotFound,
	ErrDriverNotFound,
	ErrInvalidTransition,
	ErrDriverUnavailable,
	ErrVehicleUnavailable,
	ErrOrderTerminal,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsRequired,
	errs.ErrValueIsOutOfRange,
	errs.ErrObjectNotFound,
}

// Classify maps any error returned by a handler in this package to an
// Outcome. Errors outside the taxonomy are treated as OutcomeNothingHappened.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeSucceeded
	}
	if errors.Is(err, ErrPartialFailure) {
		return OutcomePartial
	}
	if errors.Is(err, ErrPersistence) {
		return OutcomeNothingHappened
	}
	for _, target := range rejections {
		if errors.Is(err, target) {
			return OutcomeRejected
		}
	}
	return OutcomeNothingHappened
}

// loadError turns a repository read failure into the taxonomy: a missing
// object becomes notFound, anything else a PersistenceError.
func loadError(notFound error, op string, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", notFound, err)
	}
	return &PersistenceError{Op: op, Cause: err}
}
