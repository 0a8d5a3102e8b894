// Package errs provides the typed errors shared by the rental domain model,
// the persistence adapters and the application layer.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ...) with a struct carrying the details. The struct unwraps to its
// sentinel, so callers branch with errors.Is and read details with
// errors.As:
//
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    log.Printf("missing %s %v", notFound.ParamName, notFound.ID)
//	}
package errs
