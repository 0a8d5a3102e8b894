package http

import (
	"errors"
	"net/http"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/metrics"
	"rental/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var notFound = []error{
	commands.ErrOrderNotFound,
	commands.ErrVehicleNotFound,
	commands.ErrDriverNotFound,
	errs.ErrObjectNotFound,
}

var invalidInput = []error{
	errs.ErrValueIsInvalid,
	errs.ErrValueIsRequired,
	errs.ErrValueIsOutOfRange,
}

// statusFor maps a handler error to an HTTP status through its outcome:
// rejections are 4xx, retry-safe failures 503, partial failures 502.
func statusFor(err error, outcome commands.Outcome) int {
	switch outcome {
	case commands.OutcomeSucceeded:
		return http.StatusOK
	case commands.OutcomeRejected:
		if isAny(err, notFound) {
			return http.StatusNotFound
		}
		if isAny(err, invalidInput) {
			return http.StatusUnprocessableEntity
		}
		return http.StatusConflict
	case commands.OutcomePartial:
		return http.StatusBadGateway
	}
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		return http.StatusConflict
	}
	return http.StatusServiceUnavailable
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// respondError classifies err, records the outcome and writes the body.
// A partial failure carries the last known-good order so the admin console
// can retry the same call.
func (s *Server) respondError(c echo.Context, command string, err error) error {
	outcome := commands.Classify(err)
	metrics.ObserveCommand(command, outcome.String())

	status := statusFor(err, outcome)
	body := ErrorResponse{Error: err.Error(), Outcome: outcome.String()}

	var partial *commands.PartialFailureError
	if errors.As(err, &partial) {
		if partial.Order != nil {
			o := orderResponse(partial.Order)
			body.Order = &o
		}
		body.Failed = failedWrites(partial.Failed)
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("command", command).Str("outcome", outcome.String()).Msg("command failed")
	}
	return c.JSON(status, body)
}

func (s *Server) respondOK(c echo.Context, command string, status int, body any) error {
	metrics.ObserveCommand(command, commands.OutcomeSucceeded.String())
	return c.JSON(status, body)
}
