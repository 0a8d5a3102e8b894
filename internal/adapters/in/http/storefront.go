package http

import (
	"errors"
	"net/http"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ListFleet handles GET /api/fleet.
func (s *Server) ListFleet(c echo.Context) error {
	vehicles, err := s.handlers.ListVehicles.Handle(c.Request().Context(), queries.NewListVehiclesQuery())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list fleet")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to retrieve fleet"})
	}
	return c.JSON(http.StatusOK, vehicleListResponse(vehicles))
}

// PlaceBooking handles POST /api/bookings.
func (s *Server) PlaceBooking(c echo.Context) error {
	var req BookingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cmd, err := bookingCommand(req)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	o, err := s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "place_order", err)
	}
	return s.respondOK(c, "place_order", http.StatusCreated, orderResponse(o))
}

func bookingCommand(req BookingRequest) (commands.PlaceOrderCommand, error) {
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	serviceType, err := order.ParseServiceType(req.ServiceType)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	customer, err := order.NewCustomer(req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	period, err := order.NewRentalPeriod(start, req.Days)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	return commands.NewPlaceOrderCommand(kernel.NewUUID(), vehicleID, serviceType, customer, period)
}

// AttachPaymentProof handles POST /api/bookings/:id/payment-proof with the
// receipt in the multipart field "file".
func (s *Server) AttachPaymentProof(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	if c.Request().ContentLength > s.cfg.MaxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file is too large"})
	}
	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, s.cfg.MaxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file is too large"})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
	}
	if fh.Size > s.cfg.MaxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file is too large"})
	}

	file, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read file"})
	}
	defer file.Close()

	cmd, err := commands.NewAttachPaymentProofCommand(orderID, fh.Filename, file)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	o, err := s.handlers.AttachPaymentProof.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "attach_payment_proof", err)
	}
	return s.respondOK(c, "attach_payment_proof", http.StatusOK, orderResponse(o))
}
