package http

import (
	"net/http"
	"strconv"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/metrics"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/admin/orders?status=pending.
func (s *Server) ListOrders(c echo.Context) error {
	var filter []order.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		filter = append(filter, status)
	}

	query, err := queries.NewListOrdersQuery(filter...)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to retrieve orders"})
	}
	return c.JSON(http.StatusOK, orderListResponse(orders))
}

// TransitionOrder handles POST /api/admin/orders/:id/transition.
func (s *Server) TransitionOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	var req TransitionRequest
	if ok, bindErr := bindAndValidate(c, &req); !ok {
		return bindErr
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target)
	if err != nil {
		return s.respondError(c, "transition_order", err)
	}

	o, err := s.handlers.TransitionOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "transition_order", err)
	}
	return s.respondOK(c, "transition_order", http.StatusOK, orderResponse(o))
}

// AssignDriver handles PUT /api/admin/orders/:id/driver.
func (s *Server) AssignDriver(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	var req AssignDriverRequest
	if ok, bindErr := bindAndValidate(c, &req); !ok {
		return bindErr
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return s.respondError(c, "assign_driver", err)
	}

	o, err := s.handlers.AssignDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "assign_driver", err)
	}
	return s.respondOK(c, "assign_driver", http.StatusOK, orderResponse(o))
}

// CreateVehicle handles POST /api/admin/vehicles.
func (s *Server) CreateVehicle(c echo.Context) error {
	var req CreateVehicleRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	rate, err := kernel.MoneyFromString(req.DailyRate)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewCreateVehicleCommand(req.Name, req.PlateNumber, rate)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	v, err := s.handlers.CreateVehicle.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "create_vehicle", err)
	}
	return s.respondOK(c, "create_vehicle", http.StatusCreated, vehicleResponse(v))
}

// ListDrivers handles GET /api/admin/drivers?available=true.
func (s *Server) ListDrivers(c echo.Context) error {
	availableOnly := false
	if raw := c.QueryParam("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "available must be a boolean"})
		}
		availableOnly = parsed
	}

	drivers, err := s.handlers.ListDrivers.Handle(c.Request().Context(), queries.NewListDriversQuery(availableOnly))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list drivers")
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to retrieve drivers"})
	}
	return c.JSON(http.StatusOK, driverListResponse(drivers))
}

// CreateDriver handles POST /api/admin/drivers.
func (s *Server) CreateDriver(c echo.Context) error {
	var req CreateDriverRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	cmd, err := commands.NewCreateDriverCommand(req.Name, req.Phone)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	d, err := s.handlers.CreateDriver.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, "create_driver", err)
	}
	return s.respondOK(c, "create_driver", http.StatusCreated, driverResponse(d))
}

// Reconcile handles POST /api/admin/reconcile?dry_run=true.
func (s *Server) Reconcile(c echo.Context) error {
	dryRun := false
	if raw := c.QueryParam("dry_run"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "dry_run must be a boolean"})
		}
		dryRun = parsed
	}

	report, err := s.handlers.ReconcileResources.Handle(c.Request().Context(), commands.NewReconcileResourcesCommand(dryRun))
	if err != nil {
		return s.respondError(c, "reconcile_resources", err)
	}
	if !dryRun {
		metrics.ObserveReconciliation(report.VehiclesRepaired, report.DriversRepaired, len(report.Conflicts))
	}
	return s.respondOK(c, "reconcile_resources", http.StatusOK, reconciliationResponse(dryRun, report))
}
