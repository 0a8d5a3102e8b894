// Package http exposes the rental use cases over HTTP with echo.
//
// Public routes serve the storefront (fleet listing, booking, payment-proof
// upload). Admin routes require the session cookie issued by the login
// endpoint.
package http

import (
	"context"
	"net"
	"net/http"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
	}
	AttachPaymentProofHandler interface {
		Handle(ctx context.Context, cmd commands.AttachPaymentProofCommand) (*order.Order, error)
	}
	TransitionOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error)
	}
	AssignDriverHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDriverCommand) (*order.Order, error)
	}
	CreateVehicleHandler interface {
		Handle(ctx context.Context, cmd commands.CreateVehicleCommand) (*vehicle.Vehicle, error)
	}
	CreateDriverHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDriverCommand) (*driver.Driver, error)
	}
	ReconcileResourcesHandler interface {
		Handle(ctx context.Context, cmd commands.ReconcileResourcesCommand) (commands.ReconciliationReport, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error)
	}
	ListVehiclesHandler interface {
		Handle(ctx context.Context, query queries.ListVehiclesQuery) ([]queries.ListVehiclesQueryResponse, error)
	}
	ListDriversHandler interface {
		Handle(ctx context.Context, query queries.ListDriversQuery) ([]queries.ListDriversQueryResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	PlaceOrder         PlaceOrderHandler
	AttachPaymentProof AttachPaymentProofHandler
	TransitionOrder    TransitionOrderHandler
	AssignDriver       AssignDriverHandler
	CreateVehicle      CreateVehicleHandler
	CreateDriver       CreateDriverHandler
	ReconcileResources ReconcileResourcesHandler
	ListOrders         ListOrdersHandler
	ListVehicles       ListVehiclesHandler
	ListDrivers        ListDriversHandler
}

type Config struct {
	AdminUsername     string
	AdminPasswordHash string
	SessionSecret     string
	SessionTTL        time.Duration
	SecureCookie      bool

	// BookingRPS and BookingBurst limit booking requests per client IP.
	BookingRPS   float64
	BookingBurst int

	// TrustedProxies may set X-Forwarded-For. When empty the client IP is
	// the peer address.
	TrustedProxies []*net.IPNet

	MaxUploadBytes int64
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	sessions *SessionManager
	limiter  echo.MiddlewareFunc
	cfg      Config
	logger   zerolog.Logger
}

func NewServer(cfg Config, handlers Handlers, logger zerolog.Logger) *Server {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 5 << 20
	}

	return &Server{
		handlers: handlers,
		sessions: NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookie),
		limiter:  bookingLimiter(cfg.BookingRPS, cfg.BookingBurst),
		cfg:      cfg,
		logger:   logger,
	}
}

// NewEcho builds an echo instance with middleware and every route registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.IPExtractor = clientIPExtractor(s.cfg.TrustedProxies)

	e.Use(middleware.Recover())
	e.Use(requestLogger(s.logger))
	e.Use(requestMetrics())

	s.Register(e)
	return e
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/fleet", s.ListFleet)
	api.POST("/bookings", s.PlaceBooking, s.limiter)
	api.POST("/bookings/:id/payment-proof", s.AttachPaymentProof)

	admin := api.Group("/admin")
	admin.POST("/login", s.Login)
	admin.POST("/logout", s.Logout)

	secured := admin.Group("", s.sessions.RequireAdmin())
	secured.GET("/orders", s.ListOrders)
	secured.POST("/orders/:id/transition", s.TransitionOrder)
	secured.PUT("/orders/:id/driver", s.AssignDriver)
	secured.POST("/vehicles", s.CreateVehicle)
	secured.GET("/drivers", s.ListDrivers)
	secured.POST("/drivers", s.CreateDriver)
	secured.POST("/reconcile", s.Reconcile)
}
