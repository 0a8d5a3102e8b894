package cmd

import (
	"fmt"
	"net"

	"rental/internal/adapters/in/http"
	"rental/internal/adapters/out/objectstore"
	"rental/internal/adapters/out/pagecache"
	"rental/internal/adapters/out/postgres"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/jobs"
	"rental/internal/pkg/logging"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	repos      *postgres.Repositories
	uowFactory *postgres.GormUnitOfWorkFactory
	states     services.ResourceStates
	pricer     services.RentalPricer
	hook       ports.RevalidationHook
	storage    ports.ObjectStorage
	proxies    []*net.IPNet
	logger     zerolog.Logger
}

// NewCompositionRoot wires the domain services. The revalidation hook and the
// object storage are attached separately because only the server needs them.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger zerolog.Logger) (*CompositionRoot, error) {
	policy, err := services.ParseHoldPolicy(cfg.VehicleHoldPolicy)
	if err != nil {
		return nil, fmt.Errorf("VEHICLE_HOLD_POLICY: %w", err)
	}
	states, err := services.NewResourceStates(policy)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.MoneyFromString(cfg.DriverDailyFee)
	if err != nil {
		return nil, fmt.Errorf("DRIVER_DAILY_FEE: %w", err)
	}
	proxies, err := cfg.TrustedProxyNets()
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		repos:      postgres.NewRepositories(gormDB),
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		states:     states,
		pricer:     services.NewRentalPricer(fee),
		proxies:    proxies,
		logger:     logger,
	}, nil
}

// WithRevalidation sends cache invalidations to Redis.
func (c *CompositionRoot) WithRevalidation(client *redis.Client) *CompositionRoot {
	c.hook = pagecache.NewRevalidator(client)
	return c
}

func (c *CompositionRoot) WithObjectStorage(storage *objectstore.Storage) *CompositionRoot {
	c.storage = storage
	return c
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.states, c.pricer, c.hook, logging.Component(c.logger, "order_placement"))
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.repos, c.states, c.hook, logging.Component(c.logger, "order_coordinator"))
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.repos, c.states, c.hook, logging.Component(c.logger, "driver_assignment"))
}

func (c *CompositionRoot) CreateAttachPaymentProofCommandHandler() commands.AttachPaymentProofCommandHandler {
	return commands.NewAttachPaymentProofCommandHandler(c.repos, c.storage, c.hook, logging.Component(c.logger, "payment_proof"))
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileResourcesCommandHandler() commands.ReconcileResourcesCommandHandler {
	return commands.NewReconcileResourcesCommandHandler(c.repos, c.states, logging.Component(c.logger, "reconciliation"))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Config{
		AdminUsername:     c.cfg.AdminUsername,
		AdminPasswordHash: c.cfg.AdminPasswordHash,
		SessionSecret:     c.cfg.SessionSecret,
		SessionTTL:        c.cfg.SessionTTL,
		SecureCookie:      c.cfg.SessionSecureCookie,
		BookingRPS:        c.cfg.BookingRateLimitRPS,
		BookingBurst:      c.cfg.BookingRateLimitBurst,
		TrustedProxies:    c.proxies,
		MaxUploadBytes:    c.cfg.MaxUploadBytes,
	}, http.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		AttachPaymentProof: c.CreateAttachPaymentProofCommandHandler(),
		TransitionOrder:    c.CreateTransitionOrderCommandHandler(),
		AssignDriver:       c.CreateAssignDriverCommandHandler(),
		CreateVehicle:      c.CreateCreateVehicleCommandHandler(),
		CreateDriver:       c.CreateCreateDriverCommandHandler(),
		ReconcileResources: c.CreateReconcileResourcesCommandHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		ListVehicles:       c.CreateListVehiclesQueryHandler(),
		ListDrivers:        c.CreateListDriversQueryHandler(),
	}, logging.Component(c.logger, "http"))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.Config{ReconcileSpec: c.cfg.ReconcileCron}, c.CreateReconcileResourcesCommandHandler(), c.logger)
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
