package vehiclerepo_test

import (
	"context"
	"testing"

	"rental/internal/adapters/out/postgres"
	"rental/internal/adapters/out/postgres/pgtest"
	"rental/internal/adapters/out/postgres/vehiclerepo"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type VehicleRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *vehiclerepo.GormVehicleRepository
}

func (suite *VehicleRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(ctx, db))
}

func (suite *VehicleRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, vehicles, drivers").Error)
	suite.repository = vehiclerepo.NewGormVehicleRepository(suite.db)
}

func (suite *VehicleRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestAddGetUpdate() {
	ctx := context.Background()
	v := pgtest.Vehicle(suite.T(), "b 1234 xyz")
	suite.Require().NoError(suite.repository.Add(ctx, v))

	loaded, err := suite.repository.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal("B 1234 XYZ", loaded.PlateNumber())
	suite.Equal("350000.00", loaded.DailyRate().String())
	suite.Equal(vehicle.Available, loaded.Status())

	suite.Require().NoError(loaded.ChangeStatus(vehicle.Reserved))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.GetForUpdate(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal(vehicle.Reserved, reloaded.Status())
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestDuplicatePlateIsRejected() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, pgtest.Vehicle(suite.T(), "B 1 A")))

	err := suite.repository.Add(ctx, pgtest.Vehicle(suite.T(), "b 1 a"))

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetForUpdate(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Update(ctx, pgtest.Vehicle(suite.T(), "B 9 Z"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *VehicleRepositoryIntegrationTestSuite) TestGetAll_OrderedByName() {
	ctx := context.Background()
	a := pgtest.Vehicle(suite.T(), "B 2 B")
	b := pgtest.Vehicle(suite.T(), "B 1 A")
	suite.Require().NoError(suite.repository.Add(ctx, a))
	suite.Require().NoError(suite.repository.Add(ctx, b))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("B 1 A", all[0].PlateNumber())
}

func TestVehicleRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(VehicleRepositoryIntegrationTestSuite))
}
