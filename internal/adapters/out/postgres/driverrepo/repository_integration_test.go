package driverrepo_test

import (
	"context"
	"testing"

	"rental/internal/adapters/out/postgres"
	"rental/internal/adapters/out/postgres/driverrepo"
	"rental/internal/adapters/out/postgres/pgtest"
	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
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

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, vehicles, drivers").Error)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAddGetUpdate() {
	ctx := context.Background()
	d := pgtest.Driver(suite.T(), "Budi")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(d.ChangeStatus(driver.OnDuty))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal("Budi", loaded.Name())
	suite.Equal(driver.OnDuty, loaded.Status())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Update(ctx, pgtest.Driver(suite.T(), "Ghost"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAll() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, pgtest.Driver(suite.T(), "Wayan")))
	suite.Require().NoError(suite.repository.Add(ctx, pgtest.Driver(suite.T(), "Agus")))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("Agus", all[0].Name())
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
