package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpin "rental/internal/adapters/in/http"
	"rental/internal/adapters/out/objectstore"
	"rental/internal/adapters/out/pagecache"
	"rental/internal/adapters/out/postgres"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/metrics"
	"rental/internal/pkg/logging"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewRootCommand builds the rental CLI:
//
//	rental serve                 # HTTP server and scheduled jobs
//	rental migrate               # create or update the schema
//	rental reconcile [--dry-run] # one reconciliation pass
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "rental",
		Short:        "Vehicle rental booking service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server and the scheduled jobs",
			RunE: func(c *cobra.Command, _ []string) error {
				return runServe(c.Context(), envFile)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(c *cobra.Command, _ []string) error {
				return runMigrate(c.Context(), envFile)
			},
		},
		newReconcileCommand(&envFile),
	)
	return root
}

func newReconcileCommand(envFile *string) *cobra.Command {
	var dryRun bool
	c := &cobra.Command{
		Use:   "reconcile",
		Short: "Repair vehicle and driver statuses that drifted from their orders",
		RunE: func(c *cobra.Command, _ []string) error {
			return runReconcile(c.Context(), *envFile, dryRun)
		},
	}
	c.Flags().BoolVar(&dryRun, "dry-run", false, "report drift without writing")
	return c
}

func bootstrap(envFile string) (Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := LoadConfig(envFile)
	if err != nil {
		return Config{}, zerolog.Nop(), nil, err
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return Config{}, logger, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, logger, db, nil
}

func runMigrate(ctx context.Context, envFile string) error {
	_, logger, db, err := bootstrap(envFile)
	if err != nil {
		return err
	}
	if err = postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	logger.Info().Msg("schema migrated")
	return nil
}

func runReconcile(ctx context.Context, envFile string, dryRun bool) error {
	cfg, logger, db, err := bootstrap(envFile)
	if err != nil {
		return err
	}
	root, err := NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}

	report, err := root.CreateReconcileResourcesCommandHandler().Handle(ctx, commands.NewReconcileResourcesCommand(dryRun))
	logger.Info().
		Bool("dry_run", dryRun).
		Int("vehicles_checked", report.VehiclesChecked).
		Int("drivers_checked", report.DriversChecked).
		Int("vehicles_repaired", report.VehiclesRepaired).
		Int("drivers_repaired", report.DriversRepaired).
		Strs("conflicts", report.Conflicts).
		Msg("reconciliation report")
	return err
}

func runServe(ctx context.Context, envFile string) error {
	cfg, logger, db, err := bootstrap(envFile)
	if err != nil {
		return err
	}
	if err = cfg.ValidateForServe(); err != nil {
		return err
	}

	storage, err := objectstore.New(objectstore.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
	})
	if err != nil {
		return err
	}
	redisClient := pagecache.NewClient(pagecache.Config{
		Address:  cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	root, err := NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}
	root.WithRevalidation(redisClient).WithObjectStorage(storage)

	metrics.Register()

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := httpin.NewEcho(root.CreateHTTPServer())
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("http server starting")
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info().Msg("http server shutting down")
	return e.Shutdown(shutdownCtx)
}
