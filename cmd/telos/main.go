package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/telos/internal/cli"
	"github.com/alexanderramin/telos/internal/config"
	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/logging"
	"github.com/alexanderramin/telos/internal/repository"
	"github.com/alexanderramin/telos/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}

	app := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	var (
		configFile string
		database   *sql.DB
	)
	rootCmd := cli.NewRootCmd(app)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default "+config.ConfigDir()+"/config.yaml)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		// `telos seed` reports on seeding itself.
		database, err = wire(cmd.Context(), app, configFile, cmd.Name() != "seed")
		return err
	}
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	return rootCmd.ExecuteContext(context.Background())
}

// wire loads configuration, opens the database and fills in the App's
// services. It runs once, before any subcommand.
func wire(ctx context.Context, app *cli.App, configFile string, autoSeed bool) (*sql.DB, error) {
	v, err := config.New(configFile)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	driverRepo := repository.NewSQLiteDriverRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	scenarioRepo := repository.NewSQLiteScenarioRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)

	app.Drivers = service.NewDriverService(driverRepo, observer)
	app.Projects = service.NewProjectService(projectRepo, driverRepo, uow)
	app.Resources = service.NewResourceService(resourceRepo)
	app.Tasks = service.NewTaskService(taskRepo, projectRepo, resourceRepo)
	app.Alignment = service.NewAlignmentService(driverRepo, projectRepo)
	app.Leveling = service.NewLevelingService(projectRepo, resourceRepo, taskRepo, uow, observer)
	app.Scenario = service.NewScenarioService(projectRepo, scenarioRepo, uow, observer)
	app.Export = service.NewExportService(driverRepo, projectRepo, resourceRepo, taskRepo)
	app.Import = service.NewImportService(uow, observer)
	app.Seed = service.NewSeedService(uow, observer)
	app.Config = cfg
	app.Log = logger

	if cfg.Seed.OnEmpty && autoSeed {
		result, err := app.Seed.SeedIfEmpty(ctx)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("seeding sample portfolio: %w", err)
		}
		if result.Seeded {
			logger.Debug().Str("db", cfg.Database.Path).Msg("seeded sample portfolio")
		}
	}

	return database, nil
}
