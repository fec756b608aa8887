package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/andrisyafri/facilops/internal/cli"
	"github.com/andrisyafri/facilops/internal/config"
	"github.com/andrisyafri/facilops/internal/db"
	"github.com/andrisyafri/facilops/internal/repository"
	"github.com/andrisyafri/facilops/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("FACILOPS_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Drop colors when writing to a pipe or when disabled by config.
	if !cfg.Color || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	companyRepo := repository.NewSQLiteCompanyRepo(database)
	employeeRepo := repository.NewSQLiteEmployeeRepo(database)
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	jobLogRepo := repository.NewSQLiteJobLogRepo(database)
	completedRepo := repository.NewSQLiteCompletedJobRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Companies:  service.NewCompanyService(companyRepo, catalogRepo),
		Employees:  service.NewEmployeeService(employeeRepo),
		Catalog:    service.NewCatalogService(catalogRepo),
		Jobs:       service.NewJobService(companyRepo, jobLogRepo, uow, observer),
		Calendar:   service.NewCalendarService(companyRepo, completedRepo, jobLogRepo, observer),
		ActiveJobs: service.NewActiveJobsService(companyRepo, completedRepo, jobLogRepo, observer),
		Loc:        cfg.Location(),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
