package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/itinerolabs/itinero/internal/cli"
	"github.com/itinerolabs/itinero/internal/db"
	"github.com/itinerolabs/itinero/internal/planner"
	"github.com/itinerolabs/itinero/internal/repository"
	"github.com/itinerolabs/itinero/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.itinero/itinero.db
	dbPath := os.Getenv("ITINERO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".itinero", "itinero.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Upstream planner client
	cfg, err := planner.LoadConfig()
	if err != nil {
		return err
	}
	var observer planner.Observer = planner.NoopObserver{}
	if cfg.LogCalls {
		observer = planner.NewLogObserver(os.Stderr)
	}
	client := planner.NewClient(cfg, observer)

	// Wire repositories and services
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	sessionSvc := service.NewSessionService(sessionRepo)
	planSvc := service.NewPlanService(client, sessionSvc)

	app := &cli.App{
		Sessions: sessionSvc,
		Plans:    planSvc,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
