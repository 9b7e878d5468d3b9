package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Hacnine/BestaTechnology-sub001/internal/cli"
	"github.com/Hacnine/BestaTechnology-sub001/internal/db"
	"github.com/Hacnine/BestaTechnology-sub001/internal/repository"
	"github.com/Hacnine/BestaTechnology-sub001/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tna/tna.db
	dbPath := os.Getenv("TNA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tna", "tna.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	cadRepo := repository.NewSQLiteCadRepo(database)
	sampleRepo := repository.NewSQLiteSampleRepo(database)
	bookingRepo := repository.NewSQLiteBookingRepo(database)
	trackingRepo := repository.NewSQLiteTrackingRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	planSvc := service.NewPlanService(planRepo, cadRepo, sampleRepo, bookingRepo, trackingRepo, uow)

	app := &cli.App{
		Plans:    planSvc,
		Bookings: service.NewBookingService(bookingRepo),
		Status:   service.NewStatusService(planSvc),
	}

	// Plain output when piped or redirected.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		os.Setenv("NO_COLOR", "1")
	}

	root := cli.NewRootCmd(app)
	return root.Execute()
}
