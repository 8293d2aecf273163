package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/adrianistaken/time-tracker/internal/cli"
	"github.com/adrianistaken/time-tracker/internal/db"
	"github.com/adrianistaken/time-tracker/internal/repository"
	"github.com/adrianistaken/time-tracker/internal/server"
	"github.com/adrianistaken/time-tracker/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.timetracker/timetracker.db
	dbPath := os.Getenv("TIMETRACKER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".timetracker", "timetracker.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(os.Stderr)
	projectSvc := service.NewProjectService(projectRepo)
	sessionSvc := service.NewSessionService(sessionRepo, projectRepo, uow, observer)
	statsSvc := service.NewStatsService(sessionRepo, projectRepo, observer)

	app := &cli.App{
		Projects: projectSvc,
		Sessions: sessionSvc,
		Stats:    statsSvc,
		Users:    userRepo,
		Seeder:   service.NewSeeder(userRepo, projectRepo, sessionRepo, rng),
		Server:   server.New(projectSvc, sessionSvc, statsSvc, userRepo, rng, logger),
		Logger:   logger,
	}

	// Detect interactive terminal for the focus view and forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
