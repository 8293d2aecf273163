package cli

import (
	"log/slog"

	"github.com/adrianistaken/time-tracker/internal/repository"
	"github.com/adrianistaken/time-tracker/internal/server"
	"github.com/adrianistaken/time-tracker/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all collaborators used by CLI commands.
type App struct {
	Projects service.ProjectService
	Sessions service.SessionService
	Stats    service.StatsService
	Users    repository.UserRepo
	Seeder   *service.Seeder
	Server   *server.Server
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal; the focus view
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "timetracker" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "timetracker",
		Short: "Personal time tracking server and terminal client",
	}

	root.AddCommand(
		newServeCmd(app),
		newSeedCmd(app),
		newFocusCmd(app),
		newProjectCmd(app),
	)

	return root
}
