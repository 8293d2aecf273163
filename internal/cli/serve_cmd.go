package cli

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the time tracker HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Login needs the default user to exist.
			if _, err := app.Seeder.EnsureDefaultUser(cmd.Context()); err != nil {
				return err
			}

			app.Logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, app.Server.Handler())
		},
	}

	defaultAddr := os.Getenv("TIMETRACKER_ADDR")
	if defaultAddr == "" {
		defaultAddr = ":8080"
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "address to listen on")
	return cmd
}
