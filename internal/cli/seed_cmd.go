package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default user and demo projects with a week of sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Seeder.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default user: %s\n", user.Email)
			return nil
		},
	}
}
