package cli

import (
	"fmt"
	"time"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectArchiveCmd(app),
		newProjectUnarchiveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.Seeder.EnsureDefaultUser(ctx)
			if err != nil {
				return err
			}

			if name == "" || color == "" {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--name and --color are required outside an interactive terminal")
				}
				if err := projectForm(&name, &color).Run(); err != nil {
					return err
				}
			}

			project, err := app.Projects.Create(ctx, user.ID, name, color)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", swatch(project.Color), styleBold.Render(project.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&color, "color", "", "palette color, e.g. #6366f1")
	return cmd
}

// projectForm collects a name and palette color interactively.
func projectForm(name, color *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.Colors))
	for _, c := range domain.Colors {
		options = append(options, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Placeholder("Side Project").
				Value(name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Color").
				Options(options...).
				Value(color),
		),
	).WithShowHelp(false)
}

func newProjectListCmd(app *App) *cobra.Command {
	var archived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects with tracked totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.Seeder.EnsureDefaultUser(ctx)
			if err != nil {
				return err
			}

			list := app.Projects.ListActive
			if archived {
				list = app.Projects.ListArchived
			}
			projects, err := list(ctx, user.ID)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render("No projects yet."))
				return nil
			}

			now := time.Now()
			for _, p := range projects {
				total, err := app.Projects.TotalSeconds(ctx, p.ID)
				if err != nil {
					return err
				}
				lastWorked, err := app.Projects.LastWorkedAt(ctx, p.ID)
				if err != nil {
					return err
				}

				worked := styleDim.Render("never")
				if lastWorked != nil {
					worked = styleDim.Render(domain.FormatRelative(*lastWorked, now))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s  %s  %s\n",
					swatch(p.Color),
					styleBold.Render(p.Name),
					styleYellow.Render(domain.FormatHuman(total)),
					worked,
					styleDim.Render(p.ID[:8]),
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&archived, "archived", false, "list archived projects instead")
	return cmd
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <project>",
		Short: "Archive a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.Seeder.EnsureDefaultUser(ctx)
			if err != nil {
				return err
			}
			id, err := resolveProjectID(ctx, app, user.ID, args[0])
			if err != nil {
				return err
			}
			project, err := app.Projects.Archive(ctx, user.ID, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project '%s' archived.\n", project.Name)
			return nil
		},
	}
}

func newProjectUnarchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive <project>",
		Short: "Restore an archived project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := app.Seeder.EnsureDefaultUser(ctx)
			if err != nil {
				return err
			}

			// Archived projects are not in the active list; resolve by ID only.
			projects, err := app.Projects.ListArchived(ctx, user.ID)
			if err != nil {
				return err
			}
			id := ""
			for _, p := range projects {
				if p.ID == args[0] || p.Name == args[0] {
					id = p.ID
					break
				}
			}
			if id == "" {
				return fmt.Errorf("archived project not found: %q", args[0])
			}

			project, err := app.Projects.Unarchive(ctx, user.ID, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project '%s' restored.\n", project.Name)
			return nil
		},
	}
}
