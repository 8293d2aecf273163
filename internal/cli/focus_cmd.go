package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/spf13/cobra"
)

func newFocusCmd(app *App) *cobra.Command {
	var projectArg string
	var note string

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Track time in the terminal with a live elapsed timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("focus mode needs an interactive terminal")
			}

			ctx := cmd.Context()
			user, err := app.Seeder.EnsureDefaultUser(ctx)
			if err != nil {
				return err
			}

			sess, err := resolveFocusSession(ctx, app, user.ID, projectArg)
			if err != nil {
				return err
			}
			project, err := app.Projects.GetForUser(ctx, sess.ProjectID, user.ID)
			if err != nil {
				return err
			}

			return runFocus(ctx, app, user.ID, sess, project, note)
		},
	}

	cmd.Flags().StringVarP(&projectArg, "project", "p", "", "project to start tracking (name or ID); defaults to the running session")
	cmd.Flags().StringVar(&note, "note", "", "note to attach when the session is stopped")
	return cmd
}

// resolveFocusSession returns the session to display: the running one, or a
// fresh one on the requested project.
func resolveFocusSession(ctx context.Context, app *App, userID, projectArg string) (*domain.Session, error) {
	if projectArg != "" {
		projectID, err := resolveProjectID(ctx, app, userID, projectArg)
		if err != nil {
			return nil, err
		}
		return app.Sessions.Start(ctx, userID, projectID)
	}

	active, err := app.Sessions.Active(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, fmt.Errorf("no session is running; start one with --project")
	}
	return active, nil
}

// resolveProjectID matches a user's project by exact name (case-insensitive),
// exact ID, or unambiguous ID prefix.
func resolveProjectID(ctx context.Context, app *App, userID, input string) (string, error) {
	projects, err := app.Projects.ListActive(ctx, userID)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
