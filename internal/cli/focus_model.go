package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/adrianistaken/time-tracker/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg fires once per second while the focus view is up.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// focusModel is the terminal focus view. Elapsed time is recomputed from the
// session's start timestamp on every tick, never accumulated, so the display
// stays correct no matter how long the program was suspended.
type focusModel struct {
	app     *App
	userID  string
	session *domain.Session
	project *domain.Project
	note    string

	spinner spinner.Model
	now     time.Time
	done    string
	err     error
}

func newFocusModel(app *App, userID string, sess *domain.Session, project *domain.Project, note string) focusModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleGreen
	return focusModel{
		app:     app,
		userID:  userID,
		session: sess,
		project: project,
		note:    note,
		spinner: sp,
		now:     time.Now(),
	}
}

func (m focusModel) Init() tea.Cmd {
	return tea.Batch(tick(), m.spinner.Tick)
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "enter":
			_, stopped, err := m.app.Sessions.Stop(context.Background(), m.userID, m.session.ID, m.note)
			if err != nil {
				m.err = err
			} else if stopped {
				m.done = "Session stopped."
			} else {
				m.done = "That session has already ended."
			}
			return m, tea.Quit
		case "q", "ctrl+c", "esc":
			m.done = "Left the session running."
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m focusModel) View() string {
	if m.done != "" || m.err != nil {
		return ""
	}

	elapsed := domain.FormatHMS(m.session.ElapsedSeconds(m.now))

	header := fmt.Sprintf("%s %s %s", m.spinner.View(), swatch(m.project.Color), styleBold.Render(m.project.Name))
	timer := styleTimer.Render(elapsed)
	help := styleDim.Render("s: stop and save  •  q: leave running")

	return "\n" + header + "\n\n  " + timer + "\n\n" + help + "\n"
}

// runFocus drives the focus view until the user stops or detaches.
func runFocus(ctx context.Context, app *App, userID string, sess *domain.Session, project *domain.Project, note string) error {
	model := newFocusModel(app, userID, sess, project, note)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	m, ok := final.(focusModel)
	if !ok {
		return nil
	}
	if m.err != nil {
		return m.err
	}
	if m.done != "" {
		fmt.Println(styleFg.Render(m.done))
	}
	return nil
}
