package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
)

var (
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleFg     = lipgloss.NewStyle().Foreground(colorFg)
	styleBold   = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)

	styleTimer = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

// swatch renders a colored block in the project's palette color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
