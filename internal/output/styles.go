package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorBoldRed is used for failure markers (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, directories).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleCommand styles suggested shell commands.
	StyleCommand = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}
