package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, commands.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created files and directories.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for skipped or best-effort steps.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree chrome and descriptions.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, paths, commands).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and the root of the file tree.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleMuted styles structural chrome (tree descriptions, hints).
	StyleMuted = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleWarn styles best-effort step failures.
	StyleWarn = lipgloss.NewStyle().Foreground(ColorYellow)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCommand renders a shell command the user should run, indented and cyan.
func FormatCommand(cmd string) string {
	return "  " + StyleNoun.Render(cmd)
}
