package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: coordinates, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "resolved" artifact status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" artifact status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "unresolved" artifact status.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Artifact status constants.
const (
	StatusResolved   = "resolved"
	StatusUnresolved = "unresolved"
	StatusSkipped    = "skipped"
	StatusDirectory  = "directory"
)

// StatusStyle returns the style for an artifact status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusResolved:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnresolved:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	case StatusDirectory:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// minColumnWidth keeps status words aligned across lines.
const minColumnWidth = 56

// FormatArtifactLine renders a classpath entry with a right-aligned,
// color-coded status suffix.
//
// Format: a:<entry>  <status>
func FormatArtifactLine(entry, status string) string {
	padding := minColumnWidth - len(entry)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("a:") + StyleNoun.Render(entry) +
		strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
