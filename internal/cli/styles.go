// Package cli holds the command model and diagnostic styling for the
// nanptap CLI. Styling is confined to error and help output: spec.md §6
// fixes an exact two-section stdout contract, so lipgloss never
// touches the result sections — only PrintError (stderr) and the
// styled -h printer use it.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#A40000")
	mutedColor   = lipgloss.Color("#888888")
)

var (
	// ErrorStyle marks the "Error:" prefix on argument/IO failures.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)

	// SubtitleStyle is used for the one-line description under -h.
	SubtitleStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
)

// PrintError prints a styled error message to stderr.
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}
