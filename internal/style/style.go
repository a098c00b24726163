// Package style provides the terminal styles of the childsec CLI.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPass = lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}
	colorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	colorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
)

// Status icons
const (
	IconPass = "✓"
	IconFail = "✖"
)

var (
	// Success marks objects that are present and steps that completed.
	Success = lipgloss.NewStyle().
		Foreground(colorPass).
		Bold(true)

	// Error marks missing objects and failures.
	Error = lipgloss.NewStyle().
		Foreground(colorFail).
		Bold(true)

	// Dim is for secondary details such as durations and hints.
	Dim = lipgloss.NewStyle().
		Foreground(colorMuted)

	Bold = lipgloss.NewStyle().
		Bold(true)
)

// SetColorMode overrides style rendering based on --color flag or NO_COLOR env.
func SetColorMode(mode string) {
	switch mode {
	case "never":
		_ = os.Setenv("NO_COLOR", "1")
		Success = lipgloss.NewStyle()
		Error = lipgloss.NewStyle()
		Dim = lipgloss.NewStyle()
		Bold = lipgloss.NewStyle()
	case "always":
		_ = os.Unsetenv("NO_COLOR")
		_ = os.Setenv("CLICOLOR_FORCE", "1")
		Success = lipgloss.NewStyle().Foreground(colorPass).Bold(true)
		Error = lipgloss.NewStyle().Foreground(colorFail).Bold(true)
		Dim = lipgloss.NewStyle().Foreground(colorMuted)
		Bold = lipgloss.NewStyle().Bold(true)
	}
}

// Status renders the icon for a present or missing object.
func Status(ok bool) string {
	if ok {
		return Success.Render(IconPass)
	}
	return Error.Render(IconFail)
}
