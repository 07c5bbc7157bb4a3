// Package color provides color detection and theming for CLI output.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Profile detects the current color profile based on environment variables and flags.
// Returns true if color output should be enabled.
//
// Color is disabled when any of:
//   - NO_COLOR env is set (any value, per https://no-color.org)
//   - CLICOLOR=0
//   - TERM=dumb
//   - noColorFlag is true (--no-color CLI flag)
func Profile(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	return os.Getenv("TERM") != "dumb"
}

// IsTerminal returns true if f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd fits in int
}

// Enabled reports whether output written to f should be styled.
func Enabled(noColorFlag bool, f *os.File) bool {
	return Profile(noColorFlag) && IsTerminal(f)
}

// Theme holds lipgloss styles for check and detect output.
type Theme struct {
	Available lipgloss.Style
	UpToDate  lipgloss.Style
	Fail      lipgloss.Style
	Version   lipgloss.Style
	Command   lipgloss.Style
	Label     lipgloss.Style
	Header    lipgloss.Style
	Muted     lipgloss.Style
}

// NewTheme creates a Theme. When color is false, all styles are empty (no ANSI codes).
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}

	return Theme{
		Available: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true), // bright yellow
		UpToDate:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),            // bright green
		Fail:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Version:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // bright blue
		Command:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Label:     lipgloss.NewStyle().Bold(true),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // gray
	}
}
