// Package ui provides terminal output helpers for cratews commands: styled
// status markers and an aligned table for reports.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Styler renders status text, with color only when enabled.
type Styler struct {
	enabled bool
}

// NewStyler creates a styler. Pass Colorized(os.Stdout) for the usual TTY
// detection.
func NewStyler(enabled bool) Styler {
	return Styler{enabled: enabled}
}

// Colorized reports whether styled output should be used for f.
func Colorized(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (s Styler) OK(text string) string {
	if s.enabled {
		return okStyle.Render(text)
	}
	return text
}

func (s Styler) Warn(text string) string {
	if s.enabled {
		return warnStyle.Render(text)
	}
	return text
}

func (s Styler) Fail(text string) string {
	if s.enabled {
		return failStyle.Render(text)
	}
	return text
}
