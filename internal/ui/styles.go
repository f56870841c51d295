package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ColorMode controls whether styled output is emitted.
type ColorMode string

const (
	// ColorAuto enables color when stdout is an interactive terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways forces color on.
	ColorAlways ColorMode = "always"

	// ColorNever forces color off.
	ColorNever ColorMode = "never"
)

// ParseColorMode maps a config string to a ColorMode, defaulting to auto.
func ParseColorMode(value string) ColorMode {
	switch ColorMode(value) {
	case ColorAlways, ColorNever:
		return ColorMode(value)
	default:
		return ColorAuto
	}
}

// Styles bundles the lipgloss styles used across the CLI. When color is
// disabled every Render call passes values through unchanged, so output
// stays clean in pipes and scripts.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Pending lipgloss.Style
	Done    lipgloss.Style

	enabled bool
}

// NewStyles returns the style set for the given color mode.
func NewStyles(mode ColorMode) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:    lipgloss.NewStyle().Faint(true).Strikethrough(true),

		enabled: colorEnabled(mode),
	}
}

// Enabled reports whether styled output is active.
func (s Styles) Enabled() bool {
	return s.enabled
}

// Render applies style to value when color is enabled.
func (s Styles) Render(style lipgloss.Style, value string) string {
	if !s.enabled {
		return value
	}
	return style.Render(value)
}

func colorEnabled(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
