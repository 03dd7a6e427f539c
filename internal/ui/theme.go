// Package ui provides the terminal presentation layer: theming, TTY
// detection, progress reporting, and the post-generation summary.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the hex colors used across UI components.
type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles the color palette with rendering preferences.
type Theme struct {
	Colors  Palette
	NoColor bool
}

// ThemeConfig controls theme construction.
type ThemeConfig struct {
	NoColor bool
}

// NewTheme creates a Theme with the stackforge palette.
func NewTheme(cfg ThemeConfig) *Theme {
	return &Theme{
		Colors: Palette{
			Primary:   "#7C3AED",
			Secondary: "#06B6D4",
			Success:   "#22C55E",
			Warning:   "#EAB308",
			Error:     "#EF4444",
			Muted:     "#6B7280",
		},
		NoColor: cfg.NoColor,
	}
}

// TitleStyle returns the style for section titles.
func (t *Theme) TitleStyle() lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Colors.Primary))
}

// SuccessStyle returns the style for success messages.
func (t *Theme) SuccessStyle() lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Success))
}

// WarnStyle returns the style for warning messages.
func (t *Theme) WarnStyle() lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Warning))
}

// ErrorStyle returns the style for error messages.
func (t *Theme) ErrorStyle() lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Colors.Error))
}

// MutedStyle returns the style for de-emphasized text.
func (t *Theme) MutedStyle() lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Muted))
}
