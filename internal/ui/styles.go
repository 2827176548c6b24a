package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary   = lipgloss.Color("#7f57b4") // purple
	ColorSecondary = lipgloss.Color("#436b77") // teal
	ColorMuted     = lipgloss.Color("#9ba0bf") // muted text
	ColorBorder    = lipgloss.Color("#273540") // border
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Width(13)

	FieldLabelActiveStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Width(13)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
