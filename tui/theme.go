package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the semantic colors of the dashboard. It is picked once at
// startup from the terminal background; bubbletea owns the terminal after
// that, so probing again mid-session is not possible.
type Theme struct {
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Primary lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
}

var dark = Theme{
	Text:    lipgloss.Color("#DFDBDD"),
	Subtext: lipgloss.Color("#BFBCC8"),
	Muted:   lipgloss.Color("#858392"),
	Border:  lipgloss.Color("#4D4C57"),
	Primary: lipgloss.Color("#3B82F6"),
	Success: lipgloss.Color("#16A34A"),
	Error:   lipgloss.Color("#DC2626"),
	Warning: lipgloss.Color("#F59E0B"),
}

var light = Theme{
	Text:    lipgloss.Color("#1F2937"),
	Subtext: lipgloss.Color("#374151"),
	Muted:   lipgloss.Color("#6B7280"),
	Border:  lipgloss.Color("#D1D5DB"),
	Primary: lipgloss.Color("#2563EB"),
	Success: lipgloss.Color("#15803D"),
	Error:   lipgloss.Color("#B91C1C"),
	Warning: lipgloss.Color("#B45309"),
}

// DetectTheme returns the dark or light palette depending on the terminal
// background.
func DetectTheme() Theme {
	if lipgloss.HasDarkBackground() {
		return dark
	}
	return light
}
