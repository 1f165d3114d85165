package style

import "github.com/charmbracelet/lipgloss"

// Catppuccin mocha, trimmed to what the UI draws with.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve = lipgloss.Color("#cba6f7")
	Red   = lipgloss.Color("#f38ba8")
	Green = lipgloss.Color("#a6e3a1")

	AccentColor  = Mauve
	SuccessColor = Green
	ErrorColor   = Red
	FaintColor   = Overlay
	BorderColor  = Surface
)
