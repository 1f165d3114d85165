// Package color names the terminal colors used by CLI output.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or hex string as a lipgloss.Color.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
)

// High-intensity extension.
var HiPurple = New("13")
