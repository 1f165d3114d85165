// Package swatch draws palette values as colored terminal blocks.
//
// Values are free text, so everything here degrades gracefully: a value that
// does not parse is drawn as a hatched placeholder rather than rejected.
package swatch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/swatch-cli/swatch/style"
)

var (
	black = lipgloss.Color("#000000")
	white = lipgloss.Color("#ffffff")
)

// Parse reads "#rgb" or "#rrggbb" (case-insensitive).
func Parse(value string) (colorful.Color, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if len(value) != 4 && len(value) != 7 {
		return colorful.Color{}, false
	}

	c, err := colorful.Hex(value)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// Valid reports whether value parses as a hex color.
func Valid(value string) bool {
	_, ok := Parse(value)
	return ok
}

// Normalize expands a parsable value to "#rrggbb". Other values come back unchanged.
func Normalize(value string) string {
	c, ok := Parse(value)
	if !ok {
		return value
	}
	return c.Hex()
}

// Foreground picks black or white, whichever reads better on value.
func Foreground(value string) lipgloss.Color {
	c, ok := Parse(value)
	if !ok {
		return style.Text
	}

	l, _, _ := c.Lab()
	if l > 0.6 {
		return black
	}
	return white
}

// Block renders a width-cell block painted with value.
func Block(value string, width int) string {
	if width <= 0 {
		return ""
	}

	if !Valid(value) {
		return style.New().Foreground(style.FaintColor).Render(strings.Repeat("░", width))
	}

	return style.New().Background(lipgloss.Color(Normalize(value))).Render(strings.Repeat(" ", width))
}

// Label renders text on top of value, padded to width.
func Label(value, text string, width int) string {
	s := style.New().Foreground(Foreground(value)).Padding(0, 1)
	if Valid(value) {
		s = s.Background(lipgloss.Color(Normalize(value)))
	}
	if width > 0 {
		s = s.Width(width)
	}
	return s.Render(text)
}
