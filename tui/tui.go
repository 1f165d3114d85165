// Package tui provides the interactive color list.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/store"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Colors overrides the starting palette. None falls back to the saved
	// palette (when Persist is set) and then to the configured seed.
	Colors mo.Option[[]palette.Entry]

	// Persist saves the palette on every change.
	Persist bool

	// PadHex zero-pads generated values.
	PadHex bool
}

// Run starts the bubbletea program on the alternate screen and blocks until it exits.
func Run(options *Options) error {
	if options.Colors.IsAbsent() {
		colors, err := store.Initial(options.Persist)
		if err != nil {
			return err
		}
		options.Colors = mo.Some(colors)
	}

	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
