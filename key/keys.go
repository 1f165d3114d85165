// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Palette - these keys shape the color list and how new colors are generated.
const (
	PaletteSeedName  = "palette.seed_name"
	PaletteSeedValue = "palette.seed_value"
	PalettePadHex    = "palette.pad_hex"
	PalettePersist   = "palette.persist"
)

// Terminal User Interface (TUI) - these keys define the interactive list's styling.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowIDs     = "tui.show_ids"
	TUISwatchWidth = "tui.swatch_width"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
