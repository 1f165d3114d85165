// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Add
	Edit
	Delete
	Palette
)

var icons = map[Icon]*iconDef{
	Success: {emoji: "✅", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:    {emoji: "❌", nerd: "", plain: "✖", kaomoji: "(╥﹏╥)", squares: "🟥"},
	Add:     {emoji: "➕", nerd: "", plain: "+", kaomoji: "(ノ◕ヮ◕)ノ", squares: "🟦"},
	Edit:    {emoji: "✏️", nerd: "", plain: "~", kaomoji: "(•̀ᴗ•́)", squares: "🟨"},
	Delete:  {emoji: "🗑️", nerd: "", plain: "-", kaomoji: "(╯°□°)╯", squares: "🟥"},
	Palette: {emoji: "🎨", nerd: "", plain: "#", kaomoji: "(☆▽☆)", squares: "🟪"},
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
