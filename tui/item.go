package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/swatch"
)

// listItem implements list.DefaultItem for a palette entry.
type listItem struct {
	entry palette.Entry
}

func (t *listItem) Title() string {
	return fmt.Sprintf("%s %s", swatch.Block(t.entry.Value, viper.GetInt(key.TUISwatchWidth)), t.entry.Name)
}

func (t *listItem) Description() string {
	description := t.entry.Value
	if !swatch.Valid(t.entry.Value) {
		description = style.Italic(description)
	}

	if viper.GetBool(key.TUIShowIDs) {
		description = fmt.Sprintf("%s %s", description, style.Faint(t.entry.ID))
	}

	return description
}

func (t *listItem) FilterValue() string {
	return t.entry.Name
}

func toItems(colors []palette.Entry) []list.Item {
	return lo.Map(colors, func(e palette.Entry, _ int) list.Item {
		return &listItem{entry: e}
	})
}
