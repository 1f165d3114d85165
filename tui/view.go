package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/swatch"
	"github.com/swatch-cli/swatch/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case listState:
		output = b.viewList()
	case editState:
		output = b.viewEdit()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewList() string {
	return listExtraPaddingStyle.Render(b.colorsC.View())
}

func (b *statefulBubble) viewEdit() string {
	var name, current string
	if entry, ok := b.palette.Selected().Get(); ok {
		name, current = entry.Name, entry.Value
	}

	draft := b.palette.Draft()
	previewWidth := util.Min(util.Max(b.width/2, 20), b.width)

	lines := []string{
		style.Title("Edit Color"),
		"",
		swatch.Label(current, fmt.Sprintf("%s %s", name, current), previewWidth),
		swatch.Label(draft, fmt.Sprintf("%s %s", icon.Get(icon.Edit), draft), previewWidth),
		"",
		b.inputC.View(),
	}

	if draft != "" && !swatch.Valid(draft) {
		lines = append(lines, "", style.Faint("not a hex color, it will be saved as typed"))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	body := style.New().Foreground(style.ErrorColor).Bold(true).Render(b.lastError.Error())
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			wrap.String(body, util.Max(b.width, 20)),
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
