package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/internal/ui"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/store"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/util"
)

// statefulBubble is the root bubbletea model. The palette controller is the
// source of truth; colorsC only mirrors it through the change listener.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap  *statefulKeymap
	palette *palette.Controller

	// components
	colorsC list.Model
	inputC  textinput.Model
	helpC   help.Model

	notifier  *ui.Model
	save      func([]palette.Entry)
	lastError error
	saveError error

	width, height int

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering where we came from.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.colorsC.SetSize(listWidth, listHeight)
	b.colorsC.Help.Width = listWidth

	b.inputC.Width = listWidth
	b.helpC.Width = listWidth

	b.width = width - x
	b.height = height - y
}

// onColorsChange is the palette's listener: it mirrors the list into the UI and saves it.
func (b *statefulBubble) onColorsChange(colors []palette.Entry) {
	b.colorsC.SetItems(toItems(colors))
	if n := len(colors); n > 0 && b.colorsC.Index() >= n {
		b.colorsC.Select(n - 1)
	}

	if b.save != nil {
		b.save(colors)
	}
}

func newBubble(options *Options) *statefulBubble {
	bubble := &statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		notifier:      &ui.Model{},
		options:       options,
	}

	if options.Persist {
		bubble.save = store.Listener(func(err error) {
			bubble.saveError = err
		})
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Foreground(style.Subtext)

	colorsC := list.New([]list.Item{}, delegate, 0, 0)
	colorsC.KeyMap = bubble.keymap.forList()
	colorsC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
	colorsC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return bubble.keymap.FullHelp()[0]
	}
	colorsC.Title = strings.TrimSpace(icon.Get(icon.Palette) + " Random Color Generator")
	colorsC.Styles.Title = lipgloss.NewStyle().Foreground(style.Surface).Background(style.AccentColor).Padding(0, 1)
	colorsC.Styles.NoItems = paddingStyle
	colorsC.SetStatusBarItemName("color", "colors")
	colorsC.SetFilteringEnabled(false)
	colorsC.StatusMessageLifetime = time.Second
	bubble.colorsC = colorsC

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "#rrggbb"
	bubble.inputC.Prompt = "Value: "

	bubble.helpC = help.New()

	bubble.palette = palette.New(&palette.Options{
		Colors:   options.Colors,
		OnChange: bubble.onColorsChange,
		PadHex:   options.PadHex,
	})
	bubble.colorsC.SetItems(toItems(bubble.palette.Colors()))

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(listState)
	return bubble
}
