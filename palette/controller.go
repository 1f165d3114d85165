package palette

import (
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/swatch-cli/swatch/internal/id"
)

// State is a value snapshot of a controller.
type State struct {
	Colors   []Entry
	Selected mo.Option[string]
	Draft    string
}

// Editing reports whether an edit session is open.
func (s State) Editing() bool {
	return s.Selected.IsPresent()
}

// Options configures a new Controller. The zero value is usable.
type Options struct {
	// Colors is the initial list. None means a single DefaultSeed entry;
	// Some of an empty slice means an empty palette.
	Colors mo.Option[[]Entry]

	// OnChange is called synchronously with a copy of the list after every change to it.
	OnChange func([]Entry)

	// PadHex zero-pads generated values to six digits.
	PadHex bool

	// Rand returns a value in [0, n). Defaults to math/rand/v2.
	Rand func(n int) int
}

// Controller owns a palette and its edit session.
type Controller struct {
	state    State
	onChange func([]Entry)
	padHex   bool
	rand     func(int) int
}

// New builds a controller. Entries without an ID are given one.
func New(options *Options) *Controller {
	if options == nil {
		options = &Options{}
	}

	initial := options.Colors.OrElse([]Entry{DefaultSeed})
	colors := lo.Map(initial, func(e Entry, _ int) Entry {
		if e.ID == "" {
			e.ID = id.Generate()
		}
		return e
	})

	c := &Controller{
		state:    State{Colors: colors},
		onChange: options.OnChange,
		padHex:   options.PadHex,
		rand:     options.Rand,
	}
	if c.rand == nil {
		c.rand = rand.IntN
	}

	return c
}

// AddRandom appends "Color N+1" with a random value and returns it.
func (c *Controller) AddRandom() Entry {
	entry := Entry{
		ID:    id.Generate(),
		Name:  nameFor(len(c.state.Colors)),
		Value: FormatHex(c.rand(MaxRandom), c.padHex),
	}

	c.state.Colors = append(slices.Clip(c.state.Colors), entry)
	c.notify()
	return entry
}

// Select opens an edit session on entry, seeding the draft with its value.
// Membership is not checked: selecting an entry that is not in the list makes
// the following Commit or DeleteSelected a no-op.
func (c *Controller) Select(entry Entry) {
	c.state.Selected = mo.Some(entry.ID)
	c.state.Draft = entry.Value
}

// UpdateDraft stages text as the selected entry's next value.
func (c *Controller) UpdateDraft(text string) {
	c.state.Draft = text
}

// Commit writes the draft into the selected entry and closes the session.
// It reports whether an entry was found; when none is, the list is left as is.
func (c *Controller) Commit() bool {
	selected, ok := c.state.Selected.Get()
	draft := c.state.Draft
	c.close()
	if !ok {
		return false
	}

	_, index, found := lo.FindIndexOf(c.state.Colors, func(e Entry) bool {
		return e.ID == selected
	})
	if !found {
		return false
	}

	colors := slices.Clone(c.state.Colors)
	colors[index].Value = draft
	c.state.Colors = colors
	c.notify()
	return true
}

// DeleteSelected removes the selected entry and closes the session.
// It reports whether anything was removed.
func (c *Controller) DeleteSelected() bool {
	selected, ok := c.state.Selected.Get()
	c.close()
	if !ok {
		return false
	}

	_, index, found := lo.FindIndexOf(c.state.Colors, func(e Entry) bool {
		return e.ID == selected
	})
	if !found {
		return false
	}

	c.state.Colors = lo.DropByIndex(c.state.Colors, index)
	c.notify()
	return true
}

// Cancel closes the session and discards the draft. Safe to call when idle.
func (c *Controller) Cancel() {
	c.close()
}

// Colors returns a copy of the list in display order.
func (c *Controller) Colors() []Entry {
	return slices.Clone(c.state.Colors)
}

// Len returns the number of colors.
func (c *Controller) Len() int {
	return len(c.state.Colors)
}

// Selected resolves the selected id against the current list.
func (c *Controller) Selected() mo.Option[Entry] {
	selected, ok := c.state.Selected.Get()
	if !ok {
		return mo.None[Entry]()
	}

	entry, found := lo.Find(c.state.Colors, func(e Entry) bool {
		return e.ID == selected
	})
	if !found {
		return mo.None[Entry]()
	}
	return mo.Some(entry)
}

// Draft returns the staged value.
func (c *Controller) Draft() string {
	return c.state.Draft
}

// Editing reports whether an edit session is open.
func (c *Controller) Editing() bool {
	return c.state.Editing()
}

// State returns a snapshot that shares nothing with the controller.
func (c *Controller) State() State {
	s := c.state
	s.Colors = slices.Clone(s.Colors)
	return s
}

func (c *Controller) close() {
	c.state.Selected = mo.None[string]()
	c.state.Draft = ""
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange(slices.Clone(c.state.Colors))
	}
}
