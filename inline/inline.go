package inline

import (
	"errors"
	"fmt"
	"os"

	"github.com/samber/mo"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/store"
	"github.com/swatch-cli/swatch/util"
)

// ErrNoMatch is returned when a picker selects nothing.
var ErrNoMatch = errors.New("no color matches the picker")

// session is a controller over the saved palette whose changes are written straight back.
type session struct {
	palette *palette.Controller
	saveErr error
}

func open(options *Options) (*session, error) {
	colors, err := store.Initial(true)
	if err != nil {
		return nil, err
	}

	s := &session{}
	s.palette = palette.New(&palette.Options{
		Colors:   mo.Some(colors),
		OnChange: store.Listener(func(err error) { s.saveErr = err }),
		PadHex:   options.PadHex,
	})
	return s, nil
}

func (s *session) pick(picker Picker) (palette.Entry, error) {
	entry, ok := picker(s.palette.Colors()).Get()
	if !ok {
		return palette.Entry{}, ErrNoMatch
	}
	return entry, nil
}

func prepare(options *Options) {
	if options.Out == nil {
		options.Out = os.Stdout
	}
}

// List prints the saved palette.
func List(options *Options) error {
	prepare(options)

	s, err := open(options)
	if err != nil {
		return err
	}

	return write(options, ActionList, s.palette.Colors())
}

// Add appends count random colors and prints them.
func Add(options *Options, count int) error {
	prepare(options)

	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	s, err := open(options)
	if err != nil {
		return err
	}

	added := make([]palette.Entry, 0, count)
	for i := 0; i < count; i++ {
		added = append(added, s.palette.AddRandom())
		if s.saveErr != nil {
			return s.saveErr
		}
	}
	log.Infof("inline: added %s", util.Quantify(count, "color", "colors"))

	return write(options, ActionAdd, added)
}

// Edit sets the value of the picked color, asking prompt for it.
func Edit(options *Options, picker Picker, prompt ValuePrompt) error {
	prepare(options)

	s, err := open(options)
	if err != nil {
		return err
	}

	entry, err := s.pick(picker)
	if err != nil {
		return err
	}

	s.palette.Select(entry)

	value, err := prompt(entry)
	if err != nil {
		s.palette.Cancel()
		return err
	}

	s.palette.UpdateDraft(value)
	s.palette.Commit()
	if s.saveErr != nil {
		return s.saveErr
	}

	entry.Value = value
	log.Infof("inline: edited %s", entry.ID)
	return write(options, ActionEdit, []palette.Entry{entry})
}

// Delete removes the picked color once confirm agrees.
func Delete(options *Options, picker Picker, confirm Confirm) error {
	prepare(options)

	s, err := open(options)
	if err != nil {
		return err
	}

	entry, err := s.pick(picker)
	if err != nil {
		return err
	}

	s.palette.Select(entry)

	ok, err := confirm(entry)
	if err != nil || !ok {
		s.palette.Cancel()
		return err
	}

	s.palette.DeleteSelected()
	if s.saveErr != nil {
		return s.saveErr
	}

	log.Infof("inline: deleted %s", entry.ID)
	return write(options, ActionDelete, []palette.Entry{entry})
}
