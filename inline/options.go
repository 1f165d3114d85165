// Package inline drives the palette from the command line without the interactive UI.
package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/swatch-cli/swatch/palette"
)

type (
	// Picker chooses one entry out of a palette.
	Picker func([]palette.Entry) mo.Option[palette.Entry]

	// ValuePrompt asks for the new value of an entry.
	ValuePrompt func(palette.Entry) (string, error)

	// Confirm asks whether to go ahead with deleting an entry.
	Confirm func(palette.Entry) (bool, error)
)

type Options struct {
	Out    io.Writer
	Json   bool
	PadHex bool
	Width  int
}

// ParsePicker understands:
//
//	first      the first color
//	last       the last color
//	[number]   the color at that index, starting from 0
//	id:[id]    the color with that id
//	@[text]@   the first color whose name fuzzily matches text
func ParsePicker(description string) (Picker, error) {
	switch {
	case description == "first":
		return func(colors []palette.Entry) mo.Option[palette.Entry] {
			if len(colors) == 0 {
				return mo.None[palette.Entry]()
			}
			return mo.Some(colors[0])
		}, nil
	case description == "last":
		return func(colors []palette.Entry) mo.Option[palette.Entry] {
			if len(colors) == 0 {
				return mo.None[palette.Entry]()
			}
			return mo.Some(colors[len(colors)-1])
		}, nil
	case strings.HasPrefix(description, "id:"):
		id := strings.TrimPrefix(description, "id:")
		if id == "" {
			return nil, fmt.Errorf("empty id in picker: %s", description)
		}
		return func(colors []palette.Entry) mo.Option[palette.Entry] {
			return mo.TupleToOption(lo.Find(colors, func(e palette.Entry) bool {
				return e.ID == id
			}))
		}, nil
	case len(description) > 2 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@"):
		text := description[1 : len(description)-1]
		return func(colors []palette.Entry) mo.Option[palette.Entry] {
			return mo.TupleToOption(lo.Find(colors, func(e palette.Entry) bool {
				return fuzzy.MatchFold(text, e.Name)
			}))
		}, nil
	}

	index, err := strconv.ParseUint(description, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid picker: %s", description)
	}

	return func(colors []palette.Entry) mo.Option[palette.Entry] {
		if uint64(len(colors)) <= index {
			return mo.None[palette.Entry]()
		}
		return mo.Some(colors[index])
	}, nil
}
