// Package palette owns the ordered list of colors and the single edit session over it.
//
// A Controller is driven from one goroutine (the UI's event loop) and is not safe
// for concurrent use.
package palette

import (
	"fmt"
	"strconv"
)

// Entry is one named color. Value is free text and is never validated.
type Entry struct {
	ID    string `json:"id" jsonschema:"description=Identifier assigned when the color was created. Never changes."`
	Name  string `json:"name" jsonschema:"description=Display label. Not required to be unique."`
	Value string `json:"value" jsonschema:"description=Color value, usually #rrggbb. Any text is accepted."`
}

// DefaultSeed is the entry a palette starts with when the caller supplies none.
var DefaultSeed = Entry{Name: "Blue", Value: "#0000ff"}

// MaxRandom bounds generated colors: values are drawn from [0, MaxRandom).
const MaxRandom = 0xffffff

// FormatHex renders n as "#" followed by lowercase hex digits.
// Without pad, values below 0x100000 come out shorter than six digits.
func FormatHex(n int, pad bool) string {
	if pad {
		return fmt.Sprintf("#%06x", n)
	}
	return "#" + strconv.FormatInt(int64(n), 16)
}

func nameFor(count int) string {
	return fmt.Sprintf("Color %d", count+1)
}
