package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/swatch"
)

type Action string

const (
	ActionList   Action = "list"
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Output is the JSON document every inline command prints with --json.
type Output struct {
	Action Action          `json:"action" jsonschema:"enum=list,enum=add,enum=edit,enum=delete,description=Command that produced the output."`
	Colors []palette.Entry `json:"colors" jsonschema:"description=The whole palette for list and the affected colors otherwise."`
}

func write(options *Options, action Action, colors []palette.Entry) error {
	if options.Json {
		return writeJson(options.Out, action, colors)
	}
	return writeText(options, colors)
}

func writeJson(out io.Writer, action Action, colors []palette.Entry) error {
	if colors == nil {
		colors = []palette.Entry{}
	}

	return json.NewEncoder(out).Encode(&Output{Action: action, Colors: colors})
}

func writeText(options *Options, colors []palette.Entry) error {
	line := func(e palette.Entry) string {
		s := fmt.Sprintf("%s %s %s %s", swatch.Block(e.Value, 2), e.Name, e.Value, style.Faint(e.ID))
		if options.Width > 0 {
			s = style.Truncate(options.Width)(s)
		}
		return strings.TrimRight(s, " ")
	}

	for _, e := range colors {
		if _, err := fmt.Fprintln(options.Out, line(e)); err != nil {
			return err
		}
	}
	return nil
}
