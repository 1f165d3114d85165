package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/AlecAivazis/survey/v2"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/inline"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/swatch"
	"github.com/swatch-cli/swatch/util"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.PersistentFlags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.PersistentFlags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// inlineCmd groups the non-interactive, scriptable palette commands.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Manage the saved palette without the interactive UI",
	Long: `Manage the saved palette from scripts.

Pickers:
  first - first color in the palette
  last - last color in the palette
  [number] - select color by index (starting from 0)
  id:[id] - select color by its id
  @[text]@ - select the first color whose name fuzzily matches text`,
}

// inlineOptions assembles inline.Options from the persistent flags.
// The returned func closes the output file, if one was opened.
func inlineOptions(cmd *cobra.Command) (*inline.Options, func()) {
	var (
		out    io.Writer = os.Stdout
		done             = func() {}
		output           = lo.Must(cmd.Flags().GetString("output"))
	)

	if output != "" {
		file, err := filesystem.API().Create(output)
		handleErr(err)

		out = file
		done = func() {
			handleErr(file.Close())
		}
	}

	options := &inline.Options{
		Out:    out,
		Json:   lo.Must(cmd.Flags().GetBool("json")),
		PadHex: viper.GetBool(key.PalettePadHex),
	}

	if output == "" {
		if width, _, err := util.TerminalSize(); err == nil {
			options.Width = width
		}
	}

	return options, done
}

func pickerFlag(cmd *cobra.Command) inline.Picker {
	picker, err := inline.ParsePicker(lo.Must(cmd.Flags().GetString("pick")))
	handleErr(err)
	return picker
}

func init() {
	inlineCmd.AddCommand(inlineListCmd)
}

var inlineListCmd = &cobra.Command{
	Use:     "list",
	Short:   "Print the saved palette",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		options, done := inlineOptions(cmd)
		defer done()

		handleErr(inline.List(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineAddCmd)
	inlineAddCmd.Flags().IntP("count", "c", 1, "How many random colors to add")
}

var inlineAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append random colors to the saved palette",
	Run: func(cmd *cobra.Command, args []string) {
		options, done := inlineOptions(cmd)
		defer done()

		handleErr(inline.Add(options, lo.Must(cmd.Flags().GetInt("count"))))
	},
}

func init() {
	inlineCmd.AddCommand(inlineEditCmd)
	inlineEditCmd.Flags().StringP("pick", "p", "", "Picker for the color to edit")
	inlineEditCmd.Flags().StringP("value", "V", "", "New value. Asked for interactively when omitted")
	lo.Must0(inlineEditCmd.MarkFlagRequired("pick"))
}

var inlineEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Change the value of a saved color",
	Run: func(cmd *cobra.Command, args []string) {
		var prompt inline.ValuePrompt

		if cmd.Flags().Changed("value") {
			value := lo.Must(cmd.Flags().GetString("value"))
			prompt = func(palette.Entry) (string, error) {
				return value, nil
			}
		} else {
			prompt = func(e palette.Entry) (string, error) {
				var value string
				err := survey.AskOne(&survey.Input{
					Message: "New value for " + e.Name,
					Default: e.Value,
				}, &value, survey.WithValidator(func(answer any) error {
					if s, ok := answer.(string); ok && !swatch.Valid(s) {
						return errors.New("not a hex color")
					}
					return nil
				}))
				return value, err
			}
		}

		options, done := inlineOptions(cmd)
		defer done()

		handleErr(inline.Edit(options, pickerFlag(cmd), prompt))
	},
}

func init() {
	inlineCmd.AddCommand(inlineDeleteCmd)
	inlineDeleteCmd.Flags().StringP("pick", "p", "", "Picker for the color to delete")
	inlineDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	lo.Must0(inlineDeleteCmd.MarkFlagRequired("pick"))
}

var inlineDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove a color from the saved palette",
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		confirm := func(e palette.Entry) (bool, error) {
			if lo.Must(cmd.Flags().GetBool("yes")) {
				return true, nil
			}

			var ok bool
			err := survey.AskOne(&survey.Confirm{
				Message: "Delete " + e.Name + " (" + e.Value + ")?",
			}, &ok)
			return ok, err
		}

		options, done := inlineOptions(cmd)
		defer done()

		handleErr(inline.Delete(options, pickerFlag(cmd), confirm))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the --json output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			switch t.Name() {
			case "Entry", "Output":
				return filepath.Base(t.PkgPath()) + "." + t.Name()
			}
			return t.Name()
		}

		schema := reflector.Reflect(&inline.Output{})

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
