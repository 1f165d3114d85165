package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/store"
	"github.com/swatch-cli/swatch/util"
	"github.com/swatch-cli/swatch/where"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

var clearTargets = []clearTarget{
	{"saved palette", "palette", mo.Some("p"), store.Clear},
	{"log files", "logs", mo.Some("l"), func() error { return util.Delete(where.Logs()) }},
	{"cache directory", "cache", mo.None[string](), func() error { return util.Delete(where.Cache()) }},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd forgets the saved palette and removes generated files.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the saved palette or remove log files",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			handleErr(target.clear())
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
