// Package cmd implements the command-line interface for swatch.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/icon"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/log"
	"github.com/swatch-cli/swatch/style"
	"github.com/swatch-cli/swatch/tui"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("pad", "P", false, "Zero-pad generated colors to 6 hex digits")
	lo.Must0(viper.BindPFlag(key.PalettePadHex, rootCmd.PersistentFlags().Lookup("pad")))

	rootCmd.Flags().BoolP("ephemeral", "e", false, "Start from the seed color and do not save changes")
}

var rootCmd = &cobra.Command{
	Use:   constant.Swatch,
	Short: "A random color generator for the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Add random colors, edit their hex values, delete the ones you don't like"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Persist: viper.GetBool(key.PalettePersist) && !lo.Must(cmd.Flags().GetBool("ephemeral")),
			PadHex:  viper.GetBool(key.PalettePadHex),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
