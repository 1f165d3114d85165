package cmd

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/inline"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/store"
)

func init() {
	filesystem.SetMemMapFs()
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestShorthands(t *testing.T) {
	Convey("Short flags resolve to the intended long flags", t, func() {
		So(rootCmd.PersistentFlags().ShorthandLookup("P").Name, ShouldEqual, "pad")
		So(whereCmd.Flags().ShorthandLookup("p").Name, ShouldEqual, "palette")
		So(clearCmd.Flags().ShorthandLookup("p").Name, ShouldEqual, "palette")
		So(inlineEditCmd.Flags().ShorthandLookup("p").Name, ShouldEqual, "pick")
		So(inlineDeleteCmd.Flags().ShorthandLookup("p").Name, ShouldEqual, "pick")
	})
}

func TestCommands(t *testing.T) {
	Convey("Given a fresh palette", t, func() {
		So(store.Clear(), ShouldBeNil)
		viper.Set(key.PaletteSeedName, "Blue")
		viper.Set(key.PaletteSeedValue, "#0000ff")

		Convey("where prints the palette path", func() {
			So(execute("where", "--palette"), ShouldBeNil)
		})

		Convey("inline edit writes the given value", func() {
			So(execute("inline", "edit", "--pick", "0", "--value", "#123456"), ShouldBeNil)

			saved, err := store.Load()
			So(err, ShouldBeNil)
			So(saved, ShouldHaveLength, 1)
			So(saved[0].Name, ShouldEqual, "Blue")
			So(saved[0].Value, ShouldEqual, "#123456")
		})

		Convey("inline add with the pad shorthand saves six digit values", func() {
			So(execute("inline", "add", "-P", "--count", "2"), ShouldBeNil)

			saved, err := store.Load()
			So(err, ShouldBeNil)
			So(saved, ShouldHaveLength, 3)
			So(saved[1].Value, ShouldHaveLength, 7)
			So(saved[2].Value, ShouldHaveLength, 7)
		})

		Convey("clear forgets the saved palette", func() {
			So(execute("inline", "add"), ShouldBeNil)
			So(execute("clear", "--palette"), ShouldBeNil)

			saved, err := store.Load()
			So(err, ShouldBeNil)
			So(saved, ShouldBeEmpty)
		})

		Convey("inline list writes the output file", func() {
			So(execute("inline", "list", "--json", "--output", "/list.json"), ShouldBeNil)

			var output inline.Output
			data, err := filesystem.API().ReadFile("/list.json")
			So(err, ShouldBeNil)
			So(json.Unmarshal(data, &output), ShouldBeNil)
			So(output.Action, ShouldEqual, inline.ActionList)
			So(output.Colors, ShouldHaveLength, 1)
			So(output.Colors[0].Name, ShouldEqual, "Blue")
		})
	})
}
