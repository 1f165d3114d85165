package store

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestStore(t *testing.T) {
	Convey("Given a saved palette", t, func() {
		colors := []palette.Entry{
			{ID: "a", Name: "Blue", Value: "#0000ff"},
			{ID: "b", Name: "Color 2", Value: "#f3a"},
		}
		So(Save(colors), ShouldBeNil)

		Convey("Load returns it in order", func() {
			loaded, err := Load()
			So(err, ShouldBeNil)
			So(loaded, ShouldResemble, colors)
		})

		Convey("Clear forgets it", func() {
			So(Clear(), ShouldBeNil)
			loaded, err := Load()
			So(err, ShouldBeNil)
			So(loaded, ShouldBeEmpty)
		})

		Convey("Saving an empty palette is remembered as empty", func() {
			So(Save(nil), ShouldBeNil)
			loaded, err := Load()
			So(err, ShouldBeNil)
			So(loaded, ShouldBeEmpty)
		})
	})

	Convey("Given a controller wired to the listener", t, func() {
		So(Clear(), ShouldBeNil)

		var failures []error
		c := palette.New(&palette.Options{
			Colors:   mo.Some([]palette.Entry{{Name: "Blue", Value: "#0000ff"}}),
			OnChange: Listener(func(err error) { failures = append(failures, err) }),
		})

		Convey("Every change lands on disk", func() {
			added := c.AddRandom()

			loaded, err := Load()
			So(err, ShouldBeNil)
			So(loaded, ShouldHaveLength, 2)
			So(loaded[1], ShouldResemble, added)

			c.Select(added)
			So(c.DeleteSelected(), ShouldBeTrue)

			loaded, err = Load()
			So(err, ShouldBeNil)
			So(loaded, ShouldHaveLength, 1)
			So(failures, ShouldBeEmpty)
		})
	})
}

func TestInitial(t *testing.T) {
	Convey("Initial", t, func() {
		So(Clear(), ShouldBeNil)
		viper.Set(key.PaletteSeedName, "Blue")
		viper.Set(key.PaletteSeedValue, "#0000ff")

		Convey("Falls back to the configured seed", func() {
			colors, err := Initial(true)
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []palette.Entry{{Name: "Blue", Value: "#0000ff"}})
		})

		Convey("Prefers the saved palette", func() {
			saved := []palette.Entry{{ID: "x", Name: "Teal", Value: "#008080"}}
			So(Save(saved), ShouldBeNil)

			colors, err := Initial(true)
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, saved)
		})

		Convey("Ignores the saved palette when not persisting", func() {
			So(Save([]palette.Entry{{ID: "x", Name: "Teal", Value: "#008080"}}), ShouldBeNil)

			colors, err := Initial(false)
			So(err, ShouldBeNil)
			So(colors[0].Name, ShouldEqual, "Blue")
		})

		Convey("Keeps a saved empty palette empty", func() {
			So(Save([]palette.Entry{}), ShouldBeNil)

			colors, err := Initial(true)
			So(err, ShouldBeNil)
			So(colors, ShouldBeEmpty)
			So(colors, ShouldNotBeNil)
		})
	})
}
