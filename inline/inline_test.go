package inline

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/palette"
	"github.com/swatch-cli/swatch/store"
)

func init() {
	filesystem.SetMemMapFs()
}

func decode(buf *bytes.Buffer) Output {
	var output Output
	So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
	return output
}

func TestParsePicker(t *testing.T) {
	colors := []palette.Entry{
		{ID: "a1", Name: "Blue", Value: "#0000ff"},
		{ID: "b2", Name: "Color 2", Value: "#f3a"},
		{ID: "c3", Name: "Color 3", Value: "#abcdef"},
	}

	Convey("ParsePicker", t, func() {
		pickName := func(description string) string {
			picker, err := ParsePicker(description)
			So(err, ShouldBeNil)
			entry, ok := picker(colors).Get()
			if !ok {
				return ""
			}
			return entry.Name
		}

		So(pickName("first"), ShouldEqual, "Blue")
		So(pickName("last"), ShouldEqual, "Color 3")
		So(pickName("1"), ShouldEqual, "Color 2")
		So(pickName("9"), ShouldBeEmpty)
		So(pickName("id:c3"), ShouldEqual, "Color 3")
		So(pickName("id:zz"), ShouldBeEmpty)
		So(pickName("@blu@"), ShouldEqual, "Blue")
		So(pickName("@clr3@"), ShouldEqual, "Color 3")

		Convey("Pickers on an empty palette find nothing", func() {
			for _, description := range []string{"first", "last", "0"} {
				picker, err := ParsePicker(description)
				So(err, ShouldBeNil)
				So(picker(nil).IsAbsent(), ShouldBeTrue)
			}
		})

		Convey("Garbage is rejected", func() {
			for _, description := range []string{"middle", "-1", "id:", "@@"} {
				_, err := ParsePicker(description)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestCommands(t *testing.T) {
	Convey("Given a fresh palette", t, func() {
		So(store.Clear(), ShouldBeNil)
		viper.Set(key.PaletteSeedName, "Blue")
		viper.Set(key.PaletteSeedValue, "#0000ff")

		var buf bytes.Buffer
		options := &Options{Out: &buf, Json: true}

		Convey("List shows the seed", func() {
			So(List(options), ShouldBeNil)

			output := decode(&buf)
			So(output.Action, ShouldEqual, ActionList)
			So(output.Colors, ShouldHaveLength, 1)
			So(output.Colors[0].Name, ShouldEqual, "Blue")
		})

		Convey("Add appends and saves", func() {
			So(Add(options, 2), ShouldBeNil)

			output := decode(&buf)
			So(output.Action, ShouldEqual, ActionAdd)
			So(output.Colors, ShouldHaveLength, 2)
			So(output.Colors[0].Name, ShouldEqual, "Color 2")
			So(output.Colors[1].Name, ShouldEqual, "Color 3")

			saved, err := store.Load()
			So(err, ShouldBeNil)
			So(saved, ShouldHaveLength, 3)
		})

		Convey("Add rejects a non-positive count", func() {
			So(Add(options, 0), ShouldNotBeNil)
		})

		Convey("Edit writes the prompted value", func() {
			picker, _ := ParsePicker("first")
			err := Edit(options, picker, func(e palette.Entry) (string, error) {
				So(e.Value, ShouldEqual, "#0000ff")
				return "#ff0000", nil
			})
			So(err, ShouldBeNil)

			output := decode(&buf)
			So(output.Colors[0].Value, ShouldEqual, "#ff0000")

			saved, _ := store.Load()
			So(saved[0].Name, ShouldEqual, "Blue")
			So(saved[0].Value, ShouldEqual, "#ff0000")
		})

		Convey("Edit surfaces prompt failures and changes nothing", func() {
			picker, _ := ParsePicker("first")
			err := Edit(options, picker, func(palette.Entry) (string, error) {
				return "", errors.New("interrupted")
			})
			So(err, ShouldNotBeNil)

			saved, _ := store.Load()
			So(saved, ShouldBeNil)
		})

		Convey("Edit without a match fails", func() {
			picker, _ := ParsePicker("5")
			err := Edit(options, picker, func(palette.Entry) (string, error) { return "#fff", nil })
			So(errors.Is(err, ErrNoMatch), ShouldBeTrue)
		})

		Convey("Delete needs confirmation", func() {
			So(Add(options, 1), ShouldBeNil)
			buf.Reset()
			picker, _ := ParsePicker("last")

			So(Delete(options, picker, func(palette.Entry) (bool, error) { return false, nil }), ShouldBeNil)
			saved, _ := store.Load()
			So(saved, ShouldHaveLength, 2)
			So(buf.Len(), ShouldEqual, 0)

			So(Delete(options, picker, func(palette.Entry) (bool, error) { return true, nil }), ShouldBeNil)
			saved, _ = store.Load()
			So(saved, ShouldHaveLength, 1)
			So(saved[0].Name, ShouldEqual, "Blue")

			output := decode(&buf)
			So(output.Action, ShouldEqual, ActionDelete)
			So(output.Colors[0].Name, ShouldEqual, "Color 2")
		})

		Convey("Text output has one line per color", func() {
			options.Json = false
			So(Add(options, 3), ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 3)
			So(strings.Contains(lines[2], "Color 4"), ShouldBeTrue)
		})
	})
}
