package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "color", "colors"), ShouldEqual, "1 color")
		So(Quantify(0, "color", "colors"), ShouldEqual, "0 colors")
		So(Quantify(2, "color", "colors"), ShouldEqual, "2 colors")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("palette file"), ShouldEqual, "Palette file")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/logs/old", 0o755), ShouldBeNil)
		So(fs.WriteFile("/logs/old/a.log", []byte("x"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/palette.json", []byte("[]"), 0o644), ShouldBeNil)

		Convey("Removes a single file", func() {
			So(Delete("/palette.json"), ShouldBeNil)
			exists, _ := fs.Exists("/palette.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Removes a directory tree", func() {
			So(Delete("/logs"), ShouldBeNil)
			exists, _ := fs.Exists("/logs/old/a.log")
			So(exists, ShouldBeFalse)
		})

		Convey("Fails on a missing path", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
