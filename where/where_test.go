package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/swatch-cli/swatch/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/tmp/swatch-test")
			So(Config(), ShouldEqual, "/tmp/swatch-test")
			So(lo.Must(filesystem.API().IsDir("/tmp/swatch-test")), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Palette() lives next to the config", func() {
			So(filepath.Dir(Palette()), ShouldEqual, Config())
			So(filepath.Base(Palette()), ShouldEqual, "palette.json")
		})
	})
}
