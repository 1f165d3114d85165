package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/swatch-cli/swatch/filesystem"
	"github.com/swatch-cli/swatch/key"
	"github.com/swatch-cli/swatch/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Emissions are dropped without panicking", func() {
			So(func() { Info("ignored") }, ShouldNotPanic)
			So(func() { WithFields(logrus.Fields{"id": "x"}).Info("ignored") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("Messages land in today's log file", func() {
			Infof("added %s", "Color 2")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(strings.Contains(string(data), "added Color 2"), ShouldBeTrue)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})
	})
}
