package ui

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given an empty notifier", t, func() {
		m := &Model{}

		Convey("View passes content through", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("Notify produces a message that shows up", func() {
			msg := Notify("added Color 2")()
			So(m.Update(msg), ShouldNotBeNil)
						So(strings.Contains(m.View("a\nb"), "added Color 2"), ShouldBeTrue)
		})

		Convey("Only the latest timer clears", func() {
			m.Update(NotificationMsg("first"))
			m.Update(NotificationMsg("second"))

			m.Update(ClearNotificationMsg{generation: 1})
			So(strings.Contains(m.View("content"), "second"), ShouldBeTrue)

			m.Update(ClearNotificationMsg{generation: 2})
			So(m.View("content"), ShouldEqual, "content")
		})

		Convey("Unrelated messages are ignored", func() {
			So(m.Update(42), ShouldBeNil)
			So(m.View("content"), ShouldEqual, "content")
		})
	})
}
