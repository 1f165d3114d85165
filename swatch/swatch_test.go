package swatch

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Accepts six digit values", func() {
			So(Valid("#0000ff"), ShouldBeTrue)
			So(Valid("#ABCDEF"), ShouldBeTrue)
		})

		Convey("Accepts three digit values", func() {
			So(Valid("#f3a"), ShouldBeTrue)
			So(Normalize("#f3a"), ShouldEqual, "#ff33aa")
		})

		Convey("Rejects partial or foreign text", func() {
			So(Valid("#ff"), ShouldBeFalse)
			So(Valid("blue"), ShouldBeFalse)
			So(Valid(""), ShouldBeFalse)
			So(Normalize("#ff"), ShouldEqual, "#ff")
		})
	})
}

func TestForeground(t *testing.T) {
	Convey("Foreground", t, func() {
		So(Foreground("#ffffff"), ShouldEqual, lipgloss.Color("#000000"))
		So(Foreground("#ffff00"), ShouldEqual, lipgloss.Color("#000000"))
		So(Foreground("#000000"), ShouldEqual, lipgloss.Color("#ffffff"))
		So(Foreground("#0000ff"), ShouldEqual, lipgloss.Color("#ffffff"))
	})
}

func TestBlock(t *testing.T) {
	Convey("Block", t, func() {
		Convey("Is empty for non-positive widths", func() {
			So(Block("#0000ff", 0), ShouldBeEmpty)
		})

		Convey("Spans the requested width", func() {
			So(lipgloss.Width(Block("#0000ff", 6)), ShouldEqual, 6)
		})

		Convey("Hatches unparsable values", func() {
			So(strings.Contains(Block("#zz", 3), "░"), ShouldBeTrue)
		})
	})
}
