package timeutil_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/user/tagging-football-cli/pkg/timeutil"
)

func TestFormatTime(t *testing.T) {
	Convey("Given offsets below an hour", t, func() {
		So(timeutil.FormatTime(0), ShouldEqual, "00:00")
		So(timeutil.FormatTime(12.5), ShouldEqual, "00:12")
		So(timeutil.FormatTime(90), ShouldEqual, "01:30")
		So(timeutil.FormatTime(3599), ShouldEqual, "59:59")
	})

	Convey("Given offsets of an hour or more", t, func() {
		So(timeutil.FormatTime(3600), ShouldEqual, "1:00:00")
		So(timeutil.FormatTime(4282), ShouldEqual, "1:11:22")
	})

	Convey("Given a negative offset", t, func() {
		So(timeutil.FormatTime(-5), ShouldEqual, "00:00")
	})
}

func TestFormatRange(t *testing.T) {
	Convey("Given a point event", t, func() {
		So(timeutil.FormatRange(90, nil), ShouldEqual, "01:30")
	})

	Convey("Given a range event", t, func() {
		end := 105.0
		So(timeutil.FormatRange(90, &end), ShouldEqual, "01:30 - 01:45")
	})
}

func TestParseTimeToSeconds(t *testing.T) {
	Convey("Given well-formed inputs", t, func() {
		Convey("H:MM:SS parses", func() {
			secs, err := timeutil.ParseTimeToSeconds("1:11:22")
			So(err, ShouldBeNil)
			So(secs, ShouldEqual, 4282.0)
		})

		Convey("MM:SS parses", func() {
			secs, err := timeutil.ParseTimeToSeconds("01:30")
			So(err, ShouldBeNil)
			So(secs, ShouldEqual, 90.0)
		})

		Convey("Raw seconds parse", func() {
			secs, err := timeutil.ParseTimeToSeconds("12.5")
			So(err, ShouldBeNil)
			So(secs, ShouldEqual, 12.5)
		})
	})

	Convey("Given malformed inputs", t, func() {
		for _, bad := range []string{"", "abc", "1:2:3:4"} {
			_, err := timeutil.ParseTimeToSeconds(bad)
			So(err, ShouldNotBeNil)
		}
	})
}
