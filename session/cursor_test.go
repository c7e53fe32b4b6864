package session_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/user/tagging-football-cli/session"
)

// fakeTransport simulates a media player that clamps seeks into the video's
// bounds, the way mpv does.
type fakeTransport struct {
	pos      float64
	duration float64
	paused   bool

	timePosErr error
	seekErr    error
}

func (f *fakeTransport) TimePos() (float64, error) {
	if f.timePosErr != nil {
		return 0, f.timePosErr
	}
	return f.pos, nil
}

func (f *fakeTransport) Duration() (float64, error) { return f.duration, nil }
func (f *fakeTransport) Paused() (bool, error)      { return f.paused, nil }

func (f *fakeTransport) Seek(seconds float64) error {
	if f.seekErr != nil {
		return f.seekErr
	}
	if seconds < 0 {
		seconds = 0
	}
	if f.duration > 0 && seconds > f.duration {
		seconds = f.duration
	}
	f.pos = seconds
	return nil
}

func (f *fakeTransport) SetPaused(paused bool) error {
	f.paused = paused
	return nil
}

func TestSession_SyncFromTransport(t *testing.T) {
	Convey("Given a transport mid-playback", t, func() {
		transport := &fakeTransport{pos: 42.5, duration: 5400, paused: false}
		sess := session.New(transport)

		Convey("When syncing", func() {
			sess.SyncFromTransport()
			cursor := sess.Snapshot()

			Convey("Then the cursor mirrors the transport", func() {
				So(cursor.CurrentTime, ShouldEqual, 42.5)
				So(cursor.Duration, ShouldEqual, 5400.0)
				So(cursor.Playing, ShouldBeTrue)
				So(cursor.Ready, ShouldBeTrue)
			})
		})

		Convey("When the position read fails on a later sync", func() {
			sess.SyncFromTransport()
			transport.timePosErr = errors.New("ipc timeout")
			transport.duration = 5400
			sess.SyncFromTransport()
			cursor := sess.Snapshot()

			Convey("Then the cached position survives and the rest refreshes", func() {
				So(cursor.CurrentTime, ShouldEqual, 42.5)
				So(cursor.Duration, ShouldEqual, 5400.0)
			})
		})
	})

	Convey("Given a transport that has not reported a duration yet", t, func() {
		transport := &fakeTransport{pos: 0, duration: 0, paused: true}
		sess := session.New(transport)

		Convey("When syncing", func() {
			sess.SyncFromTransport()
			cursor := sess.Snapshot()

			Convey("Then the cursor is not ready", func() {
				So(cursor.Ready, ShouldBeFalse)
				So(cursor.Playing, ShouldBeFalse)
			})
		})
	})
}

func TestSession_Seek(t *testing.T) {
	Convey("Given a session over a 90 second video", t, func() {
		transport := &fakeTransport{duration: 90}
		sess := session.New(transport)
		sess.SyncFromTransport()

		Convey("When seeking inside the video", func() {
			err := sess.Seek(30)

			Convey("Then the cursor lands on the target", func() {
				So(err, ShouldBeNil)
				So(sess.Snapshot().CurrentTime, ShouldEqual, 30.0)
			})
		})

		Convey("When seeking past the end", func() {
			err := sess.Seek(500)

			Convey("Then the read-back reflects the transport's clamp", func() {
				So(err, ShouldBeNil)
				So(sess.Snapshot().CurrentTime, ShouldEqual, 90.0)
			})
		})

		Convey("When seeking to a negative position", func() {
			So(sess.Seek(30), ShouldBeNil)
			err := sess.Seek(-10)

			Convey("Then the target is clamped to zero", func() {
				So(err, ShouldBeNil)
				So(sess.Snapshot().CurrentTime, ShouldEqual, 0.0)
			})
		})

		Convey("When the transport rejects the seek", func() {
			So(sess.Seek(30), ShouldBeNil)
			transport.seekErr = errors.New("ipc closed")
			err := sess.Seek(60)

			Convey("Then the error surfaces and the cursor is untouched", func() {
				So(err, ShouldNotBeNil)
				So(sess.Snapshot().CurrentTime, ShouldEqual, 30.0)
			})
		})

		Convey("When stepping backward past the start", func() {
			So(sess.Seek(3), ShouldBeNil)
			err := sess.SeekRelative(-10)

			Convey("Then the cursor stops at zero", func() {
				So(err, ShouldBeNil)
				So(sess.Snapshot().CurrentTime, ShouldEqual, 0.0)
			})
		})

		Convey("When stepping forward", func() {
			So(sess.Seek(10), ShouldBeNil)
			err := sess.SeekRelative(5)

			Convey("Then the cursor advances by the step", func() {
				So(err, ShouldBeNil)
				So(sess.Snapshot().CurrentTime, ShouldEqual, 15.0)
			})
		})
	})
}

func TestSession_TogglePause(t *testing.T) {
	Convey("Given a paused transport", t, func() {
		transport := &fakeTransport{paused: true}
		sess := session.New(transport)
		sess.SyncFromTransport()

		Convey("When toggling", func() {
			err := sess.TogglePause()

			Convey("Then playback starts", func() {
				So(err, ShouldBeNil)
				So(transport.paused, ShouldBeFalse)
				So(sess.Snapshot().Playing, ShouldBeTrue)
			})

			Convey("And toggling again pauses", func() {
				So(err, ShouldBeNil)
				So(sess.TogglePause(), ShouldBeNil)
				So(transport.paused, ShouldBeTrue)
				So(sess.Snapshot().Playing, ShouldBeFalse)
			})
		})
	})
}

func TestCursor_Mapping(t *testing.T) {
	Convey("Given a cursor over a 200 second video", t, func() {
		cursor := session.Cursor{CurrentTime: 50, Duration: 200}

		Convey("Then Percent maps position to a fraction", func() {
			So(cursor.Percent(), ShouldEqual, 0.25)
		})

		Convey("Then TimeAt inverts the mapping", func() {
			So(cursor.TimeAt(0.25), ShouldEqual, 50.0)
			So(cursor.TimeAt(0), ShouldEqual, 0.0)
			So(cursor.TimeAt(1), ShouldEqual, 200.0)
		})

		Convey("Then TimeAt clamps out-of-range fractions", func() {
			So(cursor.TimeAt(-0.5), ShouldEqual, 0.0)
			So(cursor.TimeAt(1.5), ShouldEqual, 200.0)
		})
	})

	Convey("Given a cursor with no known duration", t, func() {
		cursor := session.Cursor{CurrentTime: 50}

		Convey("Then Percent is zero instead of dividing by zero", func() {
			So(cursor.Percent(), ShouldEqual, 0.0)
		})
	})

	Convey("Given a cursor at the boundaries", t, func() {
		Convey("Then the start maps to zero percent", func() {
			cursor := session.Cursor{CurrentTime: 0, Duration: 200}
			So(cursor.Percent(), ShouldEqual, 0.0)
		})
		Convey("Then the end maps to one hundred percent", func() {
			cursor := session.Cursor{CurrentTime: 200, Duration: 200}
			So(cursor.Percent(), ShouldEqual, 1.0)
		})
	})
}
