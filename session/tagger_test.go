package session_test

import (
	"database/sql"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/session"
	"github.com/user/tagging-football-cli/timeline"
)

// newTaggerFixture builds a database with a match, a loaded model, and a
// tagger over a fake transport positioned at 0.
func newTaggerFixture(t *testing.T) (*sql.DB, *fakeTransport, *session.Session, *timeline.Model, *session.Tagger) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	matchID, err := db.CreateMatch(database, "Arsenal vs Chelsea", "2026-03-14", nil, "/videos/match.mp4")
	if err != nil {
		t.Fatalf("create match: %v", err)
	}

	model := timeline.New()
	if err := model.Load(database, matchID); err != nil {
		t.Fatalf("load model: %v", err)
	}

	transport := &fakeTransport{duration: 5400}
	sess := session.New(transport)
	sess.SyncFromTransport()

	return database, transport, sess, model, session.NewTagger(database, sess, model)
}

func templateID(t *testing.T, model *timeline.Model, name string) int64 {
	t.Helper()
	for _, tpl := range model.Templates() {
		if tpl.Name == name {
			return tpl.ID
		}
	}
	t.Fatalf("template %q not in catalog", name)
	return 0
}

func TestTagger_ResolveShortcut(t *testing.T) {
	Convey("Given the seeded template catalog", t, func() {
		database, _, _, model, tagger := newTaggerFixture(t)

		Convey("When pressing a bound key", func() {
			tpl := tagger.ResolveShortcut("s")

			Convey("Then the bound template is found", func() {
				So(tpl, ShouldNotBeNil)
				So(tpl.Name, ShouldEqual, "Shot")
			})
		})

		Convey("When pressing the uppercase variant", func() {
			tpl := tagger.ResolveShortcut("S")

			Convey("Then the match is case-insensitive", func() {
				So(tpl, ShouldNotBeNil)
				So(tpl.Name, ShouldEqual, "Shot")
			})
		})

		Convey("When pressing an unbound key", func() {
			So(tagger.ResolveShortcut("z"), ShouldBeNil)
		})

		Convey("When pressing an empty key", func() {
			So(tagger.ResolveShortcut(""), ShouldBeNil)
		})

		Convey("When two templates share a shortcut", func() {
			shortcut := "s"
			_, err := db.CreateTemplate(database, "Aerial Duel", "#14b8a6", &shortcut, nil)
			So(err, ShouldBeNil)
			So(model.Load(database, model.MatchID()), ShouldBeNil)

			tpl := tagger.ResolveShortcut("s")

			Convey("Then the alphabetically first template wins", func() {
				So(tpl, ShouldNotBeNil)
				So(tpl.Name, ShouldEqual, "Aerial Duel")
			})
		})
	})
}

func TestTagger_Tag(t *testing.T) {
	Convey("Given a session positioned mid-match", t, func() {
		database, transport, sess, model, tagger := newTaggerFixture(t)
		transport.pos = 754.2
		sess.SyncFromTransport()
		shotID := templateID(t, model, "Shot")

		Convey("When tagging a point event", func() {
			ev, err := tagger.Tag(shotID)

			Convey("Then the event is anchored at the cursor with no end", func() {
				So(err, ShouldBeNil)
				So(ev.TimestampStart, ShouldEqual, 754.2)
				So(ev.TimestampEnd, ShouldBeNil)
			})

			Convey("And the record lands in both the store and the model", func() {
				So(err, ShouldBeNil)
				stored, err := db.GetEvent(database, ev.ID)
				So(err, ShouldBeNil)
				So(stored.TimestampStart, ShouldEqual, 754.2)
				So(model.Get(ev.ID), ShouldNotBeNil)
			})

			Convey("And the optimistic record carries display metadata", func() {
				So(err, ShouldBeNil)
				So(ev.TemplateName, ShouldEqual, "Shot")
				So(ev.TemplateColor, ShouldEqual, "#ef4444")
			})
		})

		Convey("When playback has not advanced past zero", func() {
			transport.pos = 0
			sess.SyncFromTransport()
			ev, err := tagger.Tag(shotID)

			Convey("Then tagging at the very start is valid", func() {
				So(err, ShouldBeNil)
				So(ev.TimestampStart, ShouldEqual, 0.0)
			})
		})
	})

	Convey("Given a tagger with no match loaded", t, func() {
		database, err := db.OpenMemory()
		So(err, ShouldBeNil)
		defer database.Close()

		sess := session.New(&fakeTransport{duration: 90})
		model := timeline.New()
		tagger := session.NewTagger(database, sess, model)

		Convey("When tagging", func() {
			_, err := tagger.Tag(1)

			Convey("Then it is rejected", func() {
				So(err, ShouldEqual, session.ErrNoMatch)
			})
		})
	})
}

func TestTagger_TagRange(t *testing.T) {
	Convey("Given a loaded tagger", t, func() {
		_, _, _, model, tagger := newTaggerFixture(t)
		passID := templateID(t, model, "Pass")

		Convey("When closing a range after its in-point", func() {
			ev, err := tagger.TagRange(passID, 100, 112.5)

			Convey("Then both timestamps are stored", func() {
				So(err, ShouldBeNil)
				So(ev.TimestampStart, ShouldEqual, 100.0)
				So(*ev.TimestampEnd, ShouldEqual, 112.5)
			})
		})

		Convey("When the range collapses to an instant", func() {
			ev, err := tagger.TagRange(passID, 100, 100)

			Convey("Then a zero-length range is accepted", func() {
				So(err, ShouldBeNil)
				So(ev.TimestampStart, ShouldEqual, *ev.TimestampEnd)
			})
		})

		Convey("When the end precedes the start", func() {
			_, err := tagger.TagRange(passID, 100, 50)

			Convey("Then the range is rejected before the insert", func() {
				So(err, ShouldEqual, db.ErrTimestampOrder)
			})
		})
	})
}
