package timeline_test

import (
	"database/sql"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/timeline"
)

// newLoadedModel builds a database with a match and seeded templates, and a
// model loaded for that match.
func newLoadedModel(t *testing.T) (*sql.DB, *timeline.Model, int64) {
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
	return database, model, matchID
}

// template finds a seeded template in the model's catalog.
func template(t *testing.T, model *timeline.Model, name string) db.EventTemplate {
	t.Helper()
	for _, tpl := range model.Templates() {
		if tpl.Name == name {
			return tpl
		}
	}
	t.Fatalf("template %q not in catalog", name)
	return db.EventTemplate{}
}

// insertEvent writes an event and mirrors it into the model the way the
// tagging path does.
func insertEvent(t *testing.T, database *sql.DB, model *timeline.Model, matchID, templateID int64, start float64) db.Event {
	t.Helper()
	id, err := db.CreateEvent(database, db.NewEvent{
		MatchID:        matchID,
		TemplateID:     templateID,
		TimestampStart: start,
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	ev := db.Event{ID: id, MatchID: matchID, TemplateID: templateID, TimestampStart: start}
	if err := model.Add(ev); err != nil {
		t.Fatalf("add event: %v", err)
	}
	return ev
}

func TestModel_Load(t *testing.T) {
	Convey("Given a loaded model", t, func() {
		database, model, matchID := newLoadedModel(t)

		Convey("Then the template catalog is available", func() {
			So(model.MatchID(), ShouldEqual, matchID)
			So(model.Templates(), ShouldHaveLength, 6)
			So(model.Len(), ShouldEqual, 0)
		})

		Convey("When another match is loaded", func() {
			shot := template(t, model, "Shot")
			insertEvent(t, database, model, matchID, shot.ID, 10)
			So(model.Len(), ShouldEqual, 1)

			otherID, err := db.CreateMatch(database, "City vs United", "2026-03-21", nil, "/videos/derby.mp4")
			So(err, ShouldBeNil)
			So(model.Load(database, otherID), ShouldBeNil)

			Convey("Then the previous match's events are replaced wholesale", func() {
				So(model.MatchID(), ShouldEqual, otherID)
				So(model.Len(), ShouldEqual, 0)
			})
		})
	})
}

func TestModel_Add(t *testing.T) {
	Convey("Given a loaded model", t, func() {
		database, model, matchID := newLoadedModel(t)
		shot := template(t, model, "Shot")

		Convey("When adding confirmed events out of time order", func() {
			insertEvent(t, database, model, matchID, shot.ID, 30)
			insertEvent(t, database, model, matchID, shot.ID, 10)
			insertEvent(t, database, model, matchID, shot.ID, 20)

			Convey("Then the set stays in ascending start order", func() {
				all := model.All()
				So(all, ShouldHaveLength, 3)
				So(all[0].TimestampStart, ShouldEqual, 10.0)
				So(all[1].TimestampStart, ShouldEqual, 20.0)
				So(all[2].TimestampStart, ShouldEqual, 30.0)
			})
		})

		Convey("When adding an event without display metadata", func() {
			So(model.Add(db.Event{ID: 1, MatchID: matchID, TemplateID: shot.ID, TimestampStart: 5}), ShouldBeNil)

			Convey("Then the template name and colour are resolved locally", func() {
				ev := model.Get(1)
				So(ev, ShouldNotBeNil)
				So(ev.TemplateName, ShouldEqual, "Shot")
				So(ev.TemplateColor, ShouldEqual, "#ef4444")
			})
		})

		Convey("When adding an event from a different match", func() {
			err := model.Add(db.Event{ID: 1, MatchID: matchID + 1, TemplateID: shot.ID, TimestampStart: 5})

			Convey("Then it is rejected and the set is untouched", func() {
				So(err, ShouldEqual, timeline.ErrWrongMatch)
				So(model.Len(), ShouldEqual, 0)
			})
		})
	})
}

func TestModel_Reconcile(t *testing.T) {
	Convey("Given a model holding an optimistic record the store lost", t, func() {
		database, model, matchID := newLoadedModel(t)
		shot := template(t, model, "Shot")

		kept := insertEvent(t, database, model, matchID, shot.ID, 10)
		// Mirror an insert the store never saw.
		So(model.Add(db.Event{ID: 999, MatchID: matchID, TemplateID: shot.ID, TimestampStart: 20}), ShouldBeNil)
		So(model.Len(), ShouldEqual, 2)

		Convey("When reconciling against the store", func() {
			So(model.Reconcile(database), ShouldBeNil)

			Convey("Then the phantom record is discarded", func() {
				So(model.Len(), ShouldEqual, 1)
				So(model.Get(kept.ID), ShouldNotBeNil)
				So(model.Get(999), ShouldBeNil)
			})
		})
	})
}

func TestModel_List(t *testing.T) {
	Convey("Given a model with events across two templates", t, func() {
		database, model, matchID := newLoadedModel(t)
		shot := template(t, model, "Shot")
		pass := template(t, model, "Pass")

		insertEvent(t, database, model, matchID, shot.ID, 30)
		insertEvent(t, database, model, matchID, pass.ID, 10)
		insertEvent(t, database, model, matchID, shot.ID, 20)

		Convey("When listing by time without a filter", func() {
			out := model.List(0, timeline.SortByTime)

			Convey("Then events come back in ascending start order", func() {
				So(out, ShouldHaveLength, 3)
				So(out[0].TimestampStart, ShouldEqual, 10.0)
				So(out[2].TimestampStart, ShouldEqual, 30.0)
			})
		})

		Convey("When filtering to one template", func() {
			out := model.List(shot.ID, timeline.SortByTime)

			Convey("Then only that template's events remain, still ordered", func() {
				So(out, ShouldHaveLength, 2)
				So(out[0].TimestampStart, ShouldEqual, 20.0)
				So(out[1].TimestampStart, ShouldEqual, 30.0)
			})
		})

		Convey("When sorting by type", func() {
			out := model.List(0, timeline.SortByType)

			Convey("Then events group by template name, time order preserved within", func() {
				So(out, ShouldHaveLength, 3)
				So(out[0].TemplateName, ShouldEqual, "Pass")
				So(out[1].TemplateName, ShouldEqual, "Shot")
				So(out[2].TemplateName, ShouldEqual, "Shot")
				So(out[1].TimestampStart, ShouldEqual, 20.0)
				So(out[2].TimestampStart, ShouldEqual, 30.0)
			})
		})

		Convey("When sorting by type with an unresolved template name", func() {
			So(model.Add(db.Event{ID: 999, MatchID: matchID, TemplateID: 12345, TimestampStart: 5}), ShouldBeNil)
			out := model.List(0, timeline.SortByType)

			Convey("Then the unresolved event sorts first", func() {
				So(out[0].ID, ShouldEqual, 999)
			})
		})

		Convey("Then the projection does not mutate the set", func() {
			_ = model.List(shot.ID, timeline.SortByType)
			all := model.All()
			So(all, ShouldHaveLength, 3)
			So(all[0].TimestampStart, ShouldEqual, 10.0)
		})
	})
}

func TestModel_UniqueTemplates(t *testing.T) {
	Convey("Given events across two templates", t, func() {
		database, model, matchID := newLoadedModel(t)
		shot := template(t, model, "Shot")
		pass := template(t, model, "Pass")

		insertEvent(t, database, model, matchID, pass.ID, 10)
		insertEvent(t, database, model, matchID, shot.ID, 20)
		insertEvent(t, database, model, matchID, pass.ID, 30)

		Convey("When collecting the templates in use", func() {
			uses := model.UniqueTemplates()

			Convey("Then they appear in first-occurrence order with counts", func() {
				So(uses, ShouldHaveLength, 2)
				So(uses[0].TemplateID, ShouldEqual, pass.ID)
				So(uses[0].Count, ShouldEqual, 2)
				So(uses[0].Representative.TimestampStart, ShouldEqual, 10.0)
				So(uses[1].TemplateID, ShouldEqual, shot.ID)
				So(uses[1].Count, ShouldEqual, 1)
			})
		})
	})
}

func TestModel_RemoveAndUpdate(t *testing.T) {
	Convey("Given a model with one event", t, func() {
		database, model, matchID := newLoadedModel(t)
		shot := template(t, model, "Shot")
		ev := insertEvent(t, database, model, matchID, shot.ID, 10)

		Convey("When removing it by ID", func() {
			model.Remove(ev.ID)

			Convey("Then the set is empty", func() {
				So(model.Len(), ShouldEqual, 0)
			})
		})

		Convey("When removing an unknown ID", func() {
			model.Remove(999)

			Convey("Then nothing changes", func() {
				So(model.Len(), ShouldEqual, 1)
			})
		})

		Convey("When updating its notes locally", func() {
			ok := model.Update(ev.ID, func(e *db.Event) {
				notes := "cutback"
				e.Notes = &notes
			})

			Convey("Then the local copy reflects the change", func() {
				So(ok, ShouldBeTrue)
				So(*model.Get(ev.ID).Notes, ShouldEqual, "cutback")
			})
		})

		Convey("When updating an unknown ID", func() {
			ok := model.Update(999, func(e *db.Event) {})

			Convey("Then it reports the miss", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}
