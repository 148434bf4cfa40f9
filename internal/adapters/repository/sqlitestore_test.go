package repository

import (
	"context"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/gridiron/internal/domain/model"
)

func TestSQLiteStore(t *testing.T) {
	Convey("Given a SQLite-backed store", t, func() {
		path := filepath.Join(t.TempDir(), "history.db")
		store, err := OpenSQLite(path)
		So(err, ShouldBeNil)
		defer store.Close()

		ctx := context.Background()
		key := model.PlayerKey("QB:Dan Forth")

		Convey("When seasons are appended and one label is re-uploaded", func() {
			_, err := store.Append(ctx, key, model.SeasonSnapshot{
				Season: "Y1", Team: "SF", PassYds: 4000, PassTD: 30,
				Awards: model.AwardCounts{MVP: 1},
			})
			So(err, ShouldBeNil)
			_, err = store.Append(ctx, key, model.SeasonSnapshot{Season: "Y2", Team: "SF", PassYds: 4500})
			So(err, ShouldBeNil)

			replaced, err := store.Append(ctx, key, model.SeasonSnapshot{
				Season: "Y1", Team: "KC", PassYds: 4100, PassTD: 32,
			})

			Convey("Then the replacement keeps the original position", func() {
				So(err, ShouldBeNil)
				So(replaced, ShouldBeTrue)

				seasons, err := store.Get(ctx, key)
				So(err, ShouldBeNil)
				So(seasons, ShouldHaveLength, 2)
				So(seasons[0].Season, ShouldEqual, "Y1")
				So(seasons[0].Team, ShouldEqual, "KC")
				So(seasons[0].PassYds, ShouldEqual, 4100)
				So(seasons[0].Awards.MVP, ShouldEqual, 0)
				So(seasons[1].Season, ShouldEqual, "Y2")
			})
		})

		Convey("When the database is reopened", func() {
			_, err := store.Append(ctx, key, model.SeasonSnapshot{Season: "Y1", PassYds: 4000})
			So(err, ShouldBeNil)
			So(store.Close(), ShouldBeNil)

			reopened, err := OpenSQLite(path)
			So(err, ShouldBeNil)
			defer reopened.Close()

			Convey("Then the history survives", func() {
				seasons, err := reopened.Get(ctx, key)
				So(err, ShouldBeNil)
				So(seasons, ShouldHaveLength, 1)
				So(seasons[0].PassYds, ShouldEqual, 4000)
			})
		})

		Convey("When the whole league is scanned", func() {
			rb := model.PlayerKey("RB:Marcus Hill")
			_, err := store.Append(ctx, key, model.SeasonSnapshot{Season: "Y1"})
			So(err, ShouldBeNil)
			_, err = store.Append(ctx, rb, model.SeasonSnapshot{Season: "Y1", RushYds: 1400})
			So(err, ShouldBeNil)

			all, err := store.AllEntries(ctx)

			Convey("Then entries are grouped by player key", func() {
				So(err, ShouldBeNil)
				So(all, ShouldHaveLength, 2)
				So(all[rb][0].RushYds, ShouldEqual, 1400)
				So(store.Players(ctx), ShouldEqual, 2)
			})
		})

		Convey("When an unknown key is requested", func() {
			seasons, err := store.Get(ctx, model.PlayerKey("WR:Nobody"))

			Convey("Then the result is empty, not an error", func() {
				So(err, ShouldBeNil)
				So(seasons, ShouldBeEmpty)
			})
		})
	})
}
