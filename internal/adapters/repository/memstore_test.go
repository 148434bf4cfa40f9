package repository

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/gridiron/internal/domain/model"
)

func TestMemoryStoreAppend(t *testing.T) {
	Convey("Given an empty in-memory store", t, func() {
		store := NewMemoryStore()
		ctx := context.Background()
		key := model.PlayerKey("QB:Dan Forth")

		Convey("When a snapshot is appended", func() {
			replaced, err := store.Append(ctx, key, model.SeasonSnapshot{Season: "Y1", PassYds: 4000})

			Convey("Then it is stored as a new season", func() {
				So(err, ShouldBeNil)
				So(replaced, ShouldBeFalse)

				seasons, err := store.Get(ctx, key)
				So(err, ShouldBeNil)
				So(seasons, ShouldHaveLength, 1)
				So(seasons[0].PassYds, ShouldEqual, 4000)
			})
		})

		Convey("When the same season label is uploaded twice", func() {
			_, err := store.Append(ctx, key, model.SeasonSnapshot{Season: "Y1", PassYds: 4000})
			So(err, ShouldBeNil)
			_, err = store.Append(ctx, key, model.SeasonSnapshot{Season: "Y2", PassYds: 4500})
			So(err, ShouldBeNil)

			replaced, err := store.Append(ctx, key, model.SeasonSnapshot{Season: "Y1", PassYds: 4100})

			Convey("Then the later values win and the position is kept", func() {
				So(err, ShouldBeNil)
				So(replaced, ShouldBeTrue)

				seasons, err := store.Get(ctx, key)
				So(err, ShouldBeNil)
				So(seasons, ShouldHaveLength, 2)
				So(seasons[0].Season, ShouldEqual, "Y1")
				So(seasons[0].PassYds, ShouldEqual, 4100)
				So(seasons[1].Season, ShouldEqual, "Y2")
			})
		})

		Convey("When distinct labels are appended", func() {
			for _, label := range []string{"Y1", "Y2", "Y3"} {
				_, err := store.Append(ctx, key, model.SeasonSnapshot{Season: label})
				So(err, ShouldBeNil)
			}

			Convey("Then upload order is preserved", func() {
				seasons, err := store.Get(ctx, key)
				So(err, ShouldBeNil)
				So(seasons, ShouldHaveLength, 3)
				So(seasons[0].Season, ShouldEqual, "Y1")
				So(seasons[1].Season, ShouldEqual, "Y2")
				So(seasons[2].Season, ShouldEqual, "Y3")
			})
		})

		Convey("When the store is closed", func() {
			So(store.Close(), ShouldBeNil)

			Convey("Then appends fail with ErrClosed", func() {
				_, err := store.Append(ctx, key, model.SeasonSnapshot{Season: "Y1"})
				So(err, ShouldEqual, ErrClosed)
			})
		})
	})
}

func TestMemoryStoreReads(t *testing.T) {
	Convey("Given a store with two players", t, func() {
		store := NewMemoryStore()
		ctx := context.Background()
		qb := model.PlayerKey("QB:Dan Forth")
		rb := model.PlayerKey("RB:Marcus Hill")

		_, err := store.Append(ctx, qb, model.SeasonSnapshot{Season: "Y1", PassYds: 4000})
		So(err, ShouldBeNil)
		_, err = store.Append(ctx, rb, model.SeasonSnapshot{Season: "Y1", RushYds: 1400})
		So(err, ShouldBeNil)

		Convey("When an unknown key is requested", func() {
			seasons, err := store.Get(ctx, model.PlayerKey("WR:Nobody"))

			Convey("Then the result is empty, not an error", func() {
				So(err, ShouldBeNil)
				So(seasons, ShouldBeEmpty)
			})
		})

		Convey("When all entries are requested", func() {
			all, err := store.AllEntries(ctx)

			Convey("Then both history lines are returned", func() {
				So(err, ShouldBeNil)
				So(all, ShouldHaveLength, 2)
				So(all[qb], ShouldHaveLength, 1)
				So(all[rb], ShouldHaveLength, 1)
				So(store.Players(ctx), ShouldEqual, 2)
			})

			Convey("Then mutating the result does not touch stored history", func() {
				So(err, ShouldBeNil)
				all[qb][0].PassYds = 0

				seasons, err := store.Get(ctx, qb)
				So(err, ShouldBeNil)
				So(seasons[0].PassYds, ShouldEqual, 4000)
			})
		})
	})
}
