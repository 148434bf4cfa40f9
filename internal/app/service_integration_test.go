package service

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/gridiron/internal/domain/model"
)

func waitForPlayers(t *testing.T, svc *Service, want int) {
	t.Helper()
	ctx := context.Background()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.history.Players(ctx) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("history never reached %d players", want)
}

func TestIngestPipeline(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := New(WithWorkerCount(2), WithQueueSize(64))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When a batch of rows is ingested", func() {
			before := svc.Revision()
			accepted := svc.IngestRows(ctx, []model.StatRow{
				{Position: "QB", Name: "Dan Forth", Season: "Y1", Games: 16, PassYds: 4000, PassTD: 30, Interceptions: 10},
				{Position: "QB", Name: "Dan Forth", Season: "Y2", Games: 16, PassYds: 4500, PassTD: 38, Interceptions: 6},
				{Position: "RB", Name: "Marcus Hill", Season: "Y1", Games: 16, RushYds: 1400, RushTD: 12, Carries: 280},
			})

			Convey("Then every row is accepted and lands in history", func() {
				So(accepted, ShouldEqual, 3)
				So(svc.Revision(), ShouldEqual, before+1)
				waitForPlayers(t, svc, 2)

				seasons, err := svc.history.Get(ctx, model.PlayerKey("QB:Dan Forth"))
				So(err, ShouldBeNil)
				So(seasons, ShouldHaveLength, 2)
			})
		})

		Convey("When a season is re-uploaded with corrected numbers", func() {
			So(svc.IngestRows(ctx, []model.StatRow{
				{Position: "QB", Name: "Dan Forth", Season: "Y1", PassYds: 4000},
			}), ShouldEqual, 1)
			waitForPlayers(t, svc, 1)

			So(svc.IngestRows(ctx, []model.StatRow{
				{Position: "QB", Name: "Dan Forth", Season: "Y1", PassYds: 4111},
			}), ShouldEqual, 1)

			Convey("Then the later values win without growing history", func() {
				key := model.PlayerKey("QB:Dan Forth")
				deadline := time.Now().Add(2 * time.Second)
				for time.Now().Before(deadline) {
					seasons, err := svc.history.Get(ctx, key)
					So(err, ShouldBeNil)
					if len(seasons) == 1 && seasons[0].PassYds == 4111 {
						return
					}
					time.Sleep(5 * time.Millisecond)
				}
				t.Fatal("re-uploaded season was not replaced")
			})
		})
	})
}

func TestQueriesOverIngestedData(t *testing.T) {
	Convey("Given a service with history and careers loaded", t, func() {
		svc := New(WithWorkerCount(2), WithQueueSize(64), WithBoardSize(5))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		So(svc.IngestRows(ctx, []model.StatRow{
			{Position: "QB", Name: "Dan Forth", Season: "Y1", Games: 16, PassYds: 4000, PassTD: 30, Interceptions: 10},
			{Position: "QB", Name: "Dan Forth", Season: "Y2", Games: 16, PassYds: 5200, PassTD: 45, Interceptions: 5},
			{Position: "QB", Name: "Rick Osman", Season: "Y1", Games: 16, PassYds: 4800, PassTD: 38, Interceptions: 8},
			{Position: "RB", Name: "Marcus Hill", Season: "Y1", Games: 16, RushYds: 1400, RushTD: 12, Carries: 280},
			{Position: "RB", Name: "Marcus Hill", Season: "Y2", Games: 16, RushYds: 1800, RushTD: 16, Carries: 320},
		}), ShouldEqual, 5)
		waitForPlayers(t, svc, 3)

		So(svc.LoadCareers(ctx, model.PosQB, []model.CareerPlayer{
			{Name: "Dan Forth", Position: model.PosQB, Status: model.StatusActive,
				Games: 160, PassYds: 58000, PassTD: 420, PassAtt: 7200, Interceptions: 120},
			{Name: "Old Record", Position: model.PosQB, Games: 300, PassYds: 61000,
				PassTD: 450, PassAtt: 9000, Interceptions: 200},
		}), ShouldBeNil)
		So(svc.LoadCareers(ctx, model.PosRB, []model.CareerPlayer{
			{Name: "Marcus Hill", Position: model.PosRB, Status: model.StatusActive,
				Games: 96, RushYds: 9600, RushTD: 80, Carries: 2000},
		}), ShouldBeNil)

		Convey("When single-season records are queried", func() {
			boards, err := svc.SingleSeasonRecords(ctx)

			Convey("Then the passing yards board ranks Dan Forth's Y2 first", func() {
				So(err, ShouldBeNil)
				So(boards[0].Stat, ShouldEqual, "Passing Yards")
				So(boards[0].Entries[0].Player, ShouldEqual, "Dan Forth")
				So(boards[0].Entries[0].Season, ShouldEqual, "Y2")
				So(boards[0].Entries[0].Value, ShouldEqual, 5200)
			})
		})

		Convey("When all-time records are queried", func() {
			boards := svc.AllTimeRecords(ctx)

			Convey("Then career passing yards ranks the record holder first", func() {
				So(boards[0].Stat, ShouldEqual, "Passing Yards")
				So(boards[0].Entries[0].Player, ShouldEqual, "Old Record")
				So(boards[0].Entries[0].Value, ShouldEqual, 61000)
			})
		})

		Convey("When greatest seasons are queried", func() {
			greatest, err := svc.GreatestSeasons(ctx)

			Convey("Then only multi-season players appear, best first", func() {
				So(err, ShouldBeNil)
				So(greatest, ShouldNotBeEmpty)
				So(greatest[0].Player, ShouldEqual, "Dan Forth")
				So(greatest[0].Season, ShouldEqual, "Y2")
				for _, g := range greatest {
					So(g.Player, ShouldNotEqual, "Rick Osman")
				}
			})
		})

		Convey("When advanced metrics are queried", func() {
			advanced := svc.AdvancedMetrics(ctx)

			Convey("Then guarded ratio leaders are present", func() {
				stats := make(map[string]model.RecordEntry, len(advanced))
				for _, e := range advanced {
					stats[e.Stat] = e
				}
				So(stats["Yards per Attempt"].Player, ShouldEqual, "Dan Forth")
				So(stats["Yards per Carry"].Player, ShouldEqual, "Marcus Hill")
			})
		})

		Convey("When pace projections are queried", func() {
			paceRecords := svc.PaceToRecords(ctx)

			Convey("Then the active chaser is projected toward the record", func() {
				So(paceRecords, ShouldNotBeEmpty)
				So(paceRecords[0].Player, ShouldEqual, "Dan Forth")
				So(paceRecords[0].Record, ShouldEqual, "Career Passing Yards")
				So(paceRecords[0].RecordHolder, ShouldEqual, "Old Record")
				// 58000/160*16 = 5800 per season; 3000 remaining -> 1 season.
				So(paceRecords[0].SeasonsToBreak, ShouldEqual, 1)
			})
		})

		Convey("When the same query runs twice over unchanged state", func() {
			first, err1 := svc.SingleSeasonRecords(ctx)
			second, err2 := svc.SingleSeasonRecords(ctx)

			Convey("Then recomputation is idempotent", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})
	})
}
