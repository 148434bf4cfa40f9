package score_test

import (
	"testing"

	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/internal/domain/score"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeason(t *testing.T) {
	Convey("Given the position scoring formulas", t, func() {
		Convey("When scoring a QB season without awards", func() {
			snap := model.SeasonSnapshot{
				Season:        "Y3",
				PassYds:       4000,
				PassTD:        30,
				RushYds:       200,
				RushTD:        2,
				Interceptions: 10,
			}
			got := score.Season(snap, model.PosQB)

			Convey("Then the composite matches the worked example", func() {
				// 4000/50 + 30*10 + 200/20 + 2*15 - 10*5 = 80+300+10+30-50
				So(got, ShouldEqual, 370)
				So(score.TierFor(got), ShouldEqual, score.TierNotable)
			})

			Convey("Then scoring the same snapshot again is bit-identical", func() {
				So(score.Season(snap, model.PosQB), ShouldEqual, got)
			})
		})

		Convey("When scoring an RB season", func() {
			snap := model.SeasonSnapshot{RushYds: 1800, RushTD: 14, RecYds: 600, RecTD: 3}

			Convey("Then rushing, receiving and TDs all contribute", func() {
				// 1800/20 + 14*15 + 600/30 + 3*10 = 90+210+20+30
				So(score.Season(snap, model.PosRB), ShouldEqual, 350)
			})
		})

		Convey("When scoring a WR season", func() {
			snap := model.SeasonSnapshot{RecYds: 1500, Receptions: 100, RecTD: 12}

			Convey("Then the WR/TE variant applies", func() {
				// 1500/20 + 100*2 + 12*15 = 75+200+180
				So(score.Season(snap, model.PosWR), ShouldEqual, 455)
				So(score.Season(snap, model.PosTE), ShouldEqual, 455)
			})
		})

		Convey("When scoring a defensive season", func() {
			snap := model.SeasonSnapshot{Tackles: 120, Sacks: 10, Interceptions: 3, ForcedFumbles: 2}

			Convey("Then interceptions count as a bonus, not a penalty", func() {
				// 120*2 + 10*15 + 3*20 + 2*10 = 240+150+60+20
				So(score.Season(snap, model.PosLB), ShouldEqual, 470)
				So(score.Season(snap, model.PosDB), ShouldEqual, 470)
				So(score.Season(snap, model.PosDL), ShouldEqual, 470)
			})
		})

		Convey("When the season carries awards", func() {
			snap := model.SeasonSnapshot{
				PassYds: 5000,
				PassTD:  40,
				Awards:  model.AwardCounts{MVP: 1, SBMVP: 1, Rings: 1},
			}

			Convey("Then the award bonus is added from that season's counts", func() {
				// 5000/50 + 40*10 + 100 + 80 + 60 = 100+400+240
				So(score.Season(snap, model.PosQB), ShouldEqual, 740)
			})
		})

		Convey("When scoring an offensive lineman", func() {
			Convey("Then there is no formula and the score is 0", func() {
				_, ok := score.VariantFor(model.PosOL)
				So(ok, ShouldBeFalse)
				So(score.Season(model.SeasonSnapshot{Awards: model.AwardCounts{MVP: 1}}, model.PosOL), ShouldEqual, 0)
			})
		})
	})
}

func TestTierFor(t *testing.T) {
	Convey("Given the tier thresholds", t, func() {
		Convey("Then boundaries are inclusive lower bounds", func() {
			So(score.TierFor(800.0), ShouldEqual, score.TierLegendary)
			So(score.TierFor(799.999), ShouldEqual, score.TierElite)
			So(score.TierFor(600.0), ShouldEqual, score.TierElite)
			So(score.TierFor(599.999), ShouldEqual, score.TierGreat)
			So(score.TierFor(400.0), ShouldEqual, score.TierGreat)
			So(score.TierFor(250.0), ShouldEqual, score.TierNotable)
			So(score.TierFor(249.999), ShouldEqual, score.TierSolid)
			So(score.TierFor(0), ShouldEqual, score.TierSolid)
		})
	})
}

func TestGreatest(t *testing.T) {
	Convey("Given a history store with single- and multi-season players", t, func() {
		all := map[model.PlayerKey][]model.SeasonSnapshot{
			"QB:Dan Forth": {
				{Season: "Y1", PassYds: 4000, PassTD: 30, Interceptions: 10},
				{Season: "Y2", PassYds: 5200, PassTD: 45, Interceptions: 6, Awards: model.AwardCounts{MVP: 1}},
			},
			"QB:One Hit": {
				{Season: "Y1", PassYds: 6000, PassTD: 60},
			},
			"LB:Iron Mike": {
				{Season: "Y1", Tackles: 140, Sacks: 8},
				{Season: "Y2", Tackles: 155, Sacks: 12, Interceptions: 2},
			},
		}

		Convey("When ranking the greatest seasons", func() {
			got := score.Greatest(all)

			Convey("Then single-season players are excluded", func() {
				for _, g := range got {
					So(g.Player, ShouldNotEqual, "One Hit")
				}
			})

			Convey("Then seasons are sorted by score descending", func() {
				So(len(got), ShouldEqual, 4)
				for i := 1; i < len(got); i++ {
					So(got[i-1].Score, ShouldBeGreaterThanOrEqualTo, got[i].Score)
				}
				// 5200/50 + 45*10 - 6*5 + 100 = 104+450-30+100
				So(got[0].Player, ShouldEqual, "Dan Forth")
				So(got[0].Season, ShouldEqual, "Y2")
				So(got[0].Score, ShouldEqual, 624)
				So(got[0].Tier, ShouldEqual, score.TierElite)
			})

			Convey("Then key stats describe the formula's inputs", func() {
				So(got[0].KeyStats, ShouldContain, "5200 pass yds")
				So(got[0].KeyStats, ShouldContain, "45 pass TD")
			})

			Convey("Then award counts come from the single season, not the career", func() {
				So(got[0].Awards.MVP, ShouldEqual, 1)
			})
		})

		Convey("When the store is empty", func() {
			Convey("Then the ranking is empty, not an error", func() {
				So(score.Greatest(map[model.PlayerKey][]model.SeasonSnapshot{}), ShouldBeEmpty)
				So(score.Greatest(nil), ShouldBeEmpty)
			})
		})
	})

	Convey("Given more than twenty scorable seasons", t, func() {
		all := make(map[model.PlayerKey][]model.SeasonSnapshot)
		for i := 0; i < 15; i++ {
			key := model.PlayerKey("QB:" + string(rune('A'+i)))
			all[key] = []model.SeasonSnapshot{
				{Season: "Y1", PassYds: float64(1000 + i*100)},
				{Season: "Y2", PassYds: float64(2000 + i*100)},
			}
		}

		Convey("Then the ranking is truncated to the limit", func() {
			So(len(score.Greatest(all)), ShouldEqual, score.GreatestLimit)
		})
	})
}
