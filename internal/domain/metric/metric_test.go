package metric_test

import (
	"math"
	"testing"

	"github.com/okian/gridiron/internal/domain/metric"
	"github.com/okian/gridiron/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRatio(t *testing.T) {
	Convey("Given the guarded ratio helper", t, func() {
		Convey("When the denominator is positive", func() {
			So(metric.Ratio(3000, 400), ShouldEqual, 7.5)
		})

		Convey("When the denominator is zero", func() {
			v := metric.Ratio(3000, 0)

			Convey("Then the value is exactly 0, never NaN or Inf", func() {
				So(v, ShouldEqual, 0)
				So(math.IsNaN(v), ShouldBeFalse)
				So(math.IsInf(v, 0), ShouldBeFalse)
			})
		})

		Convey("When the denominator is negative", func() {
			So(metric.Ratio(10, -5), ShouldEqual, 0)
		})

		Convey("When the numerator is zero", func() {
			So(metric.Ratio(0, 100), ShouldEqual, 0)
		})
	})
}

func TestLeaders(t *testing.T) {
	Convey("Given career collections with mixed sample sizes", t, func() {
		careers := map[string][]model.CareerPlayer{
			model.PosQB: {
				{Name: "Big Sample", Position: model.PosQB, Games: 48, PassYds: 3200, PassAtt: 400, PassTD: 30, Interceptions: 10},
				// Higher per-attempt average but below the 200-attempt gate.
				{Name: "Small Sample", Position: model.PosQB, Games: 8, PassYds: 1900, PassAtt: 190, PassTD: 20, Interceptions: 1},
				// Zero interceptions: no TD/INT sample at all.
				{Name: "Clean Sheet", Position: model.PosQB, Games: 40, PassYds: 2800, PassAtt: 350, PassTD: 25, Interceptions: 0},
			},
			model.PosRB: {
				{Name: "Workhorse", Position: model.PosRB, Games: 40, RushYds: 4500, Carries: 900},
			},
			model.PosWR: {
				{Name: "Deep Threat", Position: model.PosWR, Games: 40, RecYds: 3400, Receptions: 170},
			},
		}

		leaders := metric.Leaders(careers)
		byStat := make(map[string]model.RecordEntry, len(leaders))
		for _, e := range leaders {
			byStat[e.Stat] = e
		}

		Convey("Then the yards-per-attempt leader clears the attempts gate", func() {
			e, ok := byStat["Yards per Attempt"]
			So(ok, ShouldBeTrue)
			So(e.Player, ShouldEqual, "Big Sample")
			So(e.Value, ShouldEqual, 8.0)
		})

		Convey("Then a below-threshold player is excluded entirely, not penalized", func() {
			for _, e := range leaders {
				So(e.Player, ShouldNotEqual, "Small Sample")
			}
		})

		Convey("Then the TD/INT leader requires a positive denominator sample", func() {
			e, ok := byStat["TD/INT Ratio"]
			So(ok, ShouldBeTrue)
			So(e.Player, ShouldEqual, "Big Sample")
			So(e.Value, ShouldEqual, 3.0)
		})

		Convey("Then yards per carry and yards per catch come from their own collections", func() {
			So(byStat["Yards per Carry"].Player, ShouldEqual, "Workhorse")
			So(byStat["Yards per Carry"].Value, ShouldEqual, 5.0)
			So(byStat["Yards per Catch"].Player, ShouldEqual, "Deep Threat")
			So(byStat["Yards per Catch"].Value, ShouldEqual, 20.0)
		})

		Convey("Then per-game metrics respect the 32-game minimum", func() {
			e, ok := byStat["Passing Yards per Game"]
			So(ok, ShouldBeTrue)
			So(e.Player, ShouldEqual, "Big Sample")
		})
	})

	Convey("Given empty career collections", t, func() {
		Convey("Then no leaders are reported and nothing errors", func() {
			So(metric.Leaders(map[string][]model.CareerPlayer{}), ShouldBeEmpty)
			So(metric.Leaders(nil), ShouldBeEmpty)
		})
	})

	Convey("Given a player with games but zero production", t, func() {
		careers := map[string][]model.CareerPlayer{
			model.PosRB: {{Name: "Benchwarmer", Position: model.PosRB, Games: 40, Carries: 150, RushYds: 0}},
		}

		Convey("Then a zero-valued ratio never becomes a leader", func() {
			for _, e := range metric.Leaders(careers) {
				So(e.Stat, ShouldNotEqual, "Yards per Carry")
			}
		})
	})
}
