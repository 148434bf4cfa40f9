// Package metric computes guarded ratio statistics from raw counting stats.
//
// Every ratio is guarded: a zero denominator yields 0, never NaN or Inf.
// "Best in class" metrics additionally gate on a minimum sample size;
// players below threshold are excluded from consideration entirely, not
// merely penalized.
package metric

import "github.com/okian/gridiron/internal/domain/model"

// Minimum-sample thresholds for single-leader metrics.
const (
	MinPassAttempts = 200
	MinCarries      = 100
	MinReceptions   = 50
	MinGames        = 32
)

// Ratio divides num by den, coercing the result to 0 when the denominator
// is not positive. The returned value is always finite and non-negative
// for non-negative inputs.
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// definition describes one best-in-class metric: which collections it scans,
// how a player's value is computed, and the sample gate a player must clear.
type definition struct {
	stat      string
	positions []string
	value     func(model.CareerPlayer) float64
	qualifies func(model.CareerPlayer) bool
}

var definitions = []definition{
	{
		stat:      "Yards per Attempt",
		positions: []string{model.PosQB},
		value:     func(p model.CareerPlayer) float64 { return Ratio(p.PassYds, p.PassAtt) },
		qualifies: func(p model.CareerPlayer) bool { return p.PassAtt >= MinPassAttempts },
	},
	{
		stat:      "TD/INT Ratio",
		positions: []string{model.PosQB},
		value:     func(p model.CareerPlayer) float64 { return Ratio(p.PassTD, p.Interceptions) },
		// A zero-interception passer has no ratio sample and is excluded
		// rather than reported as 0 or infinity.
		qualifies: func(p model.CareerPlayer) bool { return p.PassAtt >= MinPassAttempts && p.Interceptions > 0 },
	},
	{
		stat:      "Yards per Carry",
		positions: []string{model.PosRB},
		value:     func(p model.CareerPlayer) float64 { return Ratio(p.RushYds, p.Carries) },
		qualifies: func(p model.CareerPlayer) bool { return p.Carries >= MinCarries },
	},
	{
		stat:      "Yards per Catch",
		positions: []string{model.PosWR, model.PosTE},
		value:     func(p model.CareerPlayer) float64 { return Ratio(p.RecYds, p.Receptions) },
		qualifies: func(p model.CareerPlayer) bool { return p.Receptions >= MinReceptions },
	},
	{
		stat:      "Passing Yards per Game",
		positions: []string{model.PosQB},
		value:     func(p model.CareerPlayer) float64 { return Ratio(p.PassYds, p.Games) },
		qualifies: func(p model.CareerPlayer) bool { return p.Games >= MinGames },
	},
	{
		stat:      "Rushing Yards per Game",
		positions: []string{model.PosRB},
		value:     func(p model.CareerPlayer) float64 { return Ratio(p.RushYds, p.Games) },
		qualifies: func(p model.CareerPlayer) bool { return p.Games >= MinGames },
	},
	{
		stat:      "Receiving Yards per Game",
		positions: []string{model.PosWR, model.PosTE},
		value:     func(p model.CareerPlayer) float64 { return Ratio(p.RecYds, p.Games) },
		qualifies: func(p model.CareerPlayer) bool { return p.Games >= MinGames },
	},
	{
		stat:      "Tackles per Game",
		positions: []string{model.PosLB, model.PosDB, model.PosDL},
		value:     func(p model.CareerPlayer) float64 { return Ratio(p.Tackles, p.Games) },
		qualifies: func(p model.CareerPlayer) bool { return p.Games >= MinGames },
	},
	{
		stat:      "Talent per Game",
		positions: model.Positions,
		value:     func(p model.CareerPlayer) float64 { return p.TPG },
		qualifies: func(p model.CareerPlayer) bool { return p.Games >= MinGames },
	},
	{
		stat:      "Legacy Rating",
		positions: model.Positions,
		value:     func(p model.CareerPlayer) float64 { return p.Legacy },
		qualifies: func(p model.CareerPlayer) bool { return p.Games >= MinGames },
	},
}

// Leaders returns the single best-in-class entry per advanced metric,
// computed freshly from the supplied career collections (keyed by position
// code). Metrics with no qualifying player are omitted rather than erroring.
// Ties keep the first qualifier in collection order.
func Leaders(careers map[string][]model.CareerPlayer) []model.RecordEntry {
	out := make([]model.RecordEntry, 0, len(definitions))
	for _, def := range definitions {
		var best model.RecordEntry
		found := false
		for _, pos := range def.positions {
			for _, p := range careers[pos] {
				if !def.qualifies(p) {
					continue
				}
				v := def.value(p)
				if v <= 0 {
					continue
				}
				if !found || v > best.Value {
					best = model.RecordEntry{
						Stat:     def.stat,
						Value:    v,
						Player:   p.Name,
						Team:     p.Team,
						Position: p.Position,
					}
					found = true
				}
			}
		}
		if found {
			out = append(out, best)
		}
	}
	return out
}
