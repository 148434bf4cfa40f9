// Package pace extrapolates active players' current rates to a standard
// season and forecasts how soon they would break an existing career record.
package pace

import (
	"math"
	"sort"

	"github.com/okian/gridiron/internal/domain/model"
)

const (
	// GamesPerSeason is the standard season length rates are normalized to.
	GamesPerSeason = 16

	// DefaultHorizon caps how many seasons out a projection is still worth
	// reporting; farther forecasts are too speculative.
	DefaultHorizon = 5

	// minGames is the minimum career sample before a rate is extrapolated.
	minGames = 16
)

// Category binds one governing career record to the players chasing it.
// The record is the maximum value currently held in the category.
type Category struct {
	Record  string
	Players []model.CareerPlayer
	Value   func(model.CareerPlayer) float64
}

// StandardCategories covers the three canonical record chases. The same
// algorithm extends to any (category, record-holder) pair.
func StandardCategories(careers map[string][]model.CareerPlayer) []Category {
	return []Category{
		{
			Record:  "Career Passing Yards",
			Players: careers[model.PosQB],
			Value:   func(p model.CareerPlayer) float64 { return p.PassYds },
		},
		{
			Record:  "Career Rushing Yards",
			Players: careers[model.PosRB],
			Value:   func(p model.CareerPlayer) float64 { return p.RushYds },
		},
		{
			Record:  "Career Receiving Yards",
			Players: careers[model.PosWR],
			Value:   func(p model.CareerPlayer) float64 { return p.RecYds },
		},
	}
}

// Projections emits one record per active player projected to break the
// category's record within horizon seasons, sorted soonest first. Players
// below the games minimum, at or above the record already, or with a
// non-positive pace are omitted silently.
func Projections(categories []Category, horizon int) []model.PaceRecord {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	var out []model.PaceRecord
	for _, c := range categories {
		record, holder := governingRecord(c)
		if record <= 0 {
			continue
		}
		for _, p := range c.Players {
			if !p.Active() || p.Games < minGames {
				continue
			}
			current := c.Value(p)
			if current >= record {
				continue
			}
			perSeason := current / p.Games * GamesPerSeason
			if perSeason <= 0 {
				continue
			}
			remaining := record - current
			seasons := int(math.Ceil(remaining / perSeason))
			if seasons > horizon {
				continue
			}
			out = append(out, model.PaceRecord{
				Player:          p.Name,
				Position:        p.Position,
				Record:          c.Record,
				CurrentValue:    current,
				RecordValue:     record,
				RecordHolder:    holder,
				SeasonsToBreak:  seasons,
				PacePerSeason:   perSeason,
				PercentToRecord: current / record * 100,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SeasonsToBreak < out[j].SeasonsToBreak
	})
	return out
}

// governingRecord finds the category's current record value and holder,
// active or not.
func governingRecord(c Category) (float64, string) {
	var record float64
	var holder string
	for _, p := range c.Players {
		if v := c.Value(p); v > record {
			record = v
			holder = p.Name
		}
	}
	return record, holder
}
