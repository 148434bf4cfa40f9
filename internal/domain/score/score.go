// Package score computes deterministic composite quality scores for single
// seasons and classifies them into discrete tiers.
package score

import (
	"fmt"
	"sort"

	"github.com/okian/gridiron/internal/domain/model"
)

// Variant selects which scoring formula applies to a position. The set is
// closed: positions outside it (offensive line) are not scored.
type Variant int

const (
	VariantQB Variant = iota
	VariantRB
	VariantWRTE
	VariantDefense
)

// Tier labels, best to worst.
const (
	TierLegendary = "LEGENDARY"
	TierElite     = "ELITE"
	TierGreat     = "GREAT"
	TierNotable   = "NOTABLE"
	TierSolid     = "SOLID"
)

// Tier thresholds, inclusive lower bounds.
const (
	legendaryMin = 800
	eliteMin     = 600
	greatMin     = 400
	notableMin   = 250
)

// Award bonus weights, applied to the single season's own award counts.
const (
	mvpBonus   = 100
	opoyBonus  = 75
	sbmvpBonus = 80
	rotyBonus  = 50
	ringBonus  = 60
)

// GreatestLimit caps the greatest-seasons ranking.
const GreatestLimit = 20

var variantByPosition = map[string]Variant{
	model.PosQB: VariantQB,
	model.PosRB: VariantRB,
	model.PosWR: VariantWRTE,
	model.PosTE: VariantWRTE,
	model.PosLB: VariantDefense,
	model.PosDB: VariantDefense,
	model.PosDL: VariantDefense,
}

// VariantFor returns the scoring variant for a position code. The second
// return is false for positions with no formula.
func VariantFor(position string) (Variant, bool) {
	v, ok := variantByPosition[position]
	return v, ok
}

var formulas = map[Variant]func(model.SeasonSnapshot) float64{
	VariantQB: func(s model.SeasonSnapshot) float64 {
		return s.PassYds/50 + s.PassTD*10 + s.RushYds/20 + s.RushTD*15 - s.Interceptions*5
	},
	VariantRB: func(s model.SeasonSnapshot) float64 {
		return s.RushYds/20 + s.RushTD*15 + s.RecYds/30 + s.RecTD*10
	},
	VariantWRTE: func(s model.SeasonSnapshot) float64 {
		return s.RecYds/20 + s.Receptions*2 + s.RecTD*15
	},
	VariantDefense: func(s model.SeasonSnapshot) float64 {
		return s.Tackles*2 + s.Sacks*15 + s.Interceptions*20 + s.ForcedFumbles*10
	},
}

func awardBonus(a model.AwardCounts) float64 {
	return float64(a.MVP)*mvpBonus +
		float64(a.OPOY)*opoyBonus +
		float64(a.SBMVP)*sbmvpBonus +
		float64(a.ROTY)*rotyBonus +
		float64(a.Rings)*ringBonus
}

// Season scores one snapshot for the given position. Pure: the same
// snapshot and position always yield bit-identical results. Positions with
// no scoring variant yield 0.
func Season(s model.SeasonSnapshot, position string) float64 {
	v, ok := VariantFor(position)
	if !ok {
		return 0
	}
	return formulas[v](s) + awardBonus(s.Awards)
}

// TierFor classifies a score into its tier.
func TierFor(score float64) string {
	switch {
	case score >= legendaryMin:
		return TierLegendary
	case score >= eliteMin:
		return TierElite
	case score >= greatMin:
		return TierGreat
	case score >= notableMin:
		return TierNotable
	default:
		return TierSolid
	}
}

// Greatest scores every stored season of every player with more than one
// recorded season and returns the top entries, best first. Seasons that
// score 0 or less (unscorable positions, empty lines) are not reported.
func Greatest(all map[model.PlayerKey][]model.SeasonSnapshot) []model.GreatSeason {
	keys := make([]model.PlayerKey, 0, len(all))
	for k := range all {
		if len(all[k]) > 1 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var seasons []model.GreatSeason
	for _, k := range keys {
		pos := k.Position()
		for _, snap := range all[k] {
			sc := Season(snap, pos)
			if sc <= 0 {
				continue
			}
			seasons = append(seasons, model.GreatSeason{
				Player:   k.PlayerName(),
				Position: pos,
				Season:   snap.Season,
				Score:    sc,
				Tier:     TierFor(sc),
				KeyStats: keyStats(snap, pos),
				Awards:   snap.Awards,
			})
		}
	}

	sort.SliceStable(seasons, func(i, j int) bool { return seasons[i].Score > seasons[j].Score })
	if len(seasons) > GreatestLimit {
		seasons = seasons[:GreatestLimit]
	}
	return seasons
}

// keyStats formats the stats the variant's formula actually rewards,
// skipping zero lines.
func keyStats(s model.SeasonSnapshot, position string) []string {
	v, ok := VariantFor(position)
	if !ok {
		return nil
	}

	type line struct {
		value float64
		label string
	}
	var lines []line
	switch v {
	case VariantQB:
		lines = []line{
			{s.PassYds, "pass yds"},
			{s.PassTD, "pass TD"},
			{s.RushYds, "rush yds"},
			{s.RushTD, "rush TD"},
			{s.Interceptions, "INT"},
		}
	case VariantRB:
		lines = []line{
			{s.RushYds, "rush yds"},
			{s.RushTD, "rush TD"},
			{s.RecYds, "rec yds"},
			{s.RecTD, "rec TD"},
		}
	case VariantWRTE:
		lines = []line{
			{s.RecYds, "rec yds"},
			{s.Receptions, "rec"},
			{s.RecTD, "rec TD"},
		}
	case VariantDefense:
		lines = []line{
			{s.Tackles, "tackles"},
			{s.Sacks, "sacks"},
			{s.Interceptions, "INT"},
			{s.ForcedFumbles, "FF"},
		}
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.value != 0 {
			out = append(out, fmt.Sprintf("%g %s", l.value, l.label))
		}
	}
	return out
}
