// Package leaderboard provides the ranked top-N primitive shared by the
// career and single-season record queries.
package leaderboard

import (
	"sort"

	"github.com/okian/gridiron/internal/domain/model"
)

// DefaultSize is how many entries a record board carries unless a caller
// asks for a different depth.
const DefaultSize = 10

// TopN ranks items by value, descending, and returns at most n built
// entries. Items with non-positive values are filtered out before ranking.
// Ties keep their original relative order (stable sort); exact tie ordering
// is not a guaranteed contract, only that tied values stay grouped. An
// empty result is a normal outcome, never an error.
func TopN[T any](items []T, value func(T) float64, n int, build func(T, float64) model.RecordEntry) []model.RecordEntry {
	if n <= 0 {
		return nil
	}
	type ranked struct {
		item  T
		value float64
	}
	qualified := make([]ranked, 0, len(items))
	for _, it := range items {
		if v := value(it); v > 0 {
			qualified = append(qualified, ranked{item: it, value: v})
		}
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].value > qualified[j].value
	})
	if len(qualified) > n {
		qualified = qualified[:n]
	}
	out := make([]model.RecordEntry, 0, len(qualified))
	for _, r := range qualified {
		out = append(out, build(r.item, r.value))
	}
	return out
}

// CareerBoard ranks career totals for one stat across the given players.
func CareerBoard(stat string, players []model.CareerPlayer, value func(model.CareerPlayer) float64, n int) model.Board {
	entries := TopN(players, value, n, func(p model.CareerPlayer, v float64) model.RecordEntry {
		return model.RecordEntry{
			Stat:     stat,
			Value:    v,
			Player:   p.Name,
			Team:     p.Team,
			Position: p.Position,
		}
	})
	return model.Board{Stat: stat, Entries: entries}
}

// SeasonEntry pairs a player key with one of that player's stored seasons.
type SeasonEntry struct {
	Key      model.PlayerKey
	Snapshot model.SeasonSnapshot
}

// Flatten expands a full history mapping into season entries, ordered by
// player key so repeated queries over unchanged state rank identically.
func Flatten(all map[model.PlayerKey][]model.SeasonSnapshot) []SeasonEntry {
	keys := make([]model.PlayerKey, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var out []SeasonEntry
	for _, k := range keys {
		for _, snap := range all[k] {
			out = append(out, SeasonEntry{Key: k, Snapshot: snap})
		}
	}
	return out
}

// SeasonBoard ranks single-season values across snapshots, partitioned to
// keys whose position prefix is one of positions.
func SeasonBoard(stat string, entries []SeasonEntry, positions []string, value func(model.SeasonSnapshot) float64, n int) model.Board {
	filtered := make([]SeasonEntry, 0, len(entries))
	for _, e := range entries {
		pos := e.Key.Position()
		for _, p := range positions {
			if pos == p {
				filtered = append(filtered, e)
				break
			}
		}
	}
	ranked := TopN(filtered, func(e SeasonEntry) float64 { return value(e.Snapshot) }, n,
		func(e SeasonEntry, v float64) model.RecordEntry {
			return model.RecordEntry{
				Stat:     stat,
				Value:    v,
				Player:   e.Key.PlayerName(),
				Team:     e.Snapshot.Team,
				Position: e.Key.Position(),
				Season:   e.Snapshot.Season,
			}
		})
	return model.Board{Stat: stat, Entries: ranked}
}
