package model

// PlaceholderSeason substitutes a malformed or absent season label. The
// label is the dedup key for replace-on-reupload, so it must never be empty.
const PlaceholderSeason = "Y?"

// AwardCounts holds per-season (or career) award tallies.
type AwardCounts struct {
	MVP   int `json:"mvp"`
	OPOY  int `json:"opoy"`
	SBMVP int `json:"sbmvp"`
	ROTY  int `json:"roty"`
	Rings int `json:"rings"`
}

// Total returns the number of awards counted, all kinds combined.
func (a AwardCounts) Total() int {
	return a.MVP + a.OPOY + a.SBMVP + a.ROTY + a.Rings
}

// StatRow is one normalized upload row: one player, one season, tagged with
// position. Absent numeric fields decode as 0, never as missing-data errors.
type StatRow struct {
	Position string  `json:"position"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Season   string  `json:"season"`
	Games    float64 `json:"games"`

	PassYds       float64 `json:"pass_yds"`
	PassTD        float64 `json:"pass_td"`
	PassAtt       float64 `json:"pass_att"`
	Interceptions float64 `json:"interceptions"`

	RushYds float64 `json:"rush_yds"`
	RushTD  float64 `json:"rush_td"`
	Carries float64 `json:"carries"`

	Receptions float64 `json:"receptions"`
	RecYds     float64 `json:"rec_yds"`
	RecTD      float64 `json:"rec_td"`

	Tackles       float64 `json:"tackles"`
	Sacks         float64 `json:"sacks"`
	ForcedFumbles float64 `json:"forced_fumbles"`

	Awards AwardCounts `json:"awards"`
}

// Snapshot converts the row into an immutable season snapshot, substituting
// the placeholder label when the season token is absent.
func (r StatRow) Snapshot() SeasonSnapshot {
	season := r.Season
	if season == "" {
		season = PlaceholderSeason
	}
	return SeasonSnapshot{
		Season:        season,
		Team:          r.Team,
		Games:         r.Games,
		PassYds:       r.PassYds,
		PassTD:        r.PassTD,
		PassAtt:       r.PassAtt,
		Interceptions: r.Interceptions,
		RushYds:       r.RushYds,
		RushTD:        r.RushTD,
		Carries:       r.Carries,
		Receptions:    r.Receptions,
		RecYds:        r.RecYds,
		RecTD:         r.RecTD,
		Tackles:       r.Tackles,
		Sacks:         r.Sacks,
		ForcedFumbles: r.ForcedFumbles,
		Awards:        r.Awards,
	}
}

// SeasonSnapshot is one player's full stat line for exactly one season.
// Snapshots are created on upload and never mutated; a later upload carrying
// the same season label supersedes (replaces) the stored one wholesale.
// Interceptions are thrown for passers and caught for defenders; the source
// data model carries a single field for both.
type SeasonSnapshot struct {
	Season string  `json:"season"`
	Team   string  `json:"team,omitempty"`
	Games  float64 `json:"games"`

	PassYds       float64 `json:"pass_yds"`
	PassTD        float64 `json:"pass_td"`
	PassAtt       float64 `json:"pass_att"`
	Interceptions float64 `json:"interceptions"`

	RushYds float64 `json:"rush_yds"`
	RushTD  float64 `json:"rush_td"`
	Carries float64 `json:"carries"`

	Receptions float64 `json:"receptions"`
	RecYds     float64 `json:"rec_yds"`
	RecTD      float64 `json:"rec_td"`

	Tackles       float64 `json:"tackles"`
	Sacks         float64 `json:"sacks"`
	ForcedFumbles float64 `json:"forced_fumbles"`

	Awards AwardCounts `json:"awards"`
}
