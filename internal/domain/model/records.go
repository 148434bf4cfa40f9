package model

// RecordEntry is one ranked leaderboard row. Pure output: it has no
// identity beyond display and is recomputed from current state on demand.
type RecordEntry struct {
	Stat     string  `json:"stat"`
	Value    float64 `json:"value"`
	Player   string  `json:"player"`
	Team     string  `json:"team,omitempty"`
	Position string  `json:"position"`
	Season   string  `json:"season,omitempty"`
}

// Board groups the ranked entries of a single stat under its heading.
type Board struct {
	Stat    string        `json:"stat"`
	Entries []RecordEntry `json:"entries"`
}

// GreatSeason is one scored season in the greatest-seasons ranking.
type GreatSeason struct {
	Player   string      `json:"player"`
	Position string      `json:"position"`
	Season   string      `json:"season"`
	Score    float64     `json:"score"`
	Tier     string      `json:"tier"`
	KeyStats []string    `json:"key_stats"`
	Awards   AwardCounts `json:"awards"`
}

// PaceRecord forecasts an active player's run at an existing career record.
type PaceRecord struct {
	Player          string  `json:"player"`
	Position        string  `json:"position"`
	Record          string  `json:"record"`
	CurrentValue    float64 `json:"current_value"`
	RecordValue     float64 `json:"record_value"`
	RecordHolder    string  `json:"record_holder"`
	SeasonsToBreak  int     `json:"seasons_to_break"`
	PacePerSeason   float64 `json:"pace_per_season"`
	PercentToRecord float64 `json:"percent_to_record"`
}
