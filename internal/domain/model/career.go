package model

// StatusActive marks a player who is still accumulating seasons and is
// eligible for pace projections.
const StatusActive = "Active"

// CareerPlayer holds a player's current cumulative totals. One instance
// lives in the collection of its position category; the computation core
// treats it as read-only input and the loading layer replaces collections
// wholesale on each upload.
type CareerPlayer struct {
	Name     string  `json:"name"`
	Team     string  `json:"team,omitempty"`
	Position string  `json:"position"`
	Status   string  `json:"status,omitempty"`
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

	// TPG ("talent per game") and Legacy are precomputed efficiency and
	// cumulative-impact ratings supplied with the upload, not derived here.
	TPG    float64 `json:"tpg"`
	Legacy float64 `json:"legacy"`
}

// Active reports whether the player is eligible for forward projections.
func (p CareerPlayer) Active() bool {
	return p.Status == StatusActive
}
