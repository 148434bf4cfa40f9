package leaderboard

import "github.com/okian/gridiron/internal/domain/model"

// StandardCareerBoards ranks career totals into the standard record boards.
// Receiving boards rank wide receivers and tight ends together; defensive
// boards pool the three defensive position categories.
func StandardCareerBoards(careers map[string][]model.CareerPlayer, n int) []model.Board {
	receiving := append(append([]model.CareerPlayer{}, careers[model.PosWR]...), careers[model.PosTE]...)
	defense := append(append(append([]model.CareerPlayer{}, careers[model.PosLB]...),
		careers[model.PosDB]...), careers[model.PosDL]...)

	return []model.Board{
		CareerBoard("Passing Yards", careers[model.PosQB],
			func(p model.CareerPlayer) float64 { return p.PassYds }, n),
		CareerBoard("Passing TDs", careers[model.PosQB],
			func(p model.CareerPlayer) float64 { return p.PassTD }, n),
		CareerBoard("Rushing Yards", careers[model.PosRB],
			func(p model.CareerPlayer) float64 { return p.RushYds }, n),
		CareerBoard("Rushing TDs", careers[model.PosRB],
			func(p model.CareerPlayer) float64 { return p.RushTD }, n),
		CareerBoard("Receiving Yards", receiving,
			func(p model.CareerPlayer) float64 { return p.RecYds }, n),
		CareerBoard("Receptions", receiving,
			func(p model.CareerPlayer) float64 { return p.Receptions }, n),
		CareerBoard("Receiving TDs", receiving,
			func(p model.CareerPlayer) float64 { return p.RecTD }, n),
		CareerBoard("Tackles", defense,
			func(p model.CareerPlayer) float64 { return p.Tackles }, n),
		CareerBoard("Sacks", defense,
			func(p model.CareerPlayer) float64 { return p.Sacks }, n),
	}
}

// StandardSeasonBoards ranks flattened season history into the standard
// single-season record boards, mirroring StandardCareerBoards.
func StandardSeasonBoards(entries []SeasonEntry, n int) []model.Board {
	qb := []string{model.PosQB}
	rb := []string{model.PosRB}
	receiving := []string{model.PosWR, model.PosTE}
	defense := []string{model.PosLB, model.PosDB, model.PosDL}

	return []model.Board{
		SeasonBoard("Passing Yards", entries, qb,
			func(s model.SeasonSnapshot) float64 { return s.PassYds }, n),
		SeasonBoard("Passing TDs", entries, qb,
			func(s model.SeasonSnapshot) float64 { return s.PassTD }, n),
		SeasonBoard("Rushing Yards", entries, rb,
			func(s model.SeasonSnapshot) float64 { return s.RushYds }, n),
		SeasonBoard("Rushing TDs", entries, rb,
			func(s model.SeasonSnapshot) float64 { return s.RushTD }, n),
		SeasonBoard("Receiving Yards", entries, receiving,
			func(s model.SeasonSnapshot) float64 { return s.RecYds }, n),
		SeasonBoard("Receptions", entries, receiving,
			func(s model.SeasonSnapshot) float64 { return s.Receptions }, n),
		SeasonBoard("Receiving TDs", entries, receiving,
			func(s model.SeasonSnapshot) float64 { return s.RecTD }, n),
		SeasonBoard("Tackles", entries, defense,
			func(s model.SeasonSnapshot) float64 { return s.Tackles }, n),
		SeasonBoard("Sacks", entries, defense,
			func(s model.SeasonSnapshot) float64 { return s.Sacks }, n),
	}
}
