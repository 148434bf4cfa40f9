package seedload

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	tierDivisor        = 8
)

// Performance tier cases, weighted toward average seasons.
const (
	caseAverage = iota
	caseAverage2
	caseAverage3
	caseGood
	caseGood2
	casePoor
	caseElite
	caseInjury
)

// Per-tier output multipliers applied to a position's baseline stat line.
const (
	averageFactorMin = 0.75
	averageFactorRng = 0.45
	goodFactorMin    = 1.1
	goodFactorRng    = 0.25
	poorFactorMin    = 0.35
	poorFactorRng    = 0.35
	eliteFactorMin   = 1.35
	eliteFactorRng   = 0.25
	injuryFactorMin  = 0.1
	injuryFactorRng  = 0.3
)

const (
	fullSeasonGames   = 16
	activeShare       = 0.3
	eliteAwardChance  = 0.5
	seasonAwardChance = 0.04
)

var firstNames = []string{
	"Dan", "Marcus", "Troy", "Emmitt", "Jerry", "Reggie", "Lawrence", "Deion",
	"Walter", "Barry", "Randy", "Tony", "Derrick", "Calvin", "Drew", "Aaron",
	"Russell", "Patrick", "Josh", "Justin", "Lamar", "Saquon", "Tyreek", "Davante",
}

var lastNames = []string{
	"Forth", "Hill", "Osman", "Carter", "Reeves", "Walker", "Mitchell", "Sanders",
	"Bryant", "Coleman", "Hayes", "Porter", "Franklin", "Dawson", "Mercer", "Quinn",
	"Ellison", "Boyd", "Sharpe", "Lockett", "Vance", "Ingram", "Talbot", "Rhodes",
}

var teams = []string{"ATX", "BUF", "CHI", "DEN", "GBP", "HOU", "KC", "LAR", "MIA", "NOR", "PHI", "SEA"}

// positionPool is sampled uniformly; receivers are the largest category, as
// in real rosters.
var positionPool = []string{
	model.PosQB,
	model.PosRB, model.PosRB,
	model.PosWR, model.PosWR, model.PosWR,
	model.PosTE,
	model.PosLB, model.PosLB,
	model.PosDB, model.PosDB,
	model.PosDL,
}

// baseline full-season stat lines per position, before the tier factor.
type baseline struct {
	passYds, passTD, passAtt, interceptions float64
	rushYds, rushTD, carries                float64
	receptions, recYds, recTD               float64
	tackles, sacks, forcedFumbles           float64
}

var baselines = map[string]baseline{
	model.PosQB: {passYds: 4000, passTD: 28, passAtt: 550, interceptions: 12, rushYds: 250, rushTD: 2, carries: 45},
	model.PosRB: {rushYds: 1100, rushTD: 9, carries: 250, receptions: 40, recYds: 320, recTD: 2},
	model.PosWR: {receptions: 80, recYds: 1050, recTD: 8},
	model.PosTE: {receptions: 60, recYds: 700, recTD: 6},
	model.PosLB: {tackles: 110, sacks: 4, forcedFumbles: 2, interceptions: 1},
	model.PosDB: {tackles: 70, sacks: 1, forcedFumbles: 1, interceptions: 4},
	model.PosDL: {tackles: 50, sacks: 9, forcedFumbles: 2},
}

// randInt returns a uniform random int in [0, n) using crypto/rand.
func randInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// randFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func randFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// player is one synthetic roster member.
type player struct {
	name     string
	position string
	team     string
	active   bool
}

// generateRoster creates numPlayers synthetic players with unique names.
// Name uniqueness matters: two players sharing position and name would
// merge into one history line.
func generateRoster(numPlayers int) []player {
	roster := make([]player, 0, numPlayers)
	used := make(map[string]bool, numPlayers)

	for len(roster) < numPlayers {
		name := firstNames[randInt(len(firstNames))] + " " + lastNames[randInt(len(lastNames))]
		if used[name] {
			name = fmt.Sprintf("%s %c.", name, 'A'+rune(randInt(26)))
			if used[name] {
				continue
			}
		}
		used[name] = true
		roster = append(roster, player{
			name:     name,
			position: positionPool[randInt(len(positionPool))],
			team:     teams[randInt(len(teams))],
			active:   randFloat() < activeShare,
		})
	}
	return roster
}

// tierFactor draws a season quality multiplier with the weighted tier
// distribution.
func tierFactor() float64 {
	switch randInt(tierDivisor) {
	case caseAverage, caseAverage2, caseAverage3:
		return averageFactorMin + randFloat()*averageFactorRng
	case caseGood, caseGood2:
		return goodFactorMin + randFloat()*goodFactorRng
	case casePoor:
		return poorFactorMin + randFloat()*poorFactorRng
	case caseElite:
		return eliteFactorMin + randFloat()*eliteFactorRng
	default:
		return injuryFactorMin + randFloat()*injuryFactorRng
	}
}

// generateSeasonRow builds one season stat row for a player.
func generateSeasonRow(p player, season string) model.StatRow {
	b := baselines[p.position]
	factor := tierFactor()

	games := float64(fullSeasonGames)
	if factor < poorFactorMin {
		games = float64(4 + randInt(8))
	}

	row := model.StatRow{
		Position:      p.position,
		Name:          p.name,
		Team:          p.team,
		Season:        season,
		Games:         games,
		PassYds:       b.passYds * factor,
		PassTD:        b.passTD * factor,
		PassAtt:       b.passAtt * factor,
		Interceptions: b.interceptions * factor,
		RushYds:       b.rushYds * factor,
		RushTD:        b.rushTD * factor,
		Carries:       b.carries * factor,
		Receptions:    b.receptions * factor,
		RecYds:        b.recYds * factor,
		RecTD:         b.recTD * factor,
		Tackles:       b.tackles * factor,
		Sacks:         b.sacks * factor,
		ForcedFumbles: b.forcedFumbles * factor,
	}

	if factor >= eliteFactorMin && randFloat() < eliteAwardChance {
		row.Awards.MVP = 1
	} else if randFloat() < seasonAwardChance {
		row.Awards.OPOY = 1
	}
	return row
}

// generateRows creates season stat rows for the whole roster.
func generateRows(ctx context.Context, config *Config, roster []player, stats *Stats) []model.StatRow {
	logger.Get().Info(ctx, "generating season rows",
		logger.Int("players", len(roster)),
		logger.Int("seasonsPerPlayer", config.SeasonsPerPlayer),
	)

	rows := make([]model.StatRow, 0, len(roster)*config.SeasonsPerPlayer)
	for _, p := range roster {
		for s := 1; s <= config.SeasonsPerPlayer; s++ {
			rows = append(rows, generateSeasonRow(p, fmt.Sprintf("Y%d", s)))
		}
	}

	stats.RowsGenerated = len(rows)
	logger.Get().Info(ctx, "generated season rows", logger.Int("count", len(rows)))
	return rows
}

// generateCareers accumulates the generated rows into per-position career
// collections, the same aggregation the upstream data provider would do.
func generateCareers(roster []player, rows []model.StatRow) map[string][]model.CareerPlayer {
	byName := make(map[string]*model.CareerPlayer, len(roster))
	for _, p := range roster {
		cp := &model.CareerPlayer{
			Name:     p.name,
			Team:     p.team,
			Position: p.position,
		}
		if p.active {
			cp.Status = model.StatusActive
		}
		byName[p.position+":"+p.name] = cp
	}

	for _, r := range rows {
		cp, ok := byName[r.Position+":"+r.Name]
		if !ok {
			continue
		}
		cp.Games += r.Games
		cp.PassYds += r.PassYds
		cp.PassTD += r.PassTD
		cp.PassAtt += r.PassAtt
		cp.Interceptions += r.Interceptions
		cp.RushYds += r.RushYds
		cp.RushTD += r.RushTD
		cp.Carries += r.Carries
		cp.Receptions += r.Receptions
		cp.RecYds += r.RecYds
		cp.RecTD += r.RecTD
		cp.Tackles += r.Tackles
		cp.Sacks += r.Sacks
		cp.ForcedFumbles += r.ForcedFumbles
		cp.Awards.MVP += r.Awards.MVP
		cp.Awards.OPOY += r.Awards.OPOY
	}

	careers := make(map[string][]model.CareerPlayer, len(model.Positions))
	for _, cp := range byName {
		careers[cp.Position] = append(careers[cp.Position], *cp)
	}
	return careers
}
