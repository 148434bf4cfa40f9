package seedload

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/internal/domain/score"
)

// verifyQueries fetches the record queries and sanity-checks the responses.
func verifyQueries(ctx context.Context, config *Config, stats *Stats) error {
	log.Println("🔍 Verifying record queries...")

	client := newHTTPClient(config.Timeout)

	var season recordsResponse
	if err := fetchJSON(ctx, client, config.BaseURL+"/records/single-season", &season); err != nil {
		return fmt.Errorf("single-season records: %w", err)
	}
	if err := verifyBoards(season.Boards); err != nil {
		return fmt.Errorf("single-season boards: %w", err)
	}

	var allTime recordsResponse
	if err := fetchJSON(ctx, client, config.BaseURL+"/records/all-time", &allTime); err != nil {
		return fmt.Errorf("all-time records: %w", err)
	}
	if err := verifyBoards(allTime.Boards); err != nil {
		return fmt.Errorf("all-time boards: %w", err)
	}

	var greatest greatestResponse
	if err := fetchJSON(ctx, client, config.BaseURL+"/seasons/greatest", &greatest); err != nil {
		return fmt.Errorf("greatest seasons: %w", err)
	}
	if err := verifyGreatest(greatest.Seasons); err != nil {
		return fmt.Errorf("greatest seasons: %w", err)
	}

	var paceResp paceResponse
	if err := fetchJSON(ctx, client, config.BaseURL+"/records/pace", &paceResp); err != nil {
		return fmt.Errorf("pace projections: %w", err)
	}

	if season.Revision != allTime.Revision {
		log.Printf("⚠️  Revision moved between queries: %d -> %d (concurrent uploads?)",
			season.Revision, allTime.Revision)
	}

	displayHighlights(season.Boards, greatest.Seasons, paceResp.Projections, config.Verbose)

	log.Println("✅ Query verification completed")
	return nil
}

// fetchJSON performs a GET and decodes the JSON body into out.
func fetchJSON(ctx context.Context, client *HTTPClient, url string, out interface{}) error {
	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// verifyBoards checks that every board's entries are sorted by value,
// highest first.
func verifyBoards(boards []model.Board) error {
	if len(boards) == 0 {
		return fmt.Errorf("no boards returned")
	}
	for _, board := range boards {
		for i := 1; i < len(board.Entries); i++ {
			if board.Entries[i].Value > board.Entries[i-1].Value {
				return fmt.Errorf("%s board not sorted: entry %d exceeds entry %d",
					board.Stat, i, i-1)
			}
		}
	}
	return nil
}

// verifyGreatest checks ordering and tier labels of the scored seasons.
func verifyGreatest(seasons []model.GreatSeason) error {
	validTiers := map[string]bool{
		score.TierLegendary: true,
		score.TierElite:     true,
		score.TierGreat:     true,
		score.TierNotable:   true,
		score.TierSolid:     true,
	}
	for i, s := range seasons {
		if i > 0 && s.Score > seasons[i-1].Score {
			return fmt.Errorf("not sorted: entry %d exceeds entry %d", i, i-1)
		}
		if !validTiers[s.Tier] {
			return fmt.Errorf("entry %d has unknown tier %q", i, s.Tier)
		}
	}
	return nil
}

// displayHighlights shows top record holders from the fetched queries.
func displayHighlights(boards []model.Board, greatest []model.GreatSeason, projections []model.PaceRecord, verbose bool) {
	for _, board := range boards {
		if len(board.Entries) == 0 {
			continue
		}
		top := board.Entries[0]
		log.Printf("🏆 %s: %s (%s, %s) with %.0f", board.Stat, top.Player, top.Position, top.Season, top.Value)
		if !verbose {
			break
		}
	}

	if len(greatest) > 0 {
		top := greatest[0]
		log.Printf("🥇 Greatest season: %s %s (%s) score %.1f [%s]",
			top.Player, top.Season, top.Position, top.Score, top.Tier)
	}

	if len(projections) > 0 {
		top := projections[0]
		log.Printf("⏱️  Closest record chase: %s at %.1f%% of %s (%d seasons out)",
			top.Player, top.PercentToRecord, top.Record, top.SeasonsToBreak)
	}
}
