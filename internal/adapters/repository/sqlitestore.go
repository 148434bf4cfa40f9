package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/pkg/metrics"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore persists the season history in a SQLite database so history
// survives process restarts. Replace-on-reupload is an upsert keyed on
// (player_key, season); the original insertion sequence is kept so a
// replaced season stays in place.
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite opens (or creates) the history database at path and applies
// the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: apply schema: %v", ErrOpen, err)
	}
	return &SQLiteStore{conn: conn}, nil
}

// Append implements Store.Append.
func (s *SQLiteStore) Append(ctx context.Context, key model.PlayerKey, snap model.SeasonSnapshot) (bool, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreAppendLatency(float64(time.Since(start).Milliseconds()))
	}()

	var exists int
	err := s.conn.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM seasons WHERE player_key = ? AND season = ?`,
		string(key), snap.Season).Scan(&exists)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "query_error")
		return false, fmt.Errorf("check season: %w", err)
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO seasons(
			player_key, season, team, games,
			pass_yds, pass_td, pass_att, interceptions,
			rush_yds, rush_td, carries,
			receptions, rec_yds, rec_td,
			tackles, sacks, forced_fumbles,
			mvp, opoy, sbmvp, roty, rings
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(player_key, season) DO UPDATE SET
			team = excluded.team,
			games = excluded.games,
			pass_yds = excluded.pass_yds,
			pass_td = excluded.pass_td,
			pass_att = excluded.pass_att,
			interceptions = excluded.interceptions,
			rush_yds = excluded.rush_yds,
			rush_td = excluded.rush_td,
			carries = excluded.carries,
			receptions = excluded.receptions,
			rec_yds = excluded.rec_yds,
			rec_td = excluded.rec_td,
			tackles = excluded.tackles,
			sacks = excluded.sacks,
			forced_fumbles = excluded.forced_fumbles,
			mvp = excluded.mvp,
			opoy = excluded.opoy,
			sbmvp = excluded.sbmvp,
			roty = excluded.roty,
			rings = excluded.rings`,
		string(key), snap.Season, snap.Team, snap.Games,
		snap.PassYds, snap.PassTD, snap.PassAtt, snap.Interceptions,
		snap.RushYds, snap.RushTD, snap.Carries,
		snap.Receptions, snap.RecYds, snap.RecTD,
		snap.Tackles, snap.Sacks, snap.ForcedFumbles,
		snap.Awards.MVP, snap.Awards.OPOY, snap.Awards.SBMVP, snap.Awards.ROTY, snap.Awards.Rings,
	)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "append_error")
		return false, fmt.Errorf("append season: %w", err)
	}

	if exists > 0 {
		metrics.RecordSnapshotReplace()
		return true, nil
	}
	metrics.RecordSnapshotAppend()
	metrics.UpdatePlayersTracked(s.Players(ctx))
	return false, nil
}

const selectColumns = `
	player_key, season, team, games,
	pass_yds, pass_td, pass_att, interceptions,
	rush_yds, rush_td, carries,
	receptions, rec_yds, rec_td,
	tackles, sacks, forced_fumbles,
	mvp, opoy, sbmvp, roty, rings`

// Get returns the player's snapshots in insertion order.
func (s *SQLiteStore) Get(ctx context.Context, key model.PlayerKey) ([]model.SeasonSnapshot, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM seasons WHERE player_key = ? ORDER BY seq`, string(key))
	if err != nil {
		metrics.RecordErrorByComponent("repository", "query_error")
		return nil, fmt.Errorf("load seasons: %w", err)
	}
	defer rows.Close()

	out := make([]model.SeasonSnapshot, 0, 8)
	for rows.Next() {
		_, snap, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load seasons: %w", err)
	}
	return out, nil
}

// AllEntries returns the whole league's history grouped by player key.
func (s *SQLiteStore) AllEntries(ctx context.Context) (map[model.PlayerKey][]model.SeasonSnapshot, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM seasons ORDER BY player_key, seq`)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "query_error")
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	out := make(map[model.PlayerKey][]model.SeasonSnapshot)
	for rows.Next() {
		key, snap, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		out[key] = append(out[key], snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return out, nil
}

// Players returns the number of distinct history lines.
func (s *SQLiteStore) Players(ctx context.Context) int {
	var n int
	if err := s.conn.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT player_key) FROM seasons`).Scan(&n); err != nil {
		return 0
	}
	return n
}

// Close closes the underlying connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func scanSeason(rows *sql.Rows) (model.PlayerKey, model.SeasonSnapshot, error) {
	var key string
	var snap model.SeasonSnapshot
	err := rows.Scan(
		&key, &snap.Season, &snap.Team, &snap.Games,
		&snap.PassYds, &snap.PassTD, &snap.PassAtt, &snap.Interceptions,
		&snap.RushYds, &snap.RushTD, &snap.Carries,
		&snap.Receptions, &snap.RecYds, &snap.RecTD,
		&snap.Tackles, &snap.Sacks, &snap.ForcedFumbles,
		&snap.Awards.MVP, &snap.Awards.OPOY, &snap.Awards.SBMVP, &snap.Awards.ROTY, &snap.Awards.Rings,
	)
	if err != nil {
		return "", model.SeasonSnapshot{}, fmt.Errorf("scan season: %w", err)
	}
	return model.PlayerKey(key), snap, nil
}
