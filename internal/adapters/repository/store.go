// Package repository defines the season history store and its backends.
package repository

import (
	"context"

	"github.com/okian/gridiron/internal/domain/model"
)

// Store provides append/read access to per-player season history. The
// computation core never deletes history; it only reads and requests
// appends. Implementations must be safe for concurrent readers and a
// concurrent writer.
type Store interface {
	// Append stores a snapshot at the end of the player's history. If a
	// snapshot with the same season label already exists for that key it
	// is replaced in place, keeping its original position (idempotent
	// re-upload). Returns true when an existing season was replaced.
	Append(ctx context.Context, key model.PlayerKey, snap model.SeasonSnapshot) (bool, error)

	// Get returns the player's snapshots in upload order. A key with no
	// history yields an empty sequence, not an error.
	Get(ctx context.Context, key model.PlayerKey) ([]model.SeasonSnapshot, error)

	// AllEntries returns the whole league's history, for components that
	// must scan every player.
	AllEntries(ctx context.Context) (map[model.PlayerKey][]model.SeasonSnapshot, error)

	// Players returns the number of distinct history lines.
	Players(ctx context.Context) int

	// Close releases backend resources.
	Close() error
}
