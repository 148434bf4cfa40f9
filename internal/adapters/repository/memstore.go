package repository

import (
	"context"
	"sync"
	"time"

	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/pkg/metrics"
)

// MemoryStore keeps the season history in process memory. Reads hand out
// copies so callers can never mutate stored history.
type MemoryStore struct {
	mu      sync.RWMutex
	history map[model.PlayerKey][]model.SeasonSnapshot
	closed  bool
}

// NewMemoryStore constructs an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		history: make(map[model.PlayerKey][]model.SeasonSnapshot),
	}
}

// Append implements Store.Append with replace-in-place on duplicate season
// labels.
func (s *MemoryStore) Append(ctx context.Context, key model.PlayerKey, snap model.SeasonSnapshot) (bool, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreAppendLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		metrics.RecordErrorByComponent("repository", "closed")
		return false, ErrClosed
	}

	seasons := s.history[key]
	for i := range seasons {
		if seasons[i].Season == snap.Season {
			seasons[i] = snap
			metrics.RecordSnapshotReplace()
			return true, nil
		}
	}
	s.history[key] = append(seasons, snap)
	metrics.RecordSnapshotAppend()
	metrics.UpdatePlayersTracked(len(s.history))
	return false, nil
}

// Get returns the player's snapshots in upload order.
func (s *MemoryStore) Get(ctx context.Context, key model.PlayerKey) ([]model.SeasonSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seasons := s.history[key]
	out := make([]model.SeasonSnapshot, len(seasons))
	copy(out, seasons)
	return out, nil
}

// AllEntries returns a copy of the whole league's history.
func (s *MemoryStore) AllEntries(ctx context.Context) (map[model.PlayerKey][]model.SeasonSnapshot, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[model.PlayerKey][]model.SeasonSnapshot, len(s.history))
	for key, seasons := range s.history {
		cp := make([]model.SeasonSnapshot, len(seasons))
		copy(cp, seasons)
		out[key] = cp
	}
	return out, nil
}

// Players returns the number of distinct history lines.
func (s *MemoryStore) Players(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// Close marks the store closed; further appends fail.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
