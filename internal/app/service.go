// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	rowqueue "github.com/okian/gridiron/internal/adapters/mq/queue"
	workerpool "github.com/okian/gridiron/internal/adapters/mq/worker"
	"github.com/okian/gridiron/internal/adapters/repository"
	"github.com/okian/gridiron/internal/domain/dedupe"
	"github.com/okian/gridiron/internal/domain/leaderboard"
	"github.com/okian/gridiron/internal/domain/metric"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/internal/domain/pace"
	"github.com/okian/gridiron/internal/domain/score"
	"github.com/okian/gridiron/pkg/logger"
	"github.com/okian/gridiron/pkg/metrics"
)

// Service owns the ingest pipeline and the career collections, and serves
// the read queries. Every query is recomputed from current state; nothing
// is cached across calls.
type Service struct {
	mu sync.RWMutex

	// Core components
	history    repository.Store
	deduper    dedupe.Deduper
	rowQueue   rowqueue.Queue
	workerPool *workerpool.Pool

	// Career collections keyed by position code, replaced wholesale on
	// each upload.
	careers map[string][]model.CareerPlayer

	// revision increments on every accepted upload so readers can tell
	// whether the dataset changed between two queries.
	revision atomic.Int64

	// Configuration
	workerCount int
	queueSize   int
	dedupeSize  int
	boardSize   int
	paceHorizon int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of ingest worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the ingest queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the upload-ID deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithBoardSize sets how many entries each record board carries.
func WithBoardSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.boardSize = size
		}
	}
}

// WithPaceHorizon sets how many seasons out pace projections still report.
func WithPaceHorizon(seasons int) Option {
	return func(s *Service) {
		if seasons > 0 {
			s.paceHorizon = seasons
		}
	}
}

// WithStore sets a pre-built history store, such as the SQLite backend.
// The default is the in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.history = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		queueSize:   100000,
		dedupeSize:  50000,
		boardSize:   leaderboard.DefaultSize,
		paceHorizon: pace.DefaultHorizon,
		careers:     make(map[string][]model.CareerPlayer),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the ingest pipeline.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting stats service...")

	if s.history == nil {
		s.history = repository.NewMemoryStore()
	}
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.rowQueue = rowqueue.NewInMemoryQueue(
		rowqueue.WithCapacity(s.queueSize),
		rowqueue.WithBufferSize(s.queueSize),
	)

	s.workerPool = workerpool.NewPool(s.workerCount, s.rowQueue, s.history)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "stats service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)

	return nil
}

// Stop gracefully shuts down the service. Queued rows are drained into the
// history store before workers exit.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping stats service...")

	if s.workerPool != nil {
		_ = s.workerPool.Shutdown(ctx)
	}

	if s.history != nil {
		_ = s.history.Close()
	}

	s.started = false
	s.logger.Info(ctx, "stats service stopped")
}

// SeenAndRecord atomically checks if an upload id was seen and records it
// if not. Returns true if the upload was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordDuplicateUpload()
	}
	return seen
}

// Unrecord removes an upload ID from the seen list, allowing a rejected
// batch to be retried.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// IngestRows submits a batch of stat rows for asynchronous ingest. It
// returns the number of rows accepted; when the queue cannot take the whole
// batch, none of the remaining rows are enqueued and accepted < len(rows).
func (s *Service) IngestRows(ctx context.Context, rows []model.StatRow) int {
	accepted := 0
	for _, row := range rows {
		if !s.rowQueue.Enqueue(ctx, row) {
			s.logger.Warn(ctx, "ingest queue rejected row",
				logger.String("player", row.Name),
				logger.Int("accepted", accepted),
				logger.Int("batch", len(rows)),
			)
			break
		}
		accepted++
	}
	if accepted > 0 {
		s.bumpRevision()
	}
	return accepted
}

// LoadCareers replaces the career collection for one position category.
// The previous collection for that position is discarded wholesale.
func (s *Service) LoadCareers(ctx context.Context, position string, players []model.CareerPlayer) error {
	if !model.KnownPosition(position) {
		return fmt.Errorf("%w: %q", ErrUnknownPosition, position)
	}

	cp := make([]model.CareerPlayer, len(players))
	copy(cp, players)

	s.mu.Lock()
	s.careers[position] = cp
	s.mu.Unlock()

	s.bumpRevision()
	s.logger.Info(ctx, "career collection replaced",
		logger.String("position", position),
		logger.Int("players", len(players)),
	)
	return nil
}

// AllTimeRecords ranks career totals into the standard record boards.
func (s *Service) AllTimeRecords(ctx context.Context) []model.Board {
	defer observeQuery("all_time_records")()

	return leaderboard.StandardCareerBoards(s.careersSnapshot(), s.boardSize)
}

// SingleSeasonRecords ranks stored season snapshots into per-position
// record boards.
func (s *Service) SingleSeasonRecords(ctx context.Context) ([]model.Board, error) {
	defer observeQuery("single_season_records")()

	all, err := s.history.AllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return leaderboard.StandardSeasonBoards(leaderboard.Flatten(all), s.boardSize), nil
}

// GreatestSeasons scores every stored multi-season player's seasons and
// returns the top tier-classified entries.
func (s *Service) GreatestSeasons(ctx context.Context) ([]model.GreatSeason, error) {
	defer observeQuery("greatest_seasons")()

	all, err := s.history.AllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return score.Greatest(all), nil
}

// AdvancedMetrics returns the single best-in-class entry per guarded
// ratio metric.
func (s *Service) AdvancedMetrics(ctx context.Context) []model.RecordEntry {
	defer observeQuery("advanced_metrics")()

	return metric.Leaders(s.careersSnapshot())
}

// PaceToRecords projects active players toward the standard career
// records, soonest first.
func (s *Service) PaceToRecords(ctx context.Context) []model.PaceRecord {
	defer observeQuery("pace_to_records")()

	return pace.Projections(pace.StandardCategories(s.careersSnapshot()), s.paceHorizon)
}

// Revision returns the current dataset revision.
func (s *Service) Revision() int64 {
	return s.revision.Load()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
		"revision":    s.revision.Load(),
	}

	if s.started {
		queueLen := s.rowQueue.Len(ctx)
		tracked := s.history.Players(ctx)
		careerCount := 0
		for _, players := range s.careers {
			careerCount += len(players)
		}

		stats["queueLength"] = queueLen
		stats["playersTracked"] = tracked
		stats["careerPlayers"] = careerCount

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdatePlayersTracked(tracked)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int64 {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}

// careersSnapshot copies the career collections so queries compute over an
// immutable view.
func (s *Service) careersSnapshot() map[string][]model.CareerPlayer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]model.CareerPlayer, len(s.careers))
	for pos, players := range s.careers {
		cp := make([]model.CareerPlayer, len(players))
		copy(cp, players)
		out[pos] = cp
	}
	return out
}

func (s *Service) bumpRevision() {
	metrics.UpdateRevision(s.revision.Add(1))
}

func observeQuery(name string) func() {
	start := time.Now()
	return func() {
		metrics.RecordQueryLatency(name, float64(time.Since(start).Milliseconds()))
	}
}
