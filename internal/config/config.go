// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment overrides on top.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Store backend names accepted by StoreBackend.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory ingest queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of ingest workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the upload-ID deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// StoreBackend selects the history store: memory or sqlite.
	StoreBackend string `koanf:"store_backend"`

	// DBPath locates the SQLite history database when StoreBackend is
	// sqlite.
	DBPath string `koanf:"db_path"`

	// BoardSize sets how many entries each record board carries.
	BoardSize int `koanf:"board_size"`

	// PaceHorizon caps pace projections, in seasons.
	PaceHorizon int `koanf:"pace_horizon"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":9080",
		QueueSize:    100_000,
		WorkerCount:  runtime.NumCPU() * 4,
		DedupeSize:   50_000,
		StoreBackend: StoreMemory,
		DBPath:       "gridiron.db",
		BoardSize:    10,
		PaceHorizon:  5,
	}
}
