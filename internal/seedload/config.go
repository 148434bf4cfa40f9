package seedload

import (
	"time"

	"github.com/okian/gridiron/internal/domain/model"
)

// Config holds configuration for the seed run
type Config struct {
	BaseURL          string        // Base URL of the service
	NumPlayers       int           // Number of synthetic players to generate
	SeasonsPerPlayer int           // Seasons generated per player
	BatchSize        int           // Rows per upload batch
	Workers          int           // Number of concurrent workers
	Timeout          time.Duration // HTTP request timeout
	OutputFile       string        // Output file for generated rows
	LogFile          string        // Log file for run output
	Verbose          bool          // Enable verbose logging
}

// Stats holds seed run statistics
type Stats struct {
	RowsGenerated     int
	BatchesSubmitted  int
	BatchesAccepted   int
	BatchesDuplicate  int
	BatchesRejected   int
	CareerCollections int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}

// ackResponse represents the response from a batch upload
type ackResponse struct {
	Status    string `json:"status"`
	Accepted  int    `json:"accepted"`
	Duplicate bool   `json:"duplicate"`
}

// recordsResponse represents a revision-stamped boards response
type recordsResponse struct {
	Revision int64         `json:"revision"`
	Boards   []model.Board `json:"boards"`
}

// greatestResponse represents the greatest-seasons response
type greatestResponse struct {
	Revision int64               `json:"revision"`
	Seasons  []model.GreatSeason `json:"seasons"`
}

// paceResponse represents the pace projection response
type paceResponse struct {
	Revision    int64              `json:"revision"`
	Projections []model.PaceRecord `json:"projections"`
}
