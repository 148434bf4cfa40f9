// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/gridiron/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Upload-batch idempotency.
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)

	// IngestRows submits rows for async ingest and returns how many the
	// queue accepted. accepted < len(rows) signals backpressure.
	IngestRows(ctx context.Context, rows []model.StatRow) int

	// LoadCareers replaces one position's career collection.
	LoadCareers(ctx context.Context, position string, players []model.CareerPlayer) error

	// Read queries, each recomputed from current state.
	AllTimeRecords(ctx context.Context) []model.Board
	SingleSeasonRecords(ctx context.Context) ([]model.Board, error)
	GreatestSeasons(ctx context.Context) ([]model.GreatSeason, error)
	AdvancedMetrics(ctx context.Context) []model.RecordEntry
	PaceToRecords(ctx context.Context) []model.PaceRecord

	// Revision identifies the dataset state a response was computed from.
	Revision() int64
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	seasonsHandler  *SeasonsHandler
	careersHandler  *CareersHandler
	recordsHandler  *RecordsHandler
	greatestHandler *GreatestHandler
	advancedHandler *AdvancedHandler
	paceHandler     *PaceHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		seasonsHandler:  NewSeasonsHandler(deps),
		careersHandler:  NewCareersHandler(deps),
		recordsHandler:  NewRecordsHandler(deps),
		greatestHandler: NewGreatestHandler(deps),
		advancedHandler: NewAdvancedHandler(deps),
		paceHandler:     NewPaceHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/seasons", MetricsMiddleware(s.seasonsHandler.HandlePostSeasons, "seasons"))
	mux.HandleFunc("/careers", MetricsMiddleware(s.careersHandler.HandlePostCareers, "careers"))
	mux.HandleFunc("/records/all-time", MetricsMiddleware(s.recordsHandler.HandleAllTime, "records_all_time"))
	mux.HandleFunc("/records/single-season", MetricsMiddleware(s.recordsHandler.HandleSingleSeason, "records_single_season"))
	mux.HandleFunc("/records/pace", MetricsMiddleware(s.paceHandler.HandleGetPace, "records_pace"))
	mux.HandleFunc("/seasons/greatest", MetricsMiddleware(s.greatestHandler.HandleGetGreatest, "seasons_greatest"))
	mux.HandleFunc("/metrics/advanced", MetricsMiddleware(s.advancedHandler.HandleGetAdvanced, "metrics_advanced"))
}

type ackResponse struct {
	Status    string `json:"status"`
	Accepted  int    `json:"accepted,omitempty"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
