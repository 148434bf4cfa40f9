// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/gridiron/internal/domain/model"
)

// RecordDependencies defines the interface for record board queries.
type RecordDependencies interface {
	AllTimeRecords(ctx context.Context) []model.Board
	SingleSeasonRecords(ctx context.Context) ([]model.Board, error)
	Revision() int64
}

// RecordsHandler handles record board requests.
type RecordsHandler struct {
	deps RecordDependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps RecordDependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// recordsResponse stamps boards with the dataset revision they were
// computed from.
type recordsResponse struct {
	Revision int64         `json:"revision"`
	Boards   []model.Board `json:"boards"`
}

// HandleAllTime handles GET /records/all-time requests.
func (h *RecordsHandler) HandleAllTime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, recordsResponse{
		Revision: h.deps.Revision(),
		Boards:   h.deps.AllTimeRecords(r.Context()),
	})
}

// HandleSingleSeason handles GET /records/single-season requests.
func (h *RecordsHandler) HandleSingleSeason(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_single_season_records"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	boards, err := h.deps.SingleSeasonRecords(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, recordsResponse{
		Revision: h.deps.Revision(),
		Boards:   boards,
	})
}
