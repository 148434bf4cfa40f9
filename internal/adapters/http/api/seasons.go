// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/gridiron/internal/domain/model"
)

// SeasonDependencies defines the interface for season upload processing.
type SeasonDependencies interface {
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)
	IngestRows(ctx context.Context, rows []model.StatRow) int
}

// SeasonsHandler handles season stat uploads.
type SeasonsHandler struct {
	deps SeasonDependencies
}

// NewSeasonsHandler creates a new seasons handler.
func NewSeasonsHandler(deps SeasonDependencies) *SeasonsHandler {
	return &SeasonsHandler{deps: deps}
}

// seasonsRequest mirrors the upload schema for POST /seasons.
type seasonsRequest struct {
	UploadID string          `json:"upload_id"`
	Rows     []model.StatRow `json:"rows"`
}

func (s seasonsRequest) validate() error {
	if strings.TrimSpace(s.UploadID) == "" {
		return errors.New("missing upload_id")
	}
	if len(s.Rows) == 0 {
		return errors.New("empty rows")
	}
	for i, row := range s.Rows {
		if strings.TrimSpace(row.Name) == "" {
			return fmt.Errorf("row %d: missing name", i)
		}
		if strings.TrimSpace(row.Position) == "" {
			return fmt.Errorf("row %d: missing position", i)
		}
	}
	return nil
}

// HandlePostSeasons handles POST /seasons requests.
func (h *SeasonsHandler) HandlePostSeasons(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_seasons"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req seasonsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	// Idempotency check - mark as seen first
	if h.deps.SeenAndRecord(r.Context(), req.UploadID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}

	accepted := h.deps.IngestRows(r.Context(), req.Rows)
	if accepted < len(req.Rows) {
		// Rollback the "seen" status so the client can retry the batch.
		h.deps.Unrecord(r.Context(), req.UploadID)
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Accepted: accepted})
}
