// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/gridiron/internal/domain/model"
)

// CareerDependencies defines the interface for career upload processing.
type CareerDependencies interface {
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)
	LoadCareers(ctx context.Context, position string, players []model.CareerPlayer) error
}

// CareersHandler handles career collection uploads.
type CareersHandler struct {
	deps CareerDependencies
}

// NewCareersHandler creates a new careers handler.
func NewCareersHandler(deps CareerDependencies) *CareersHandler {
	return &CareersHandler{deps: deps}
}

// careersRequest mirrors the upload schema for POST /careers. The players
// replace the named position's collection wholesale.
type careersRequest struct {
	UploadID string               `json:"upload_id"`
	Position string               `json:"position"`
	Players  []model.CareerPlayer `json:"players"`
}

func (c careersRequest) validate() error {
	if strings.TrimSpace(c.UploadID) == "" {
		return errors.New("missing upload_id")
	}
	if strings.TrimSpace(c.Position) == "" {
		return errors.New("missing position")
	}
	return nil
}

// HandlePostCareers handles POST /careers requests.
func (h *CareersHandler) HandlePostCareers(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_careers"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req careersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	if h.deps.SeenAndRecord(r.Context(), req.UploadID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}

	if err := h.deps.LoadCareers(r.Context(), req.Position, req.Players); err != nil {
		h.deps.Unrecord(r.Context(), req.UploadID)
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Accepted: len(req.Players)})
}
