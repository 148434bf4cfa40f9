// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/gridiron/internal/domain/model"
)

// PaceDependencies defines the interface for pace projection queries.
type PaceDependencies interface {
	PaceToRecords(ctx context.Context) []model.PaceRecord
	Revision() int64
}

// PaceHandler handles pace projection requests.
type PaceHandler struct {
	deps PaceDependencies
}

// NewPaceHandler creates a new pace handler.
func NewPaceHandler(deps PaceDependencies) *PaceHandler {
	return &PaceHandler{deps: deps}
}

type paceResponse struct {
	Revision    int64              `json:"revision"`
	Projections []model.PaceRecord `json:"projections"`
}

// HandleGetPace handles GET /records/pace requests.
func (h *PaceHandler) HandleGetPace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, paceResponse{
		Revision:    h.deps.Revision(),
		Projections: h.deps.PaceToRecords(r.Context()),
	})
}
