// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/gridiron/internal/domain/model"
)

// AdvancedDependencies defines the interface for advanced metric queries.
type AdvancedDependencies interface {
	AdvancedMetrics(ctx context.Context) []model.RecordEntry
	Revision() int64
}

// AdvancedHandler handles advanced metric requests.
type AdvancedHandler struct {
	deps AdvancedDependencies
}

// NewAdvancedHandler creates a new advanced metrics handler.
func NewAdvancedHandler(deps AdvancedDependencies) *AdvancedHandler {
	return &AdvancedHandler{deps: deps}
}

type advancedResponse struct {
	Revision int64               `json:"revision"`
	Leaders  []model.RecordEntry `json:"leaders"`
}

// HandleGetAdvanced handles GET /metrics/advanced requests.
func (h *AdvancedHandler) HandleGetAdvanced(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, advancedResponse{
		Revision: h.deps.Revision(),
		Leaders:  h.deps.AdvancedMetrics(r.Context()),
	})
}
