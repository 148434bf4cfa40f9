// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/gridiron/internal/domain/model"
)

// GreatestDependencies defines the interface for greatest-seasons queries.
type GreatestDependencies interface {
	GreatestSeasons(ctx context.Context) ([]model.GreatSeason, error)
	Revision() int64
}

// GreatestHandler handles greatest-seasons requests.
type GreatestHandler struct {
	deps GreatestDependencies
}

// NewGreatestHandler creates a new greatest-seasons handler.
func NewGreatestHandler(deps GreatestDependencies) *GreatestHandler {
	return &GreatestHandler{deps: deps}
}

type greatestResponse struct {
	Revision int64               `json:"revision"`
	Seasons  []model.GreatSeason `json:"seasons"`
}

// HandleGetGreatest handles GET /seasons/greatest requests.
func (h *GreatestHandler) HandleGetGreatest(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_greatest_seasons"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	seasons, err := h.deps.GreatestSeasons(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, greatestResponse{
		Revision: h.deps.Revision(),
		Seasons:  seasons,
	})
}
