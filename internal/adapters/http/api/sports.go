// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"
)

// SportDependencies defines the interface for sport dashboards.
type SportDependencies interface {
	SportDashboard(ctx context.Context, sport string) (SportDashboard, error)
}

// SportHandler handles sport dashboard requests.
type SportHandler struct {
	deps SportDependencies
}

// NewSportHandler creates a new sport handler.
func NewSportHandler(deps SportDependencies) *SportHandler {
	return &SportHandler{deps: deps}
}

// HandleGetSport handles GET /sports/{sport} requests.
func (h *SportHandler) HandleGetSport(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_sport"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sport := strings.TrimPrefix(r.URL.Path, "/sports/")
	if strings.TrimSpace(sport) == "" || strings.Contains(sport, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	d, err := h.deps.SportDashboard(r.Context(), sport)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
