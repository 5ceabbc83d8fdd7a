// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"
)

// CountryDependencies defines the interface for country dashboards.
type CountryDependencies interface {
	CountryDashboard(ctx context.Context, noc string) (CountryDashboard, error)
	TitleDefences(ctx context.Context, noc string) ([]DefenceCount, error)
}

// CountryHandler handles country dashboard requests.
type CountryHandler struct {
	deps CountryDependencies
}

// NewCountryHandler creates a new country handler.
func NewCountryHandler(deps CountryDependencies) *CountryHandler {
	return &CountryHandler{deps: deps}
}

const titleDefencesSuffix = "/title-defences"

// HandleGetCountry handles GET /countries/{noc} and
// GET /countries/{noc}/title-defences requests.
func (h *CountryHandler) HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_country"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/countries/")
	defences := strings.HasSuffix(path, titleDefencesSuffix)
	noc := strings.ToUpper(strings.TrimSuffix(path, titleDefencesSuffix))
	if noc == "" || strings.Contains(noc, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	if defences {
		out, err := h.deps.TitleDefences(r.Context(), noc)
		if err != nil {
			writeLookupError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	d, err := h.deps.CountryDashboard(r.Context(), noc)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
