// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// OptionsDependencies defines the interface for dropdown options.
type OptionsDependencies interface {
	Options(ctx context.Context) (Options, error)
}

// OptionsHandler serves the selectable sports and countries.
type OptionsHandler struct {
	deps OptionsDependencies
}

// NewOptionsHandler creates a new options handler.
func NewOptionsHandler(deps OptionsDependencies) *OptionsHandler {
	return &OptionsHandler{deps: deps}
}

// HandleOptions handles GET /options requests.
func (h *OptionsHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "api.get_options", func(o Options) any { return o })
}

// HandleSports handles GET /sports requests.
func (h *OptionsHandler) HandleSports(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "api.get_sports", func(o Options) any { return o.Sports })
}

// HandleCountries handles GET /countries requests.
func (h *OptionsHandler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "api.get_countries", func(o Options) any { return o.Countries })
}

func (h *OptionsHandler) serve(w http.ResponseWriter, r *http.Request, op string, pick func(Options) any) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	opts, err := h.deps.Options(r.Context())
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, pick(opts))
}
