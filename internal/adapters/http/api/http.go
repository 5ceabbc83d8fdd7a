// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/podium/internal/adapters/repository"
	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/defence"
	"github.com/okian/podium/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	OptionsDependencies
	SportDependencies
	CountryDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	optionsHandler   *OptionsHandler
	sportHandler     *SportHandler
	countryHandler   *CountryHandler
	dashboardHandler *dashboardHandler
	limiter          *RateLimiter
	logger           logger.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithRateLimit limits every client to rps requests per second with the
// given burst. Non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(s *Server) {
		s.limiter = NewRateLimiter(rps, burst)
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, log logger.Logger, opts ...ServerOption) *Server {
	s := &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		optionsHandler:   NewOptionsHandler(deps),
		sportHandler:     NewSportHandler(deps),
		countryHandler:   NewCountryHandler(deps),
		dashboardHandler: newDashboardHandler(),
		logger:           log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		h = RateLimitMiddleware(h, s.limiter)
		mux.HandleFunc(pattern, RequestIDMiddleware(MetricsMiddleware(h, endpoint), s.logger))
	}

	// Specific paths first (most specific to least specific)
	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/stats", "stats", s.statsHandler.HandleStats)
	route("/dashboard", "dashboard", s.dashboardHandler.HandleDashboard)
	route("/sports", "sports", s.optionsHandler.HandleSports)
	route("/countries", "countries", s.optionsHandler.HandleCountries)
	route("/options", "options", s.optionsHandler.HandleOptions)
	route("/sports/", "sport_dashboard", s.sportHandler.HandleGetSport)
	route("/countries/", "country", s.countryHandler.HandleGetCountry)
}

// Re-exported response shapes so handlers and tests share one vocabulary.
type (
	Options          = service.Options
	SportDashboard   = service.SportDashboard
	CountryDashboard = service.CountryDashboard
	DefenceCount     = defence.Count
)

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

// writeLookupError translates upstream errors: unknown keys become 404.
func writeLookupError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
		return
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "unavailable", Wrap(op, err))
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
}
