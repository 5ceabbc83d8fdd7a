// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/podium/internal/adapters/csvsource"
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/dataset"
	"github.com/okian/podium/internal/domain/defence"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/stats"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Analysis names used in logs and metrics.
const (
	analysisSport    = "sport_dashboard"
	analysisCountry  = "country_dashboard"
	analysisDefences = "title_defences"
)

// ErrNotStarted is returned by queries issued before Start.
var ErrNotStarted = errors.New("service not started")

// Service answers dashboard queries over the athletes dataset.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	analyzer *defence.Analyzer

	// Configuration
	datasetPath    string
	table          *dataset.Table
	anonymize      bool
	cycleYears     int
	defaultSport   string
	defaultCountry string

	// State
	started  bool
	loadedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDatasetPath sets the CSV file loaded on Start.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.datasetPath = path
		}
	}
}

// WithTable serves an already loaded table instead of reading a file.
func WithTable(t *dataset.Table) Option {
	return func(s *Service) {
		s.table = t
	}
}

// WithAnonymizedNames hashes athlete names when loading the file.
func WithAnonymizedNames(enabled bool) Option {
	return func(s *Service) {
		s.anonymize = enabled
	}
}

// WithDefenceCycleYears sets the exact gap credited as a title defence.
func WithDefenceCycleYears(years int) Option {
	return func(s *Service) {
		if years > 0 {
			s.cycleYears = years
		}
	}
}

// WithDefaults sets the preselected sport and country.
func WithDefaults(sport, noc string) Option {
	return func(s *Service) {
		s.defaultSport = sport
		s.defaultCountry = noc
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		datasetPath:    "data/athlete_events.csv",
		anonymize:      true,
		cycleYears:     4,
		defaultSport:   "Ice Hockey",
		defaultCountry: "CAN",
		logger:         nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset and builds the indexes.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting analytics service...")

	table := s.table
	if table == nil {
		var opts []csvsource.Option
		if s.anonymize {
			opts = append(opts, csvsource.WithAnonymizedNames())
		}
		start := time.Now()
		t, err := csvsource.Load(ctx, s.datasetPath, opts...)
		if err != nil {
			metrics.RecordErrorByComponent("service", "dataset_load")
			return fmt.Errorf("load dataset %s: %w", s.datasetPath, err)
		}
		table = t
		s.logger.Info(ctx, "dataset loaded",
			logger.String("path", s.datasetPath),
			logger.Int("rows", table.Len()),
			logger.Duration("took", time.Since(start)),
		)
	}

	rows, err := table.Athletes()
	if err != nil {
		metrics.RecordErrorByComponent("service", "missing_field")
		return fmt.Errorf("read dataset: %w", err)
	}
	if skipped := table.Len() - len(rows); skipped > 0 {
		s.logger.Warn(ctx, "skipped rows without a valid year", logger.Int("skipped", skipped))
	}

	s.store = repository.NewMemoryStore(ctx, rows)
	s.analyzer = defence.NewAnalyzer(defence.WithCycleYears(s.cycleYears))
	s.loadedAt = time.Now()
	s.started = true

	s.logger.Info(ctx, "analytics service started",
		logger.Int("rows", s.store.Count(ctx)),
		logger.Int("sports", len(s.store.Sports(ctx))),
		logger.Int("countries", len(s.store.Countries(ctx))),
		logger.Int("cycleYears", s.cycleYears),
	)
	return nil
}

// Stop releases the loaded dataset.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.store = nil
	s.analyzer = nil
	s.started = false
	s.logger.Info(context.Background(), "analytics service stopped")
}

// components returns the store and analyzer under the read lock.
func (s *Service) components() (repository.Store, *defence.Analyzer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, nil, ErrNotStarted
	}
	return s.store, s.analyzer, nil
}

// Options lists the selectable sports and countries.
func (s *Service) Options(ctx context.Context) (Options, error) {
	store, _, err := s.components()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Sports:         store.Sports(ctx),
		Countries:      store.Countries(ctx),
		DefaultSport:   s.defaultSport,
		DefaultCountry: s.defaultCountry,
	}, nil
}

// SportDashboard computes the per-sport view.
func (s *Service) SportDashboard(ctx context.Context, sport string) (SportDashboard, error) {
	store, _, err := s.components()
	if err != nil {
		return SportDashboard{}, err
	}
	rows, err := store.BySport(ctx, sport)
	if err != nil {
		return SportDashboard{}, err
	}

	// Lookups are case-insensitive; report the dataset's spelling.
	sport = rows[0].Sport
	start := time.Now()
	d := SportDashboard{
		Sport:             sport,
		Rows:              len(rows),
		AgeDistribution:   stats.AgeDistribution(rows),
		MedalDistribution: stats.MedalDistribution(rows),
		AgeByGender:       stats.AgeByGender(rows),
		EventsByYear:      stats.EventsByYear(rows),
		Sunburst:          stats.Sunburst(rows, stats.ByNOC),
	}
	s.observe(ctx, analysisSport, start, logger.String("sport", sport), logger.Int("rows", len(rows)))
	return d, nil
}

// CountryDashboard computes the per-country view, title defences included.
func (s *Service) CountryDashboard(ctx context.Context, noc string) (CountryDashboard, error) {
	store, analyzer, err := s.components()
	if err != nil {
		return CountryDashboard{}, err
	}
	rows, err := store.ByCountry(ctx, noc)
	if err != nil {
		return CountryDashboard{}, err
	}

	noc = rows[0].NOC
	start := time.Now()
	defences := analyzer.Compute(records(rows))
	d := CountryDashboard{
		NOC:             noc,
		Rows:            len(rows),
		SportsByMedals:  stats.SportsByMedals(rows),
		MedalsPerYear:   stats.MedalsPerYear(rows),
		AgeDistribution: stats.AgeDistribution(rows),
		EventsByYear:    stats.EventsByYear(rows),
		Sunburst:        stats.Sunburst(rows, stats.BySport),
		TitleDefences:   defences,
	}
	metrics.RecordTitleDefences(len(defences))
	s.observe(ctx, analysisCountry, start, logger.String("noc", noc), logger.Int("rows", len(rows)))
	return d, nil
}

// TitleDefences returns the events a country defended, ordered by event.
func (s *Service) TitleDefences(ctx context.Context, noc string) ([]defence.Count, error) {
	store, analyzer, err := s.components()
	if err != nil {
		return nil, err
	}
	rows, err := store.ByCountry(ctx, noc)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out := analyzer.Compute(records(rows))
	metrics.RecordTitleDefences(len(out))
	s.observe(ctx, analysisDefences, start, logger.String("noc", noc), logger.Int("events", len(out)))
	return out, nil
}

// GetStats returns service statistics for the /stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	out := map[string]interface{}{
		"started":     s.started,
		"datasetPath": s.datasetPath,
		"anonymized":  s.anonymize,
		"cycleYears":  s.cycleYears,
	}
	if s.started {
		out["rows"] = s.store.Count(ctx)
		out["sports"] = len(s.store.Sports(ctx))
		out["countries"] = len(s.store.Countries(ctx))
		out["loadedAt"] = s.loadedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func (s *Service) observe(ctx context.Context, analysis string, start time.Time, fields ...logger.Field) {
	took := time.Since(start)
	metrics.RecordAnalysis(analysis, float64(took.Microseconds())/1000)
	fields = append(fields, logger.String("analysis", analysis), logger.Duration("took", took))
	s.logger.Debug(ctx, "analysis computed", fields...)
}

func records(rows []model.AthleteEvent) []model.MedalRecord {
	out := make([]model.MedalRecord, len(rows))
	for i, r := range rows {
		out[i] = r.Record()
	}
	return out
}
