package repository

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"golang.org/x/text/cases"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/metrics"
)

// Index names used in metrics labels.
const (
	indexSport   = "sport"
	indexCountry = "country"
)

// MemoryStore is an immutable in-memory Store indexed by sport and NOC.
// Lookups fall back to a case-folded match, so "ice hockey" finds
// "Ice Hockey". It is safe for concurrent reads.
type MemoryStore struct {
	rows      []model.AthleteEvent
	bySport   index
	byCountry index
	sports    []string
	countries []string
}

// index maps exact keys to rows and folded keys to the exact key.
type index struct {
	name   string
	rows   map[string][]model.AthleteEvent
	folded map[string]string
}

func newIndex(name string) index {
	return index{
		name:   name,
		rows:   make(map[string][]model.AthleteEvent),
		folded: make(map[string]string),
	}
}

func (ix index) add(key string, r model.AthleteEvent) {
	if _, ok := ix.rows[key]; !ok {
		ix.folded[fold(key)] = key
	}
	ix.rows[key] = append(ix.rows[key], r)
}

func (ix index) lookup(key string) ([]model.AthleteEvent, error) {
	start := time.Now()
	rows, ok := ix.rows[key]
	if !ok {
		if exact, found := ix.folded[fold(key)]; found {
			rows, ok = ix.rows[exact], true
		}
	}
	metrics.RecordRepositoryQueryLatency(ix.name, float64(time.Since(start).Microseconds())/1000)
	if !ok {
		metrics.RecordRepositoryNotFound(ix.name)
		return nil, fmt.Errorf("%s %q: %w", ix.name, key, ErrNotFound)
	}
	return slices.Clone(rows), nil
}

// fold returns the Unicode case-folded form of s. Casers are stateful, so
// each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore indexes rows. The store keeps its own copy of the slice.
func NewMemoryStore(_ context.Context, rows []model.AthleteEvent) *MemoryStore {
	s := &MemoryStore{
		rows:      append([]model.AthleteEvent(nil), rows...),
		bySport:   newIndex(indexSport),
		byCountry: newIndex(indexCountry),
	}
	for _, r := range s.rows {
		s.bySport.add(r.Sport, r)
		s.byCountry.add(r.NOC, r)
	}
	s.sports = keys(s.bySport.rows)
	s.countries = keys(s.byCountry.rows)

	metrics.UpdateRepositoryIndexes(len(s.sports), len(s.countries))
	return s
}

// Sports returns a copy of the distinct sports, ascending.
func (s *MemoryStore) Sports(_ context.Context) []string { return slices.Clone(s.sports) }

// Countries returns a copy of the distinct NOC codes, ascending.
func (s *MemoryStore) Countries(_ context.Context) []string { return slices.Clone(s.countries) }

// BySport returns every row of a sport.
func (s *MemoryStore) BySport(_ context.Context, sport string) ([]model.AthleteEvent, error) {
	return s.bySport.lookup(sport)
}

// ByCountry returns every row of a NOC.
func (s *MemoryStore) ByCountry(_ context.Context, noc string) ([]model.AthleteEvent, error) {
	return s.byCountry.lookup(noc)
}

// All returns a copy of every row.
func (s *MemoryStore) All(_ context.Context) []model.AthleteEvent { return slices.Clone(s.rows) }

// Count returns the number of rows.
func (s *MemoryStore) Count(_ context.Context) int { return len(s.rows) }

func keys(m map[string][]model.AthleteEvent) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		if k != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
