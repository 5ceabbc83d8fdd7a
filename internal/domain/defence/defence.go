// Package defence detects title defences: events in which a country won gold
// at two consecutive Olympic Games.
package defence

import (
	"sort"

	"github.com/okian/podium/internal/domain/dataset"
	"github.com/okian/podium/internal/domain/model"
)

// defaultCycleYears is the gap between two consecutive Games.
const defaultCycleYears = 4

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithCycleYears sets the exact year gap that counts as a defence.
func WithCycleYears(years int) Option {
	return func(a *Analyzer) {
		if years > 0 {
			a.cycleYears = years
		}
	}
}

// Count is the number of title defences detected for one event.
type Count struct {
	Event string `json:"event" yaml:"event"`
	Count int    `json:"count" yaml:"count"`
	// Years holds the year of each defending win, ascending.
	Years []int `json:"years" yaml:"years"`
}

// Analyzer computes title defences. It holds no state between calls and is
// safe for concurrent use.
type Analyzer struct {
	cycleYears int
}

// NewAnalyzer creates an analyzer with configuration options.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{cycleYears: defaultCycleYears}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CycleYears returns the gap the analyzer credits as a defence.
func (a *Analyzer) CycleYears() int { return a.cycleYears }

// Compute returns one Count per event that was won at consecutive Games,
// ordered by event name. Gaps other than exactly one cycle, including those
// caused by cancelled Games, are not credited.
func (a *Analyzer) Compute(records []model.MedalRecord) []Count {
	years := goldYears(records)

	out := make([]Count, 0, len(years))
	for event, ys := range years {
		if len(ys) < 2 {
			continue
		}
		var defended []int
		for i := 1; i < len(ys); i++ {
			if ys[i]-ys[i-1] == a.cycleYears {
				defended = append(defended, ys[i])
			}
		}
		if len(defended) == 0 {
			continue
		}
		out = append(out, Count{Event: event, Count: len(defended), Years: defended})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Event < out[j].Event })
	return out
}

// ComputeTable runs Compute over a table. Event, Year and Medal are required
// columns.
func (a *Analyzer) ComputeTable(t *dataset.Table) ([]Count, error) {
	records, err := t.Records()
	if err != nil {
		return nil, err
	}
	return a.Compute(records), nil
}

// ComputeCountry runs Compute over the rows of one country. NOC becomes a
// required column.
func (a *Analyzer) ComputeCountry(t *dataset.Table, noc string) ([]Count, error) {
	if _, err := t.Index(dataset.ColNOC); err != nil {
		return nil, err
	}
	records, err := t.Records()
	if err != nil {
		return nil, err
	}
	return a.Compute(ForCountry(records, noc)), nil
}

// ForCountry keeps the records of one NOC.
func ForCountry(records []model.MedalRecord, noc string) []model.MedalRecord {
	out := make([]model.MedalRecord, 0, len(records))
	for _, r := range records {
		if r.Country == noc {
			out = append(out, r)
		}
	}
	return out
}

// goldYears groups gold records by event into ascending, distinct years.
// Team events produce one record per athlete, hence the dedup.
func goldYears(records []model.MedalRecord) map[string][]int {
	seen := make(map[string]map[int]struct{})
	for _, r := range records {
		if r.Medal != model.MedalGold {
			continue
		}
		ys, ok := seen[r.Event]
		if !ok {
			ys = make(map[int]struct{})
			seen[r.Event] = ys
		}
		ys[r.Year] = struct{}{}
	}

	out := make(map[string][]int, len(seen))
	for event, set := range seen {
		ys := make([]int, 0, len(set))
		for y := range set {
			ys = append(ys, y)
		}
		sort.Ints(ys)
		out[event] = ys
	}
	return out
}
