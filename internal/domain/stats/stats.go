// Package stats computes the aggregations behind the sport and country
// dashboards. Every function only reads its input and returns new slices.
package stats

import (
	"math"
	"sort"

	"github.com/okian/podium/internal/domain/model"
)

// AgeBin is the number of rows for one age.
type AgeBin struct {
	Age   int `json:"age" yaml:"age"`
	Count int `json:"count" yaml:"count"`
}

// MedalCount is the number of medals of one kind won by a country.
type MedalCount struct {
	NOC   string      `json:"noc" yaml:"noc"`
	Medal model.Medal `json:"medal" yaml:"medal"`
	Count int         `json:"count" yaml:"count"`
}

// BoxStats summarises the age distribution of one sex.
type BoxStats struct {
	Sex    string  `json:"sex" yaml:"sex"`
	Count  int     `json:"count" yaml:"count"`
	Min    float64 `json:"min" yaml:"min"`
	Q1     float64 `json:"q1" yaml:"q1"`
	Median float64 `json:"median" yaml:"median"`
	Q3     float64 `json:"q3" yaml:"q3"`
	Max    float64 `json:"max" yaml:"max"`
}

// YearCount is a count for one Games year.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// SportCount is a count for one sport.
type SportCount struct {
	Sport string `json:"sport" yaml:"sport"`
	Count int    `json:"count" yaml:"count"`
}

// AgeDistribution counts rows per age, ascending. Rows without an age are
// skipped.
func AgeDistribution(rows []model.AthleteEvent) []AgeBin {
	counts := make(map[int]int)
	for _, r := range rows {
		if r.Age != nil {
			counts[*r.Age]++
		}
	}
	out := make([]AgeBin, 0, len(counts))
	for age, n := range counts {
		out = append(out, AgeBin{Age: age, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Age < out[j].Age })
	return out
}

// MedalDistribution counts medals per country and kind. Only countries with
// at least one medal appear; each of them gets all three kinds, zero-filled.
// The result is ordered by medal (Bronze, Silver, Gold), then NOC.
func MedalDistribution(rows []model.AthleteEvent) []MedalCount {
	counts := make(map[string]map[model.Medal]int)
	for _, r := range rows {
		if !r.Medal.Awarded() {
			continue
		}
		m, ok := counts[r.NOC]
		if !ok {
			m = make(map[model.Medal]int, len(model.Medals))
			counts[r.NOC] = m
		}
		m[r.Medal]++
	}

	nocs := sortedKeys(counts)
	out := make([]MedalCount, 0, len(nocs)*len(model.Medals))
	for _, medal := range model.Medals {
		for _, noc := range nocs {
			out = append(out, MedalCount{NOC: noc, Medal: medal, Count: counts[noc][medal]})
		}
	}
	return out
}

// AgeByGender returns box statistics of age per sex, ordered by sex. Rows
// without an age are skipped; a sex with no aged rows is omitted.
func AgeByGender(rows []model.AthleteEvent) []BoxStats {
	ages := make(map[string][]float64)
	for _, r := range rows {
		if r.Age != nil {
			ages[r.Sex] = append(ages[r.Sex], float64(*r.Age))
		}
	}

	out := make([]BoxStats, 0, len(ages))
	for _, sex := range sortedKeys(ages) {
		vs := ages[sex]
		sort.Float64s(vs)
		out = append(out, BoxStats{
			Sex:    sex,
			Count:  len(vs),
			Min:    vs[0],
			Q1:     quantile(vs, 0.25),
			Median: quantile(vs, 0.5),
			Q3:     quantile(vs, 0.75),
			Max:    vs[len(vs)-1],
		})
	}
	return out
}

// EventsByYear counts rows per year, ascending.
func EventsByYear(rows []model.AthleteEvent) []YearCount {
	counts := make(map[int]int)
	for _, r := range rows {
		counts[r.Year]++
	}
	return yearCounts(counts)
}

// MedalsPerYear counts medals per year, ascending. Years in which rows exist
// but no medal was won are kept with a zero count.
func MedalsPerYear(rows []model.AthleteEvent) []YearCount {
	counts := make(map[int]int)
	for _, r := range rows {
		if r.Medal.Awarded() {
			counts[r.Year]++
		} else if _, ok := counts[r.Year]; !ok {
			counts[r.Year] = 0
		}
	}
	return yearCounts(counts)
}

// SportsByMedals counts medals per sport, most medals first. Ties are broken
// by sport name and sports without medals are kept.
func SportsByMedals(rows []model.AthleteEvent) []SportCount {
	counts := make(map[string]int)
	for _, r := range rows {
		if r.Medal.Awarded() {
			counts[r.Sport]++
		} else if _, ok := counts[r.Sport]; !ok {
			counts[r.Sport] = 0
		}
	}
	out := make([]SportCount, 0, len(counts))
	for sport, n := range counts {
		out = append(out, SportCount{Sport: sport, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Sport < out[j].Sport
	})
	return out
}

func yearCounts(counts map[int]int) []YearCount {
	out := make([]YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, YearCount{Year: y, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// quantile interpolates linearly between the closest ranks of sorted vs.
func quantile(vs []float64, p float64) float64 {
	if len(vs) == 1 {
		return vs[0]
	}
	pos := p * float64(len(vs)-1)
	lo := int(math.Floor(pos))
	if lo >= len(vs)-1 {
		return vs[len(vs)-1]
	}
	frac := pos - float64(lo)
	return vs[lo] + frac*(vs[lo+1]-vs[lo])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
