package service

import (
	"github.com/okian/podium/internal/domain/defence"
	"github.com/okian/podium/internal/domain/stats"
)

// SportDashboard is the data behind the per-sport view.
type SportDashboard struct {
	Sport             string               `json:"sport" yaml:"sport"`
	Rows              int                  `json:"rows" yaml:"rows"`
	AgeDistribution   []stats.AgeBin       `json:"age_distribution" yaml:"age_distribution"`
	MedalDistribution []stats.MedalCount   `json:"medal_distribution" yaml:"medal_distribution"`
	AgeByGender       []stats.BoxStats     `json:"age_by_gender" yaml:"age_by_gender"`
	EventsByYear      []stats.YearCount    `json:"events_by_year" yaml:"events_by_year"`
	Sunburst          []stats.SunburstNode `json:"sunburst" yaml:"sunburst"`
}

// CountryDashboard is the data behind the per-country view.
type CountryDashboard struct {
	NOC             string               `json:"noc" yaml:"noc"`
	Rows            int                  `json:"rows" yaml:"rows"`
	SportsByMedals  []stats.SportCount   `json:"sports_by_medals" yaml:"sports_by_medals"`
	MedalsPerYear   []stats.YearCount    `json:"medals_per_year" yaml:"medals_per_year"`
	AgeDistribution []stats.AgeBin       `json:"age_distribution" yaml:"age_distribution"`
	EventsByYear    []stats.YearCount    `json:"events_by_year" yaml:"events_by_year"`
	Sunburst        []stats.SunburstNode `json:"sunburst" yaml:"sunburst"`
	TitleDefences   []defence.Count      `json:"title_defences" yaml:"title_defences"`
}

// Options lists what the dashboard dropdowns offer.
type Options struct {
	Sports         []string `json:"sports" yaml:"sports"`
	Countries      []string `json:"countries" yaml:"countries"`
	DefaultSport   string   `json:"default_sport" yaml:"default_sport"`
	DefaultCountry string   `json:"default_country" yaml:"default_country"`
}
