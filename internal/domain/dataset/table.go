// Package dataset holds the tabular form of the athletes dataset and the
// conversions from it to domain rows.
package dataset

import (
	"strconv"
	"strings"

	"github.com/okian/podium/internal/domain/model"
)

// Column names of the athletes dataset.
const (
	ColID     = "ID"
	ColName   = "Name"
	ColSex    = "Sex"
	ColAge    = "Age"
	ColHeight = "Height"
	ColWeight = "Weight"
	ColTeam   = "Team"
	ColNOC    = "NOC"
	ColGames  = "Games"
	ColYear   = "Year"
	ColSeason = "Season"
	ColCity   = "City"
	ColSport  = "Sport"
	ColEvent  = "Event"
	ColMedal  = "Medal"
)

// Table is a header plus string rows. Empty cells stand for missing values.
// A Table is never mutated after construction.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable builds a table from a header and rows.
func NewTable(columns []string, rows [][]string) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Index returns the position of column name, or a *MissingFieldError.
// Header names are compared case-insensitively with surrounding space
// ignored.
func (t *Table) Index(name string) (int, error) {
	if t != nil {
		for i, c := range t.Columns {
			if strings.EqualFold(strings.TrimSpace(c), name) {
				return i, nil
			}
		}
	}
	return -1, &MissingFieldError{Field: name}
}

// Has reports whether the table carries column name.
func (t *Table) Has(name string) bool {
	_, err := t.Index(name)
	return err == nil
}

// indexes resolves several required columns at once.
func (t *Table) indexes(names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, n := range names {
		idx, err := t.Index(n)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// optional returns the index of name or -1.
func (t *Table) optional(name string) int {
	idx, err := t.Index(name)
	if err != nil {
		return -1
	}
	return idx
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Records projects the table to medal records. Event, Year and Medal are
// required; NOC is optional and left empty when absent. Rows whose year is
// not an integer are skipped.
func (t *Table) Records() ([]model.MedalRecord, error) {
	idx, err := t.indexes(ColEvent, ColYear, ColMedal)
	if err != nil {
		return nil, err
	}
	noc := t.optional(ColNOC)

	out := make([]model.MedalRecord, 0, t.Len())
	for _, row := range t.Rows {
		year, err := strconv.Atoi(cell(row, idx[1]))
		if err != nil {
			continue
		}
		out = append(out, model.MedalRecord{
			Country: cell(row, noc),
			Event:   cell(row, idx[0]),
			Year:    year,
			Medal:   model.ParseMedal(cell(row, idx[2])),
		})
	}
	return out, nil
}

// Athletes converts the table to full dataset rows. NOC, Year, Sport, Event
// and Medal are required; every other column is optional. Rows whose year
// is not an integer are skipped.
func (t *Table) Athletes() ([]model.AthleteEvent, error) {
	idx, err := t.indexes(ColNOC, ColYear, ColSport, ColEvent, ColMedal)
	if err != nil {
		return nil, err
	}
	var (
		id     = t.optional(ColID)
		name   = t.optional(ColName)
		sex    = t.optional(ColSex)
		age    = t.optional(ColAge)
		height = t.optional(ColHeight)
		weight = t.optional(ColWeight)
		team   = t.optional(ColTeam)
		games  = t.optional(ColGames)
		season = t.optional(ColSeason)
		city   = t.optional(ColCity)
	)

	out := make([]model.AthleteEvent, 0, t.Len())
	for _, row := range t.Rows {
		year, err := strconv.Atoi(cell(row, idx[1]))
		if err != nil {
			continue
		}
		rowID, _ := strconv.Atoi(cell(row, id))
		out = append(out, model.AthleteEvent{
			ID:     rowID,
			Name:   cell(row, name),
			Sex:    cell(row, sex),
			Age:    intPtr(cell(row, age)),
			Height: floatPtr(cell(row, height)),
			Weight: floatPtr(cell(row, weight)),
			Team:   cell(row, team),
			NOC:    cell(row, idx[0]),
			Games:  cell(row, games),
			Year:   year,
			Season: cell(row, season),
			City:   cell(row, city),
			Sport:  cell(row, idx[2]),
			Event:  cell(row, idx[3]),
			Medal:  model.ParseMedal(cell(row, idx[4])),
		})
	}
	return out, nil
}

// intPtr parses s as an integer. The dataset stores ages as "24" but some
// exports write "24.0", so a whole float is accepted too.
func intPtr(s string) *int {
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return &v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return nil
	}
	v := int(f)
	return &v
}

func floatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
