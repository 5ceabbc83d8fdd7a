package stats

import (
	"sort"
	"strconv"

	"github.com/okian/podium/internal/domain/model"
)

// Level picks the label of the outer ring of a sunburst.
type Level func(model.AthleteEvent) string

// ByNOC labels leaves by country; used on sport dashboards.
func ByNOC(r model.AthleteEvent) string { return r.NOC }

// BySport labels leaves by sport; used on country dashboards.
func BySport(r model.AthleteEvent) string { return r.Sport }

// SunburstNode is one segment of the Year -> Medal -> leaf hierarchy. Root
// segments have an empty Parent. Value is the number of medal rows below.
type SunburstNode struct {
	ID     string `json:"id" yaml:"id"`
	Parent string `json:"parent" yaml:"parent"`
	Label  string `json:"label" yaml:"label"`
	Value  int    `json:"value" yaml:"value"`
}

// sunburstMedals is the ring order inside a year.
var sunburstMedals = []model.Medal{model.MedalGold, model.MedalSilver, model.MedalBronze}

// Sunburst builds the hierarchy over medal-winning rows. Nodes come out
// depth-first: each year, then its medals, then their leaves by label.
func Sunburst(rows []model.AthleteEvent, leaf Level) []SunburstNode {
	tree := make(map[int]map[model.Medal]map[string]int)
	for _, r := range rows {
		if !r.Medal.Awarded() {
			continue
		}
		byMedal, ok := tree[r.Year]
		if !ok {
			byMedal = make(map[model.Medal]map[string]int)
			tree[r.Year] = byMedal
		}
		leaves, ok := byMedal[r.Medal]
		if !ok {
			leaves = make(map[string]int)
			byMedal[r.Medal] = leaves
		}
		leaves[leaf(r)]++
	}

	years := make([]int, 0, len(tree))
	for y := range tree {
		years = append(years, y)
	}
	sort.Ints(years)

	var out []SunburstNode
	for _, y := range years {
		yearID := strconv.Itoa(y)
		yearIdx := len(out)
		out = append(out, SunburstNode{ID: yearID, Label: yearID})

		for _, medal := range sunburstMedals {
			leaves, ok := tree[y][medal]
			if !ok {
				continue
			}
			medalID := yearID + "/" + medal.String()
			medalIdx := len(out)
			out = append(out, SunburstNode{ID: medalID, Parent: yearID, Label: medal.String()})

			for _, label := range sortedKeys(leaves) {
				n := leaves[label]
				out = append(out, SunburstNode{ID: medalID + "/" + label, Parent: medalID, Label: label, Value: n})
				out[medalIdx].Value += n
			}
			out[yearIdx].Value += out[medalIdx].Value
		}
	}
	if out == nil {
		out = []SunburstNode{}
	}
	return out
}
