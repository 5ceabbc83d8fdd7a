// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"strings"
)

// Medal is the medal an athlete received in an event.
type Medal int

// Medal values. MedalNone is the zero value and covers NA cells.
const (
	MedalNone Medal = iota
	MedalBronze
	MedalSilver
	MedalGold
)

// Medals lists the awarded medals in the order dashboards stack them.
var Medals = []Medal{MedalBronze, MedalSilver, MedalGold}

// ParseMedal maps a dataset cell to a Medal. Anything that is not one of the
// three medal names, including "NA" and the empty string, is MedalNone.
func ParseMedal(s string) Medal {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gold":
		return MedalGold
	case "silver":
		return MedalSilver
	case "bronze":
		return MedalBronze
	default:
		return MedalNone
	}
}

// String returns the dataset spelling of the medal, or "" for MedalNone.
func (m Medal) String() string {
	switch m {
	case MedalGold:
		return "Gold"
	case MedalSilver:
		return "Silver"
	case MedalBronze:
		return "Bronze"
	default:
		return ""
	}
}

// Awarded reports whether m is an actual medal.
func (m Medal) Awarded() bool { return m != MedalNone }

// MarshalJSON encodes the medal as its name, or null for MedalNone.
func (m Medal) MarshalJSON() ([]byte, error) {
	if m == MedalNone {
		return []byte("null"), nil
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts a medal name or null.
func (m *Medal) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*m = MedalNone
		return nil
	}
	*m = ParseMedal(*s)
	return nil
}

// MarshalYAML encodes the medal as its name, or null for MedalNone.
func (m Medal) MarshalYAML() (interface{}, error) {
	if m == MedalNone {
		return nil, nil
	}
	return m.String(), nil
}
