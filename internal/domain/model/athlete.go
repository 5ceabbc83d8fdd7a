package model

// AthleteEvent is one row of the athletes dataset: one athlete competing in
// one event at one Games. Optional numeric cells are nil when the dataset
// holds NA.
type AthleteEvent struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Sex    string   `json:"sex"`
	Age    *int     `json:"age,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Team   string   `json:"team"`
	NOC    string   `json:"noc"`
	Games  string   `json:"games"`
	Year   int      `json:"year"`
	Season string   `json:"season"`
	City   string   `json:"city"`
	Sport  string   `json:"sport"`
	Event  string   `json:"event"`
	Medal  Medal    `json:"medal"`
}

// MedalRecord is the projection of a row used by the title-defence analysis.
type MedalRecord struct {
	Country string `json:"country"`
	Event   string `json:"event"`
	Year    int    `json:"year"`
	Medal   Medal  `json:"medal"`
}

// Record projects the row to a MedalRecord.
func (a AthleteEvent) Record() MedalRecord {
	return MedalRecord{
		Country: a.NOC,
		Event:   a.Event,
		Year:    a.Year,
		Medal:   a.Medal,
	}
}
