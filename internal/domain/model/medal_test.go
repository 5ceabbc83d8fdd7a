package model_test

import (
	"encoding/json"
	"testing"

	model "github.com/okian/podium/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseMedal(t *testing.T) {
	convey.Convey("Given dataset medal cells", t, func() {
		convey.Convey("When the cell names a medal", func() {
			convey.Convey("Then it should parse regardless of case and padding", func() {
				convey.So(model.ParseMedal("Gold"), convey.ShouldEqual, model.MedalGold)
				convey.So(model.ParseMedal(" silver "), convey.ShouldEqual, model.MedalSilver)
				convey.So(model.ParseMedal("BRONZE"), convey.ShouldEqual, model.MedalBronze)
			})
		})

		convey.Convey("When the cell is NA, empty or unknown", func() {
			convey.Convey("Then it should be MedalNone", func() {
				convey.So(model.ParseMedal("NA"), convey.ShouldEqual, model.MedalNone)
				convey.So(model.ParseMedal(""), convey.ShouldEqual, model.MedalNone)
				convey.So(model.ParseMedal("Platinum"), convey.ShouldEqual, model.MedalNone)
			})
		})
	})
}

func TestMedalString(t *testing.T) {
	convey.Convey("Given each medal value", t, func() {
		convey.So(model.MedalGold.String(), convey.ShouldEqual, "Gold")
		convey.So(model.MedalSilver.String(), convey.ShouldEqual, "Silver")
		convey.So(model.MedalBronze.String(), convey.ShouldEqual, "Bronze")
		convey.So(model.MedalNone.String(), convey.ShouldEqual, "")
		convey.So(model.MedalNone.Awarded(), convey.ShouldBeFalse)
		convey.So(model.MedalGold.Awarded(), convey.ShouldBeTrue)
	})
}

func TestMedalJSON(t *testing.T) {
	convey.Convey("Given a record carrying a medal", t, func() {
		convey.Convey("When encoding an awarded medal", func() {
			b, err := json.Marshal(model.MedalRecord{Country: "CAN", Event: "Ice Hockey Men's Ice Hockey", Year: 2010, Medal: model.MedalGold})

			convey.Convey("Then the medal should be its name", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldContainSubstring, `"medal":"Gold"`)
			})
		})

		convey.Convey("When encoding no medal", func() {
			b, err := json.Marshal(model.MedalRecord{Country: "CAN", Year: 2010})

			convey.Convey("Then the medal should be null", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(b), convey.ShouldContainSubstring, `"medal":null`)
			})
		})

		convey.Convey("When decoding null and names", func() {
			var got struct {
				A model.Medal `json:"a"`
				B model.Medal `json:"b"`
			}
			err := json.Unmarshal([]byte(`{"a":null,"b":"Silver"}`), &got)

			convey.Convey("Then both should decode", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(got.A, convey.ShouldEqual, model.MedalNone)
				convey.So(got.B, convey.ShouldEqual, model.MedalSilver)
			})
		})
	})
}

func TestAthleteEventRecord(t *testing.T) {
	convey.Convey("Given a dataset row", t, func() {
		row := model.AthleteEvent{ID: 7, NOC: "NOR", Event: "Biathlon Men's 20 kilometres", Year: 2002, Medal: model.MedalGold}

		convey.Convey("Then its record projection keeps the analysis columns", func() {
			rec := row.Record()
			convey.So(rec.Country, convey.ShouldEqual, "NOR")
			convey.So(rec.Event, convey.ShouldEqual, "Biathlon Men's 20 kilometres")
			convey.So(rec.Year, convey.ShouldEqual, 2002)
			convey.So(rec.Medal, convey.ShouldEqual, model.MedalGold)
		})
	})
}

func TestMedalYAML(t *testing.T) {
	convey.Convey("Given medals encoded for YAML", t, func() {
		gold, err := model.MedalGold.MarshalYAML()
		convey.So(err, convey.ShouldBeNil)
		convey.So(gold, convey.ShouldEqual, "Gold")

		none, err := model.MedalNone.MarshalYAML()
		convey.So(err, convey.ShouldBeNil)
		convey.So(none, convey.ShouldBeNil)
	})
}
