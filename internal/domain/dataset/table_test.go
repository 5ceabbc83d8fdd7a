package dataset_test

import (
	"errors"
	"testing"

	"github.com/okian/podium/internal/domain/dataset"
	"github.com/okian/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

var header = []string{"ID", "Name", "Sex", "Age", "Height", "Weight", "Team", "NOC", "Games", "Year", "Season", "City", "Sport", "Event", "Medal"}

func TestTable_Index(t *testing.T) {
	Convey("Given a table with the dataset header", t, func() {
		tbl := dataset.NewTable(header, nil)

		Convey("When looking up a present column", func() {
			idx, err := tbl.Index("event")

			Convey("Then it should match case-insensitively", func() {
				So(err, ShouldBeNil)
				So(idx, ShouldEqual, 13)
				So(tbl.Has(dataset.ColMedal), ShouldBeTrue)
			})
		})

		Convey("When looking up an absent column", func() {
			_, err := tbl.Index("Discipline")

			Convey("Then it should return a missing field error", func() {
				So(errors.Is(err, dataset.ErrMissingField), ShouldBeTrue)
				var mf *dataset.MissingFieldError
				So(errors.As(err, &mf), ShouldBeTrue)
				So(mf.Field, ShouldEqual, "Discipline")
				So(err.Error(), ShouldContainSubstring, "Discipline")
			})
		})

		Convey("When the table is nil", func() {
			var nilTable *dataset.Table

			Convey("Then it should be empty and miss every column", func() {
				So(nilTable.Len(), ShouldEqual, 0)
				So(nilTable.Has(dataset.ColYear), ShouldBeFalse)
			})
		})
	})
}

func TestTable_Records(t *testing.T) {
	Convey("Given a table of medal rows", t, func() {
		tbl := dataset.NewTable(
			[]string{"NOC", "Event", "Year", "Medal"},
			[][]string{
				{"CAN", "Ice Hockey Men's Ice Hockey", "2002", "Gold"},
				{"CAN", "Ice Hockey Men's Ice Hockey", "2006", ""},
				{"CAN", "Curling Men's Curling", "unknown", "Gold"},
			},
		)

		Convey("When projecting to records", func() {
			recs, err := tbl.Records()

			Convey("Then it should skip rows with an unparseable year", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 2)
				So(recs[0], ShouldResemble, model.MedalRecord{Country: "CAN", Event: "Ice Hockey Men's Ice Hockey", Year: 2002, Medal: model.MedalGold})
				So(recs[1].Medal, ShouldEqual, model.MedalNone)
			})
		})

		Convey("When the country column is missing", func() {
			noCountry := dataset.NewTable([]string{"Event", "Year", "Medal"}, [][]string{{"E1", "1996", "Gold"}})
			recs, err := noCountry.Records()

			Convey("Then the country should be left empty", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 1)
				So(recs[0].Country, ShouldEqual, "")
			})
		})

		Convey("When the medal column is missing", func() {
			noMedal := dataset.NewTable([]string{"Event", "Year"}, nil)
			_, err := noMedal.Records()

			Convey("Then it should fail with a missing field error", func() {
				So(errors.Is(err, dataset.ErrMissingField), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, dataset.ColMedal)
			})
		})
	})
}

func TestTable_Athletes(t *testing.T) {
	Convey("Given a table with full dataset rows", t, func() {
		tbl := dataset.NewTable(header, [][]string{
			{"1", "A Dijiang", "M", "24", "180", "80", "China", "CHN", "1992 Summer", "1992", "Summer", "Barcelona", "Basketball", "Basketball Men's Basketball", ""},
			{"2", "A Lamusi", "M", "", "", "", "China", "CHN", "2012 Summer", "2012", "Summer", "London", "Judo", "Judo Men's Extra-Lightweight", ""},
			{"3", "Gunnar Aaby", "M", "24.0", "", "", "Denmark", "DEN", "1920 Summer", "1920", "Summer", "Antwerpen", "Football", "Football Men's Football", "Silver"},
		})

		Convey("When converting to athlete rows", func() {
			rows, err := tbl.Athletes()

			Convey("Then optional numeric cells should be nil when empty", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 3)
				So(*rows[0].Age, ShouldEqual, 24)
				So(*rows[0].Height, ShouldEqual, 180.0)
				So(rows[1].Age, ShouldBeNil)
				So(rows[1].Weight, ShouldBeNil)
			})

			Convey("And whole float ages should be accepted", func() {
				So(*rows[2].Age, ShouldEqual, 24)
				So(rows[2].Medal, ShouldEqual, model.MedalSilver)
				So(rows[2].Games, ShouldEqual, "1920 Summer")
			})
		})

		Convey("When the sport column is missing", func() {
			partial := dataset.NewTable([]string{"NOC", "Year", "Event", "Medal"}, nil)
			_, err := partial.Athletes()

			Convey("Then it should name the missing column", func() {
				var mf *dataset.MissingFieldError
				So(errors.As(err, &mf), ShouldBeTrue)
				So(mf.Field, ShouldEqual, dataset.ColSport)
			})
		})
	})
}
