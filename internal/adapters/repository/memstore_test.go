package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleRows() []model.AthleteEvent {
	return []model.AthleteEvent{
		{ID: 1, NOC: "CAN", Sport: "Ice Hockey", Event: "Ice Hockey Men's Ice Hockey", Year: 2010, Medal: model.MedalGold},
		{ID: 2, NOC: "USA", Sport: "Ice Hockey", Event: "Ice Hockey Men's Ice Hockey", Year: 2010, Medal: model.MedalSilver},
		{ID: 3, NOC: "CAN", Sport: "Curling", Event: "Curling Men's Curling", Year: 2010, Medal: model.MedalGold},
		{ID: 4, NOC: "JPN", Sport: "Judo", Event: "Judo Men's Lightweight", Year: 2004},
	}
}

func TestMemoryStore(t *testing.T) {
	Convey("Given a store built from dataset rows", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(ctx, sampleRows())

		Convey("Then it should list distinct sports and countries ascending", func() {
			So(store.Sports(ctx), ShouldResemble, []string{"Curling", "Ice Hockey", "Judo"})
			So(store.Countries(ctx), ShouldResemble, []string{"CAN", "JPN", "USA"})
			So(store.Count(ctx), ShouldEqual, 4)
			So(store.All(ctx), ShouldHaveLength, 4)
		})

		Convey("When a caller mutates the returned slices", func() {
			sports := store.Sports(ctx)
			sports[0] = "Zorbing"
			countries := store.Countries(ctx)
			countries[0] = "ZZZ"
			all := store.All(ctx)
			all[0].NOC = "ZZZ"
			rows, err := store.BySport(ctx, "Curling")
			So(err, ShouldBeNil)
			rows[0].NOC = "ZZZ"

			Convey("Then the store should be unchanged", func() {
				So(store.Sports(ctx), ShouldResemble, []string{"Curling", "Ice Hockey", "Judo"})
				So(store.Countries(ctx), ShouldResemble, []string{"CAN", "JPN", "USA"})
				So(store.All(ctx)[0].NOC, ShouldEqual, "CAN")
				again, err := store.BySport(ctx, "Curling")
				So(err, ShouldBeNil)
				So(again[0].NOC, ShouldEqual, "CAN")
			})
		})

		Convey("When looking up a sport", func() {
			rows, err := store.BySport(ctx, "Ice Hockey")

			Convey("Then it should return the sport's rows in dataset order", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				So(rows[0].ID, ShouldEqual, 1)
				So(rows[1].ID, ShouldEqual, 2)
			})
		})

		Convey("When looking up a country", func() {
			rows, err := store.ByCountry(ctx, "CAN")

			Convey("Then it should return rows across sports", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
			})
		})

		Convey("When looking up with different case", func() {
			sportRows, sportErr := store.BySport(ctx, "ice HOCKEY")
			countryRows, countryErr := store.ByCountry(ctx, "can")

			Convey("Then it should fall back to the case-folded key", func() {
				So(sportErr, ShouldBeNil)
				So(sportRows, ShouldHaveLength, 2)
				So(sportRows[0].Sport, ShouldEqual, "Ice Hockey")
				So(countryErr, ShouldBeNil)
				So(countryRows, ShouldHaveLength, 2)
			})
		})

		Convey("When looking up unknown keys", func() {
			_, sportErr := store.BySport(ctx, "Quidditch")
			_, countryErr := store.ByCountry(ctx, "XYZ")

			Convey("Then it should return ErrNotFound", func() {
				So(errors.Is(sportErr, repository.ErrNotFound), ShouldBeTrue)
				So(sportErr.Error(), ShouldContainSubstring, "Quidditch")
				So(errors.Is(countryErr, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the caller mutates its input afterwards", func() {
			rows := sampleRows()
			s := repository.NewMemoryStore(ctx, rows)
			rows[0].NOC = "XXX"

			Convey("Then the store should be unaffected", func() {
				So(s.All(ctx)[0].NOC, ShouldEqual, "CAN")
			})
		})

		Convey("When read concurrently", func() {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 100; j++ {
						_, _ = store.BySport(ctx, "Judo")
						_, _ = store.ByCountry(ctx, "USA")
					}
				}()
			}
			wg.Wait()

			Convey("Then it should still answer", func() {
				rows, err := store.BySport(ctx, "Judo")
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(ctx, nil)

		Convey("Then listings should be empty", func() {
			So(store.Sports(ctx), ShouldBeEmpty)
			So(store.Countries(ctx), ShouldBeEmpty)
			So(store.Count(ctx), ShouldEqual, 0)
		})
	})
}
