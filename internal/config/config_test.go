package config_test

import (
	"errors"
	"testing"

	"github.com/okian/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.DatasetPath, convey.ShouldEqual, "data/athlete_events.csv")
			convey.So(cfg.AnonymizeNames, convey.ShouldBeTrue)
			convey.So(cfg.DefaultSport, convey.ShouldEqual, "Ice Hockey")
			convey.So(cfg.DefaultCountry, convey.ShouldEqual, "CAN")
			convey.So(cfg.DefenceCycleYears, convey.ShouldEqual, 4)
			convey.So(cfg.RateLimitRPS, convey.ShouldEqual, 20)
			convey.So(cfg.RateLimitBurst, convey.ShouldEqual, 40)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with invalid settings", t, func() {
		convey.Convey("When the cycle is not positive", func() {
			cfg := config.New()
			cfg.DefenceCycleYears = 0
			err := cfg.Validate()

			convey.Convey("Then it should be an invalid config error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "defence_cycle_years")
			})
		})

		convey.Convey("When the dataset path is empty", func() {
			cfg := config.New()
			cfg.DatasetPath = ""

			convey.Convey("Then it should be rejected", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When rate limiting has no burst", func() {
			cfg := config.New()
			cfg.RateLimitBurst = 0

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})

			convey.Convey("And disabling the limiter makes it valid", func() {
				cfg.RateLimitRPS = 0
				convey.So(cfg.Validate(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the log level is unknown", func() {
			cfg := config.New()
			cfg.LogLevel = "verbose"

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})

			convey.Convey("And any known level in any case is accepted", func() {
				for _, level := range []string{"debug", "INFO", "Warn", "error"} {
					cfg.LogLevel = level
					convey.So(cfg.Validate(), convey.ShouldBeNil)
				}
			})
		})

		convey.Convey("When the log format is unknown", func() {
			cfg := config.New()
			cfg.LogFormat = "xml"

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
