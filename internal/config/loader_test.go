package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "data/athlete_events.csv")
				convey.So(cfg.DefenceCycleYears, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			_ = os.Setenv("PODIUM_DATASET_PATH", "/srv/athlete_events.csv")
			_ = os.Setenv("PODIUM_ANONYMIZE_NAMES", "false")
			_ = os.Setenv("PODIUM_DEFAULT_COUNTRY", "NOR")
			_ = os.Setenv("PODIUM_DEFENCE_CYCLE_YEARS", "2")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "/srv/athlete_events.csv")
				convey.So(cfg.AnonymizeNames, convey.ShouldBeFalse)
				convey.So(cfg.DefaultCountry, convey.ShouldEqual, "NOR")
				convey.So(cfg.DefenceCycleYears, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
# dashboard defaults
addr: ":9090"
log_format: json
default_sport: "Judo"
defence_cycle_years: 4
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("PODIUM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.DefaultSport, convey.ShouldEqual, "Judo")
				convey.So(cfg.DefaultCountry, convey.ShouldEqual, "CAN")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
default_sport: "Judo"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("PODIUM_CONFIG", tmpFile)
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DefaultSport, convey.ShouldEqual, "Judo")
			})
		})

		convey.Convey("When loading config with a dotenv file", func() {
			dotenv := createTempConfigFile("PODIUM_DEFAULT_SPORT=Curling\nPODIUM_RATE_LIMIT_RPS=5\nPODIUM_ADDR=:7000\nOTHER=ignored\n")
			defer func() { _ = os.Remove(dotenv) }()

			_ = os.Setenv("PODIUM_ENV_FILE", dotenv)
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then dotenv values apply below real environment variables", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DefaultSport, convey.ShouldEqual, "Curling")
				convey.So(cfg.RateLimitRPS, convey.ShouldEqual, 5)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			})

			convey.Convey("And the process environment is left untouched", func() {
				_, set := os.LookupEnv("PODIUM_DEFAULT_SPORT")
				convey.So(set, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the dotenv file does not exist", func() {
			_ = os.Setenv("PODIUM_ENV_FILE", "/non/existent/.env")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("PODIUM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("PODIUM_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("PODIUM_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("PODIUM_DEFENCE_CYCLE_YEARS", "four")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"PODIUM_CONFIG",
		"PODIUM_ENV_FILE",
		"PODIUM_ADDR",
		"PODIUM_DATASET_PATH",
		"PODIUM_ANONYMIZE_NAMES",
		"PODIUM_DEFAULT_COUNTRY",
		"PODIUM_DEFENCE_CYCLE_YEARS",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "podium-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
