// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file, a dotenv file and environment variables over
//   the defaults.
// - External errors are wrapped with this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at athlete_events.csv.
	DatasetPath string `koanf:"dataset_path"`

	// AnonymizeNames replaces athlete names with their SHA-256 digest on load.
	AnonymizeNames bool `koanf:"anonymize_names"`

	// DefaultSport and DefaultCountry preselect the dashboard dropdowns.
	DefaultSport   string `koanf:"default_sport"`
	DefaultCountry string `koanf:"default_country"`

	// DefenceCycleYears is the exact gap credited as a title defence.
	DefenceCycleYears int `koanf:"defence_cycle_years"`

	// RateLimitRPS is the per-client request rate; 0 disables limiting.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":9080",
		DatasetPath:       "data/athlete_events.csv",
		AnonymizeNames:    true,
		DefaultSport:      "Ice Hockey",
		DefaultCountry:    "CAN",
		DefenceCycleYears: 4,
		RateLimitRPS:      20,
		RateLimitBurst:    40,
	}
}
