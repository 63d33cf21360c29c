// Package config loads the dogboard settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the binary reads from the environment.
// Command-line flags override these values.
type Config struct {
	// Seed for the game. Nil picks a random seed.
	Seed *int64 `env:"DOGBOARD_SEED"`

	// Board is an embedded board name or a path to a board JSON file.
	Board string `env:"DOGBOARD_BOARD" envDefault:"classic"`

	// Players in turn order, comma separated.
	Players []string `env:"DOGBOARD_PLAYERS" envSeparator:","`

	// EventLog is the event stream path. Empty writes to stdout.
	EventLog string `env:"DOGBOARD_EVENT_LOG"`

	// MaxTurns aborts a game that runs too long. Zero means no limit.
	MaxTurns int `env:"DOGBOARD_MAX_TURNS" envDefault:"0"`

	LogLevel string `env:"DOGBOARD_LOG_LEVEL" envDefault:"info"`

	Telemetry TelemetryConfig
}

// TelemetryConfig configures trace export to Honeycomb.
type TelemetryConfig struct {
	Enabled bool   `env:"DOGBOARD_TELEMETRY" envDefault:"false"`
	APIKey  string `env:"HONEYCOMB_DOGBOARD_API_KEY"`
	Dataset string `env:"HONEYCOMB_DOGBOARD_DATASET" envDefault:"dogboard"`
}

// Load reads the given dotenv files, or .env when none are given, and then
// parses the environment. Missing dotenv files are not an error; variables
// already set in the environment win over dotenv values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
