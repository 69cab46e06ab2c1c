package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Log output formats understood by NewLogger.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel  string `env:"KEYRING_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"KEYRING_LOG_FORMAT" envDefault:"console"`
	StorePath string `env:"KEYRING_STORE_PATH" envDefault:"keyring.db"`
}

// LoadConfig reads Config from environment variables, applying defaults for
// anything unset.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q (want %s or %s)", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}
	if c.StorePath == "" {
		return fmt.Errorf("store path must not be empty")
	}
	return nil
}
