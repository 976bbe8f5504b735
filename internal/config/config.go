package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

var ErrInvalidLogFormat = errors.New("invalid log format")

type Config struct {
	App     App
	HTTP    HTTP
	Metrics Metrics
	VPIC    VPIC
	Log     Log
}

type App struct {
	Name     string `env:"APP_NAME"      envDefault:"AutoInsight VIN Decoder API"`
	Version  string `env:"APP_VERSION"   envDefault:"v1"`
	DocsPath string `env:"APP_DOCS_PATH" envDefault:"/docs"`
}

// Load reads the optional .env file first; variables already set in the
// environment take precedence over it.
func Load() (Config, error) {
	_ = godotenv.Load() //nolint:errcheck

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Log.validate(); err != nil {
		return Config{}, fmt.Errorf("config.Log.validate: %w", err)
	}

	return config, nil
}
