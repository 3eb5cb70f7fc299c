package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds process configuration, loaded from environment variables.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`
	// Port takes precedence over Addr when set (container platforms inject it).
	Port                string `env:"PORT"`
	ForecastsPath       string `env:"FORECASTS_PATH"`
	ForecastRegistryURL string `env:"FORECAST_REGISTRY_URL"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ListenAddr returns the address the HTTP server should bind to.
func (c Config) ListenAddr() string {
	if c.Port != "" {
		return ":" + c.Port
	}
	return c.Addr
}
