// Package config loads runtime configuration for the wbscli tool.
//
// Sources and precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file, path supplied by the caller (-c/--config flag).
//  3. Environment variables (WBS_*), which override earlier values.
//
// Command-line overrides for individual values are applied by the CLI layer
// on top of the loaded Config.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the wbscli tool.
type Config struct {
	// APIHost is the WBS API host (host or host:port).
	APIHost string `env:"WBS_API_HOST"`
	// Scheme is the URL scheme used to reach the API.
	Scheme string `env:"WBS_SCHEME"`
	// RequestTimeout bounds a single API round trip.
	RequestTimeout time.Duration `env:"WBS_REQUEST_TIMEOUT"`
	// LogLevel is an slog level value (0 info, -4 debug, 4 warn, 8 error).
	LogLevel int `env:"WBS_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIHost = "wbsapi.withings.net"
	c.Scheme = "http"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file at jsonPath (if non-empty) and the environment. Later sources
// take precedence over earlier ones.
func LoadConfig(jsonPath string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if jsonPath != "" {
		if err := parseJSON(cfg, jsonPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
