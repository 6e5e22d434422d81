// Package common provides shared utilities for Richelieu
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Richelieu
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Data        DataConfig    `toml:"data"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DataConfig holds configuration for the upstream static-JSON data store.
type DataConfig struct {
	BaseURL         string `toml:"base_url"`
	Timeout         string `toml:"timeout"`
	RateLimit       int    `toml:"rate_limit"`
	MaxConcurrent   int    `toml:"max_concurrent"`
	RefreshSchedule string `toml:"refresh_schedule"` // cron spec; empty disables scheduled refresh
}

// GetTimeout parses and returns the timeout duration
func (c *DataConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Data: DataConfig{
			BaseURL:         "https://richelieu-bourse.github.io/data",
			Timeout:         "30s",
			RateLimit:       10,
			MaxConcurrent:   8,
			RefreshSchedule: "0 22 * * 1-5", // upstream pipeline runs weekdays 22:00 UTC
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped; later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("RICHELIEU_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("RICHELIEU_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("RICHELIEU_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("RICHELIEU_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if url := os.Getenv("RICHELIEU_DATA_URL"); url != "" {
		config.Data.BaseURL = url
	}

	if spec := os.Getenv("RICHELIEU_REFRESH_SCHEDULE"); spec != "" {
		config.Data.RefreshSchedule = spec
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
