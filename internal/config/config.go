// Package config implements application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the YAML file.
const (
	EnvAPIBaseURL        = "LEDGER_API_BASE_URL"
	EnvServerPort        = "LEDGER_SERVER_PORT"
	EnvLogLevel          = "LEDGER_LOG_LEVEL"
	EnvRefreshIntervalMS = "LEDGER_REFRESH_INTERVAL_MS"
)

// LoadConfig loads the configuration from a YAML file, applies environment
// overrides (a .env file in the working directory is honoured) and validates the result.
// A missing file at the default path is not an error.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()

	loadPath := filePath
	if loadPath == "" {
		loadPath = DefaultConfigFilePath
	}

	fileBytes, err := os.ReadFile(loadPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(fileBytes, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", loadPath, err)
		}
	case errors.Is(err, fs.ErrNotExist) && filePath == "":
	default:
		return nil, fmt.Errorf("failed to read config file '%s': %w", loadPath, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.API.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvServerPort); ok && v != "" {
		cfg.Server.Port = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logger.Level = LogLevel(v)
	}
	if v, ok := os.LookupEnv(EnvRefreshIntervalMS); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", EnvRefreshIntervalMS, v, err)
		}
		cfg.Refresh.IntervalMS = ms
	}
	return nil
}
