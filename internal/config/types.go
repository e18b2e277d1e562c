package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Default config values.
const (
	DefaultConfigFilePath                 = "config/config.yml"
	DefaultServerPort                     = ":8080"
	DefaultServerReadTimeoutSeconds       = 30
	DefaultServerWriteTimeoutSeconds      = 30
	DefaultServerIdleTimeoutSeconds       = 60
	DefaultServerReadHeaderTimeoutSeconds = 30
	DefaultPageRefreshSeconds             = 5
	DefaultLoggerLevel                    = LogLevelInfo
	DefaultLoggerFormat                   = LogFormatJSON
	DefaultAPIBaseURL                     = "http://localhost:3000"
	DefaultAPIClientTimeoutSeconds        = 10
	DefaultRefreshIntervalMS              = 1000
	DefaultDisplayLocale                  = "pt-BR"
	DefaultDisplayCurrencySymbol          = "R$"
)

// LogLevel defines the type for logger levels.
type LogLevel string

// LogFormat defines the type for logger output formats.
type LogFormat string

// Defines the supported logger levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Defines the supported logger output formats.
const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logger  LoggerConfig  `yaml:"logger"`
	API     APIConfig     `yaml:"api"`
	Refresh RefreshConfig `yaml:"refresh"`
	Display DisplayConfig `yaml:"display"`
}

// ServerConfig holds all configuration related to the web UI server.
type ServerConfig struct {
	Port                     string `yaml:"port"`
	ReadTimeoutSeconds       int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds      int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds       int    `yaml:"idle_timeout_seconds"`
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
	PageRefreshSeconds       int    `yaml:"page_refresh_seconds"`
}

// LoggerConfig holds all configuration related to logging.
type LoggerConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// APIConfig holds all configuration related to the external transactions API.
type APIConfig struct {
	BaseURL              string `yaml:"base_url"`
	ClientTimeoutSeconds int    `yaml:"client_timeout_seconds"`
}

// RefreshConfig holds the auto-refresh loop settings.
type RefreshConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// DisplayConfig holds money formatting settings.
type DisplayConfig struct {
	Locale         string `yaml:"locale"`
	CurrencySymbol string `yaml:"currency_symbol"`
}

// Default returns a Config populated with every default value.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                     DefaultServerPort,
			ReadTimeoutSeconds:       DefaultServerReadTimeoutSeconds,
			WriteTimeoutSeconds:      DefaultServerWriteTimeoutSeconds,
			IdleTimeoutSeconds:       DefaultServerIdleTimeoutSeconds,
			ReadHeaderTimeoutSeconds: DefaultServerReadHeaderTimeoutSeconds,
			PageRefreshSeconds:       DefaultPageRefreshSeconds,
		},
		Logger: LoggerConfig{
			Level:  DefaultLoggerLevel,
			Format: DefaultLoggerFormat,
		},
		API: APIConfig{
			BaseURL:              DefaultAPIBaseURL,
			ClientTimeoutSeconds: DefaultAPIClientTimeoutSeconds,
		},
		Refresh: RefreshConfig{
			IntervalMS: DefaultRefreshIntervalMS,
		},
		Display: DisplayConfig{
			Locale:         DefaultDisplayLocale,
			CurrencySymbol: DefaultDisplayCurrencySymbol,
		},
	}
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" || c.Server.Port == ":" {
		return errors.New("server port (config key: server.port) cannot be empty or just ':'")
	}
	if c.Server.ReadTimeoutSeconds < 0 || c.Server.WriteTimeoutSeconds < 0 ||
		c.Server.IdleTimeoutSeconds < 0 || c.Server.ReadHeaderTimeoutSeconds < 0 {
		return errors.New("server timeouts (config keys: server.*_timeout_seconds) cannot be negative")
	}
	if c.Server.PageRefreshSeconds < 0 {
		return errors.New("page refresh seconds (config key: server.page_refresh_seconds) cannot be negative")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(string(c.Logger.Level))] {
		return fmt.Errorf(
			"invalid logger level (config key: logger.level): '%s', must be one of: debug, info, warn, error",
			c.Logger.Level,
		)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(string(c.Logger.Format))] {
		return fmt.Errorf(
			"invalid logger format (config key: logger.format): '%s', must be one of: json, text",
			c.Logger.Format,
		)
	}

	if c.API.BaseURL == "" {
		return errors.New("transactions API base URL (config key: api.base_url) cannot be empty")
	}
	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("transactions API base URL (config key: api.base_url) is not an absolute URL: '%s'", c.API.BaseURL)
	}
	if c.API.ClientTimeoutSeconds <= 0 {
		return errors.New("API client timeout seconds (config key: api.client_timeout_seconds) must be greater than 0")
	}

	if c.Refresh.IntervalMS <= 0 {
		return errors.New("refresh interval (config key: refresh.interval_ms) must be greater than 0")
	}

	if _, err := language.Parse(c.Display.Locale); err != nil {
		return fmt.Errorf("invalid display locale (config key: display.locale): '%s': %w", c.Display.Locale, err)
	}

	return nil
}
