package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/avivilloz/commonutils/internal/constants"
)

// Config holds all application configuration
type Config struct {
	LogLevel      string
	LogFormat     string
	IndexDecimals string
	ConfigFile    string
}

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	LogLevel      string `yaml:"logLevel"`
	LogFormat     string `yaml:"logFormat"`
	IndexDecimals *int   `yaml:"indexDecimals"`
}

// Load loads configuration from defaults, the optional YAML file named by
// COMMONUTILS_CONFIG, and environment variables, in increasing priority.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:      constants.DefaultLogLevel,
		LogFormat:     constants.DefaultLogFormat,
		IndexDecimals: strconv.Itoa(constants.DefaultIndexDecimals),
		ConfigFile:    getEnv(constants.EnvConfigFile, ""),
	}

	if cfg.ConfigFile != "" {
		if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
	}

	cfg.LogLevel = getEnv(constants.EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(constants.EnvLogFormat, cfg.LogFormat)
	cfg.IndexDecimals = getEnv(constants.EnvIndexDecimals, cfg.IndexDecimals)

	return cfg, nil
}

// LoadFile overlays the non-empty values of a YAML config file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		c.LogFormat = fc.LogFormat
	}
	if fc.IndexDecimals != nil {
		c.IndexDecimals = strconv.Itoa(*fc.IndexDecimals)
	}
	c.ConfigFile = path

	return nil
}

// Decimals returns the configured index width, or the default when invalid.
func (c *Config) Decimals() int {
	n, err := strconv.Atoi(c.IndexDecimals)
	if err != nil || n < 0 || n > constants.MaxIndexDecimals {
		return constants.DefaultIndexDecimals
	}
	return n
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	// Validate LogLevel
	validLogLevels := map[string]bool{
		constants.LogLevelDebug: true,
		constants.LogLevelInfo:  true,
		constants.LogLevelWarn:  true,
		constants.LogLevelError: true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		constants.LogFormatText: true,
		constants.LogFormatJSON: true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	// Validate IndexDecimals
	if c.IndexDecimals == "" {
		errors = append(errors, "INDEX_DECIMALS cannot be empty")
	} else {
		n, err := strconv.Atoi(c.IndexDecimals)
		if err != nil {
			errors = append(errors, fmt.Sprintf("INDEX_DECIMALS must be a valid number, got: %s", c.IndexDecimals))
		} else if n < 0 || n > constants.MaxIndexDecimals {
			errors = append(errors, fmt.Sprintf("INDEX_DECIMALS must be between 0 and %d, got: %d", constants.MaxIndexDecimals, n))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
