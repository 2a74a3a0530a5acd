// Package config loads shvalidate settings from an optional YAML file and
// SHVALIDATE_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/connectedhome/validation-go/pkg/core"
)

// EnvConfigFile names the variable holding the config file path.
const EnvConfigFile = "SHVALIDATE_CONFIG"

// Config holds the settings shared by every shvalidate command.
type Config struct {
	// Workers bounds how many documents are validated at once.
	Workers int `env:"SHVALIDATE_WORKERS" yaml:"workers"`
	// Schema enables the JSON Schema envelope check.
	Schema bool `env:"SHVALIDATE_SCHEMA" yaml:"schema"`
	// Output is the report format, text or json.
	Output string `env:"SHVALIDATE_OUTPUT" yaml:"output"`
	// LogLevel is a logrus level name.
	LogLevel string `env:"SHVALIDATE_LOG_LEVEL" yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `env:"SHVALIDATE_LOG_FORMAT" yaml:"log_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:   4,
		Output:    "text",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load applies, in order, the defaults, the YAML file at path and the
// environment. An empty path falls back to $SHVALIDATE_CONFIG; when both
// are empty no file is read.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return &core.ConfigError{Field: "workers", Value: c.Workers, Err: fmt.Errorf("%w: must be at least 1", core.ErrInvalidConfig)}
	}
	switch c.Output {
	case "text", "json":
	default:
		return &core.ConfigError{Field: "output", Value: c.Output, Err: fmt.Errorf("%w: must be text or json", core.ErrInvalidConfig)}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return &core.ConfigError{Field: "log_level", Value: c.LogLevel, Err: fmt.Errorf("%w: %v", core.ErrInvalidConfig, err)}
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return &core.ConfigError{Field: "log_format", Value: c.LogFormat, Err: fmt.Errorf("%w: must be text or json", core.ErrInvalidConfig)}
	}
	return nil
}

// NewLogger returns a logger writing to w at the configured level and
// format. The config must have passed Validate.
func (c Config) NewLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger
}
