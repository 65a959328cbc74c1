// Package config loads the command line and server settings.
//
// Settings start from Default, are then read from an optional YAML file
// and finally overridden by METAOXIDE_* environment variables, so
// METAOXIDE_SERVER_ADDR=:9000 wins over server.addr in the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/yfedoseev/meta-oxide/extractor"
	"github.com/yfedoseev/meta-oxide/internal/errs"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "METAOXIDE_"

// Config is the complete configuration.
type Config struct {
	Extract ExtractConfig `yaml:"extract" envPrefix:"EXTRACT_"`
	Fetch   FetchConfig   `yaml:"fetch" envPrefix:"FETCH_"`
	Server  ServerConfig  `yaml:"server" envPrefix:"SERVER_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
}

// ExtractConfig holds the extraction options.
type ExtractConfig struct {
	BaseURL       string        `yaml:"base_url" env:"BASE_URL"`
	MaxBufferSize int           `yaml:"max_buffer_size" env:"MAX_BUFFER_SIZE"`
	Timeout       time.Duration `yaml:"timeout" env:"TIMEOUT"`
	StrictUTF8    bool          `yaml:"strict_utf8" env:"STRICT_UTF8"`
	Concurrency   int           `yaml:"concurrency" env:"CONCURRENCY"`
}

// FetchConfig controls how remote documents are downloaded.
type FetchConfig struct {
	UserAgent string        `yaml:"user_agent" env:"USER_AGENT"`
	Timeout   time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	RateLimit       float64       `yaml:"rate_limit" env:"RATE_LIMIT"` // requests per second, 0 disables
	RateBurst       int           `yaml:"rate_burst" env:"RATE_BURST"`
	Metrics         bool          `yaml:"metrics" env:"METRICS"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level   string `yaml:"level" env:"LEVEL"`
	Format  string `yaml:"format" env:"FORMAT"` // console, text or json
	NoColor bool   `yaml:"no_color" env:"NO_COLOR"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Extract: ExtractConfig{
			MaxBufferSize: 10 * 1024 * 1024,
			Timeout:       30 * time.Second,
			StrictUTF8:    true,
			Concurrency:   4,
		},
		Fetch: FetchConfig{
			UserAgent: "meta-oxide/1.0 (+https://github.com/yfedoseev/meta-oxide)",
			Timeout:   15 * time.Second,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       20,
			RateBurst:       40,
			Metrics:         true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load returns the configuration read from path, if not empty, and from
// the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errs.WrapInputError(err, "config.Load", "cannot read configuration file")
		}
		if err := Decode(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, errs.WrapValidationError(err, "config.Load", "invalid environment")
	}

	return cfg, cfg.Validate()
}

// Decode reads YAML data over cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errs.WrapValidationError(err, "config.Decode", "invalid configuration file")
	}
	return nil
}

// Validate checks the values that cannot be fixed up silently.
func (c Config) Validate() error {
	if c.Extract.MaxBufferSize < 0 {
		return errs.WrapValidationError(fmt.Errorf("max_buffer_size is %d", c.Extract.MaxBufferSize), "config.Validate", "")
	}
	if c.Extract.Concurrency < 1 {
		return errs.WrapValidationError(fmt.Errorf("concurrency is %d", c.Extract.Concurrency), "config.Validate", "")
	}
	if c.Server.RateLimit < 0 {
		return errs.WrapValidationError(fmt.Errorf("rate_limit is %v", c.Server.RateLimit), "config.Validate", "")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "console", "text", "json":
	default:
		return errs.WrapValidationError(fmt.Errorf("log format %q", c.Log.Format), "config.Validate", "")
	}
	return nil
}

// ExtractorOptions converts the extract section to extractor options.
func (c Config) ExtractorOptions(logger *slog.Logger) []extractor.Option {
	return []extractor.Option{
		extractor.WithBaseURL(c.Extract.BaseURL),
		extractor.WithMaxBufferSize(c.Extract.MaxBufferSize),
		extractor.WithTimeout(c.Extract.Timeout),
		extractor.WithStrictUTF8(c.Extract.StrictUTF8),
		extractor.WithLogger(logger),
	}
}

// ParseLevel reads a log level name.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return l, errs.WrapValidationError(err, "config.ParseLevel", "")
	}
	return l, nil
}
