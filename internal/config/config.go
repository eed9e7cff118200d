// Package config provides configuration management for addrgen.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/addrgen/internal/fileutil"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	Server  ServerConfig  `yaml:"server"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines the HTTP API settings.
type ServerConfig struct {
	Listen              string    `yaml:"listen"`
	ReadTimeoutSeconds  int       `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int       `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int       `yaml:"idle_timeout_seconds"`
	RateLimit           RateLimit `yaml:"rate_limit"`
	Metrics             bool      `yaml:"metrics"`
}

// RateLimit bounds requests per client address. RequestsPerSecond 0 disables it.
type RateLimit struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	File          string `yaml:"file"`
	MaxAgeHours   int    `yaml:"max_age_hours"`
	RotationHours int    `yaml:"rotation_hours"`
}

// Load reads configuration from the specified file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, addrerr.WithCause(addrerr.ErrConfigNotFound, err)
	}
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, addrerr.WithCause(addrerr.ErrConfigInvalid, err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to Defaults otherwise.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Save writes configuration to the specified file, creating its directory.
// The file is replaced atomically and is readable by the owner only.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return fileutil.WriteFile(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Server.Listen) == "" {
		problems = append(problems, "server.listen must not be empty")
	}
	if c.Server.ReadTimeoutSeconds < 0 || c.Server.WriteTimeoutSeconds < 0 || c.Server.IdleTimeoutSeconds < 0 {
		problems = append(problems, "server timeouts must not be negative")
	}
	if c.Server.RateLimit.RequestsPerSecond < 0 {
		problems = append(problems, "server.rate_limit.requests_per_second must not be negative")
	}
	if c.Server.RateLimit.RequestsPerSecond > 0 && c.Server.RateLimit.Burst < 1 {
		problems = append(problems, "server.rate_limit.burst must be at least 1 when rate limiting is enabled")
	}
	switch strings.ToLower(c.Output.DefaultFormat) {
	case "auto", "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("output.default_format %q is not one of auto, text, json", c.Output.DefaultFormat))
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "off", "none", "error", "info", "debug":
	default:
		problems = append(problems, fmt.Sprintf("logging.level %q is not one of off, error, info, debug", c.Logging.Level))
	}
	if c.Logging.MaxAgeHours < 0 || c.Logging.RotationHours < 0 {
		problems = append(problems, "logging rotation settings must not be negative")
	}

	if len(problems) == 0 {
		return nil
	}
	return addrerr.WithDetails(addrerr.ErrConfigInvalid, map[string]string{
		"problems": strings.Join(problems, "; "),
	})
}

// GetHome returns the addrgen home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// LogOptions returns the rotation options for NewLogger.
func (c *Config) LogOptions() []LogOption {
	return []LogOption{
		WithMaxAge(time.Duration(c.Logging.MaxAgeHours) * time.Hour),
		WithRotationTime(time.Duration(c.Logging.RotationHours) * time.Hour),
	}
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// ReadTimeout returns the server read timeout.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// IdleTimeout returns the server idle timeout.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSeconds) * time.Second
}

// DefaultHome returns the default addrgen home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".addrgen"
	}
	return filepath.Join(home, ".addrgen")
}
