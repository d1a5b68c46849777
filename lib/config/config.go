// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tigris-launcher/tigris/lib/paths"
	"github.com/tigris-launcher/tigris/lib/wire"
)

// EnvironmentVariable names the configuration file.
const EnvironmentVariable = "TIGRIS_CONFIG"

// Config is the host configuration.
type Config struct {
	// Paths configures directory locations.
	Paths paths.Layout `yaml:"paths"`

	// Invocation configures how extensions are run.
	Invocation InvocationConfig `yaml:"invocation"`

	// LogLevel is one of debug, info, warn, error.
	// Default: info
	LogLevel string `yaml:"log_level"`
}

// InvocationConfig configures extension invocations.
type InvocationConfig struct {
	// Timeout is the wall-clock limit for one extension process, as a
	// Go duration string. The process group is killed on expiry.
	// Default: 5s
	Timeout string `yaml:"timeout"`

	// MailboxCompression is how mailbox payloads are compressed:
	// none, lz4, or zstd.
	// Default: lz4
	MailboxCompression string `yaml:"mailbox_compression"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Paths: paths.Default(),
		Invocation: InvocationConfig{
			Timeout:            "5s",
			MailboxCompression: "lz4",
		},
		LogLevel: "info",
	}
}

// Load loads configuration from the TIGRIS_CONFIG file, or returns the
// defaults when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Values absent
// from the file keep their defaults. The result is validated.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Paths.Runtime = expandVars(c.Paths.Runtime, vars)
	vars["TIGRIS_RUNTIME"] = c.Paths.Runtime

	c.Paths.Data = expandVars(c.Paths.Data, vars)
	c.Paths.Config = expandVars(c.Paths.Config, vars)
	c.Paths.Cache = expandVars(c.Paths.Cache, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Provided vars first, then the environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Paths.Validate(); err != nil {
		errs = append(errs, err)
	}

	timeout, err := time.ParseDuration(c.Invocation.Timeout)
	if err != nil {
		errs = append(errs, fmt.Errorf("invocation.timeout: %w", err))
	} else if timeout <= 0 {
		errs = append(errs, fmt.Errorf("invocation.timeout must be positive, got %s", c.Invocation.Timeout))
	}

	if _, err := wire.ParseCompression(c.Invocation.MailboxCompression); err != nil {
		errs = append(errs, fmt.Errorf("invocation.mailbox_compression: %w", err))
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// InvocationTimeout returns the parsed invocation timeout. Call only on
// a validated Config.
func (c *Config) InvocationTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Invocation.Timeout)
	return timeout
}

// MailboxCompression returns the parsed mailbox compression. Call only
// on a validated Config.
func (c *Config) MailboxCompression() wire.Compression {
	compression, _ := wire.ParseCompression(c.Invocation.MailboxCompression)
	return compression
}

// Level returns the parsed log level. Call only on a validated Config.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", name)
	}
}
