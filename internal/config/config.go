// Package config loads tally's settings from the config file, the first-run
// prompt, and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ayoisaiah/tally/internal/session"
)

type (
	// Config holds all configuration settings
	Config struct {
		Session SessionConfig `mapstructure:"session"`
		Display DisplayConfig `mapstructure:"display"`
		Log     LogConfig     `mapstructure:"log"`
		Runtime RuntimeConfig `mapstructure:"-"`
	}

	// SessionConfig holds the selections a session starts with
	SessionConfig struct {
		Interval  string `mapstructure:"interval"`
		Context   string `mapstructure:"context"`
		AutoStart bool   `mapstructure:"autostart"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		Color           string `mapstructure:"color"`
		DarkTheme       bool   `mapstructure:"dark_theme"`
		WindowTitle     bool   `mapstructure:"window_title"`
		TaskbarProgress bool   `mapstructure:"taskbar_progress"`
	}

	// LogConfig holds settings for the rotating log file
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
	}

	// RuntimeConfig holds settings that only apply to the current invocation
	// and are never written to the config file
	RuntimeConfig struct {
		ConfigPath string
		Plain      bool
		prompted   bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Interval returns the configured starting interval.
func (c *Config) Interval() session.Interval {
	i, _ := session.ParseInterval(c.Session.Interval)

	return i
}

// Context returns the configured starting context.
func (c *Config) Context() session.Context {
	ctx, _ := session.ParseContext(c.Session.Context)

	return ctx
}

// SlogLevel returns the configured log level. Validate has already rejected
// unknown levels, so a parse failure can only fall back to info.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(strings.TrimSpace(l.Level)))

	return level
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"interval=%s context=%s autostart=%t",
		c.Interval(),
		c.Context(),
		c.Session.AutoStart,
	)
}
