package config

import (
	"regexp"
	"slices"
	"strings"

	"github.com/ayoisaiah/tally/internal/session"
)

var (
	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if _, err := session.ParseInterval(c.Session.Interval); err != nil {
		return err
	}

	if _, err := session.ParseContext(c.Session.Context); err != nil {
		return err
	}

	if !hexColorRegex.MatchString(c.Display.Color) {
		return errInvalidColor.Fmt(c.Display.Color)
	}

	return c.validateLog()
}

// validateLog validates the LogConfig.
func (c *Config) validateLog() error {
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if !slices.Contains(logLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	rotation := []struct {
		name  string
		value int
	}{
		{"max_size", c.Log.MaxSize},
		{"max_backups", c.Log.MaxBackups},
		{"max_age", c.Log.MaxAge},
	}

	for _, r := range rotation {
		if r.value < 0 {
			return errInvalidLogRotation.Fmt(r.name, r.value)
		}
	}

	return nil
}
