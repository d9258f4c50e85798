package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Interval   string
	Context    string
	LogLevel   string
	Start      bool
	Plain      bool
	NoProgress bool
	NoTitle    bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Interval:   ctx.String("interval"),
			Context:    ctx.String("context"),
			LogLevel:   ctx.String("log-level"),
			Start:      ctx.Bool("start"),
			Plain:      ctx.Bool("plain"),
			NoProgress: ctx.Bool("no-progress"),
			NoTitle:    ctx.Bool("no-title"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config. Empty strings and
// false booleans leave the loaded settings untouched.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Interval != "" {
		c.Session.Interval = opts.Interval
	}

	if opts.Context != "" {
		c.Session.Context = opts.Context
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.Start {
		c.Session.AutoStart = true
	}

	if opts.NoProgress {
		c.Display.TaskbarProgress = false
	}

	if opts.NoTitle {
		c.Display.WindowTitle = false
	}

	c.Runtime.Plain = opts.Plain

	return nil
}
