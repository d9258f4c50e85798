package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyInterval        = "session.interval"
	keyContext         = "session.context"
	keyAutoStart       = "session.autostart"
	keyDarkTheme       = "display.dark_theme"
	keyWindowTitle     = "display.window_title"
	keyTaskbarProgress = "display.taskbar_progress"
	keyColor           = "display.color"
	keyLogLevel        = "log.level"
	keyLogMaxSize      = "log.max_size"
	keyLogMaxBackups   = "log.max_backups"
	keyLogMaxAge       = "log.max_age"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// A missing config file is created with the default settings, and any
// selections made in the first-run prompt are persisted to it.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		c.Runtime.ConfigPath = configPath

		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err != nil || c.Runtime.prompted {
			if c.Runtime.prompted {
				v.Set(keyInterval, c.Session.Interval)
				v.Set(keyContext, c.Session.Context)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyInterval, "none")
	v.SetDefault(keyContext, "none")
	v.SetDefault(keyAutoStart, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyWindowTitle, true)
	v.SetDefault(keyTaskbarProgress, true)
	v.SetDefault(keyColor, "#B0DB43")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogMaxSize, 5)
	v.SetDefault(keyLogMaxBackups, 3)
	v.SetDefault(keyLogMaxAge, 28)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
