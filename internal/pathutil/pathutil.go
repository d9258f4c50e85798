// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/tally/internal/apperr"
)

const envKey = "TALLY_ENV"

var errResolvePath = &apperr.Error{
	Message: "unable to resolve %s path",
}

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths = newPaths(os.Getenv(envKey))
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().appDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// newPaths returns the file names for the given environment. A non-empty
// env keeps a separate config and log, e.g. config_dev.yml.
func newPaths(env string) *Paths {
	p := &Paths{
		appDir:         "tally",
		configFileName: "config.yml",
		logFileName:    "tally.log",
	}

	env = strings.TrimSpace(env)
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.logFileName = fmt.Sprintf("tally_%s.log", env)
	}

	return p
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.appDir, p.configFileName),
	)
	if err != nil {
		return errResolvePath.Fmt("config").Wrap(err)
	}

	p.logFilePath, err = xdg.DataFile(
		filepath.Join(p.appDir, "log", p.logFileName),
	)
	if err != nil {
		return errResolvePath.Fmt("log").Wrap(err)
	}

	return nil
}
