package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaths(t *testing.T) {
	testCases := []struct {
		name       string
		env        string
		configName string
		logName    string
	}{
		{
			name:       "default environment",
			configName: "config.yml",
			logName:    "tally.log",
		},
		{
			name:       "named environment",
			env:        "dev",
			configName: "config_dev.yml",
			logName:    "tally_dev.log",
		},
		{
			name:       "blank environment",
			env:        "   ",
			configName: "config.yml",
			logName:    "tally.log",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPaths(tc.env)

			assert.Equal(t, "tally", p.appDir)
			assert.Equal(t, tc.configName, p.configFileName)
			assert.Equal(t, tc.logName, p.logFileName)
		})
	}
}
