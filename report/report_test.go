package report

import (
	"bytes"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/tally/internal/session"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()

	os.Exit(m.Run())
}

func TestSelections(t *testing.T) {
	var buf bytes.Buffer

	Selections(&buf, session.Interval30m, session.ContextWork)

	out := buf.String()

	for _, want := range []string{
		"INTERVAL", "None", "5 secs.", "15 mins.", "30 mins.", "60 mins.",
		"1800", "CONTEXT", "Work", "Play", "*",
	} {
		assert.Contains(t, out, want)
	}
}
