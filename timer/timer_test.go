package timer

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tally/internal/progress"
	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/internal/taskbar"
)

func newTestTimer(t *testing.T, opts Options) *Timer {
	t.Helper()

	if opts.Color == "" {
		opts.Color = "#B0DB43"
	}

	tm, err := New(opts)
	require.NoError(t, err)

	return tm
}

func press(tm *Timer, keys ...string) {
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		if k == " " {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(k)}
		}

		_, _ = tm.Update(msg)
	}
}

func tick(tm *Timer, n int) {
	for range n {
		_, _ = tm.Update(tickMsg{gen: tm.ticker.gen})
	}
}

func TestTimerCounts(t *testing.T) {
	tm := newTestTimer(t, Options{})

	press(tm, "s")
	assert.True(t, tm.ticker.running)

	tick(tm, 65)
	assert.Equal(t, "01:05", tm.Controller().Title())

	press(tm, "x")
	assert.False(t, tm.ticker.running)

	press(tm, "r")
	assert.Equal(t, "00:00", tm.Controller().Text())
}

func TestTimerDropsStaleTicks(t *testing.T) {
	tm := newTestTimer(t, Options{})

	press(tm, "s")
	stale := tickMsg{gen: tm.ticker.gen}

	press(tm, "x", "s")

	_, cmd := tm.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, "00:00", tm.Controller().Text())

	tick(tm, 1)
	assert.Equal(t, "00:01", tm.Controller().Text())
}

func TestTimerIgnoresTicksWhileStopped(t *testing.T) {
	tm := newTestTimer(t, Options{})

	tick(tm, 3)
	assert.Equal(t, "00:00", tm.Controller().Text())
}

func TestTimerToggle(t *testing.T) {
	tm := newTestTimer(t, Options{})

	press(tm, " ")
	assert.True(t, tm.Controller().Running())

	press(tm, " ")
	assert.False(t, tm.Controller().Running())
}

func TestTimerSelections(t *testing.T) {
	tm := newTestTimer(t, Options{})

	press(tm, "1", "w", "s")
	tick(tm, 2)

	assert.Equal(t, session.Interval5s, tm.Controller().Interval())
	assert.Equal(t, session.ContextWork, tm.Controller().Context())
	assert.Equal(t, "Work (5s) | 00:02 (40%)", tm.Controller().Title())

	tick(tm, 4)
	assert.Equal(t, progress.Stopped, tm.Controller().Progress().Phase)
	assert.Equal(t, "Work (5s) | 00:06 (120%)", tm.Controller().Title())

	press(tm, "0", "n")
	assert.Equal(t, "00:06", tm.Controller().Title())
	assert.Equal(t, progress.Hidden, tm.Controller().Progress().Phase)
	assert.Empty(t, tm.progressView())
}

func TestTimerInitialSelections(t *testing.T) {
	tm := newTestTimer(t, Options{
		Interval:  session.Interval15m,
		Context:   session.ContextPlay,
		AutoStart: true,
	})

	assert.Equal(t, "Play (15m) | 00:00 (0%)", tm.Controller().Title())

	tm.Init()
	assert.True(t, tm.Controller().Running())
}

func TestTimerInvalidInitialSelection(t *testing.T) {
	_, err := New(Options{Color: "#B0DB43", Interval: session.Interval(9)})

	assert.ErrorIs(t, err, session.ErrInvalidSelection)
}

func TestTimerWritesTaskbarProgress(t *testing.T) {
	var buf bytes.Buffer

	tm := newTestTimer(t, Options{
		Sink: taskbar.New(&buf, taskbar.WithTitle(false)),
	})

	press(tm, "2")

	assert.Equal(t, "\x1b]9;4;1;0\x1b\\", buf.String())
}

func TestTimerTaskbarFollowsStopAndStart(t *testing.T) {
	var buf bytes.Buffer

	tm := newTestTimer(t, Options{
		Sink:     taskbar.New(&buf, taskbar.WithTitle(false)),
		Interval: session.Interval15m,
	})

	press(tm, "s", "x", "s")

	assert.Equal(t, progress.Running, tm.Controller().Progress().Phase)
	assert.Equal(
		t,
		"\x1b]9;4;4;0\x1b\\\x1b]9;4;1;0\x1b\\",
		buf.String(),
	)
	assert.True(t, strings.HasSuffix(buf.String(), "\x1b]9;4;1;0\x1b\\"))
}

func TestTimerWindowTitle(t *testing.T) {
	tm := newTestTimer(t, Options{WindowTitle: true})

	_, cmd := tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	require.NotNil(t, cmd)

	tm.opts.WindowTitle = false

	_, cmd = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	assert.Nil(t, cmd)
}

func TestTimerHelpAndQuit(t *testing.T) {
	tm := newTestTimer(t, Options{})

	press(tm, "?")
	assert.True(t, tm.help.ShowAll)

	press(tm, "s")

	_, cmd := tm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.False(t, tm.Controller().Running())
}

func TestTimerView(t *testing.T) {
	tm := newTestTimer(t, Options{Context: session.ContextWork})

	press(tm, "3")

	view := tm.View()

	assert.Contains(t, view, "Work (30m) | 00:00 (0%)")
	assert.Contains(t, view, "00:00")
	assert.Contains(t, view, "30 mins.")
	assert.True(t, strings.Contains(view, "[Stopped]"))
}

func TestTimerClockWidth(t *testing.T) {
	tm := newTestTimer(t, Options{})

	assert.Equal(t, 5, tm.clockWidth)

	press(tm, "s")
	tick(tm, 3600)

	assert.Equal(t, "1:00:00", tm.Controller().Text())
	assert.Equal(t, 7, tm.clockWidth)
}
