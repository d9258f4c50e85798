package taskbar

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tally/internal/progress"
)

func TestProgressSequence(t *testing.T) {
	table := []struct {
		want  string
		state progress.State
	}{
		{"\x1b]9;4;0;0\x1b\\", progress.State{Phase: progress.Hidden, Value: 3, Max: 5}},
		{"\x1b]9;4;1;7\x1b\\", progress.State{Phase: progress.Running, Value: 65, Max: 900}},
		{"\x1b]9;4;4;50\x1b\\", progress.State{Phase: progress.Paused, Value: 450, Max: 900}},
		{"\x1b]9;4;2;100\x1b\\", progress.State{Phase: progress.Stopped, Value: 5, Max: 5}},
	}

	for _, v := range table {
		assert.Equal(t, v.want, ProgressSequence(v.state), "state %+v", v.state)
	}
}

func TestTitleSequenceStripsControlCharacters(t *testing.T) {
	assert.Equal(
		t,
		"\x1b]2;Work | 01:05\a",
		TitleSequence("Work | \a01:05\x1b"),
	)
}

func TestSinkSuppressesDuplicates(t *testing.T) {
	var buf bytes.Buffer

	s := New(&buf)

	running := progress.State{Phase: progress.Running, Value: 1, Max: 5}

	require.NoError(t, s.Progress(running))
	require.NoError(t, s.Progress(running))
	require.NoError(t, s.Title("00:01"))
	require.NoError(t, s.Title("00:01"))

	assert.Equal(t, "\x1b]9;4;1;20\x1b\\\x1b]2;00:01\a", buf.String())
}

func TestSinkFirstHiddenStateIsWritten(t *testing.T) {
	var buf bytes.Buffer

	s := New(&buf)

	require.NoError(t, s.Clear())
	assert.Equal(t, "\x1b]9;4;0;0\x1b\\", buf.String())
}

func TestDisabledSink(t *testing.T) {
	var buf bytes.Buffer

	s := New(&buf, WithTitle(false), WithProgress(false))

	require.NoError(t, s.Title("00:01"))
	require.NoError(t, s.Progress(progress.State{Phase: progress.Running}))
	assert.Empty(t, buf.String())

	var nilSink *Sink

	assert.NoError(t, nilSink.Title("x"))
	assert.NoError(t, nilSink.Clear())
}
