package headless_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tally/internal/headless"
	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/internal/taskbar"
	"github.com/ayoisaiah/tally/internal/testutil"
	"github.com/ayoisaiah/tally/internal/ticker"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()

	m.Run()
}

type fakeSource struct {
	testutil.ManualTicker
	c chan ticker.Tick
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		c: make(chan ticker.Tick),
	}
}

func (f *fakeSource) C() <-chan ticker.Tick {
	return f.c
}

func (f *fakeSource) Accept(ticker.Tick) bool {
	return f.Running()
}

type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buf.String()
}

func waitFor(t *testing.T, out *syncBuffer, substr string, count int) {
	t.Helper()

	require.Eventually(t, func() bool {
		return strings.Count(out.String(), substr) >= count
	}, 2*time.Second, 5*time.Millisecond, "waiting for %d x %q in:\n%s", count, substr, out)
}

func TestRunAppliesTicksAndCommands(t *testing.T) {
	src := newFakeSource()
	in, cmds := io.Pipe()
	out := &syncBuffer{}

	errCh := make(chan error, 1)

	go func() {
		errCh <- headless.Run(context.Background(), headless.Options{
			Source:    src,
			In:        in,
			Out:       out,
			Interval:  session.Interval5s,
			Context:   session.ContextWork,
			AutoStart: true,
		})
	}()

	waitFor(t, out, "Work (5s) | 00:00 (0%)", 1)

	src.c <- ticker.Tick{}
	src.c <- ticker.Tick{}
	waitFor(t, out, "Work (5s) | 00:02 (40%)", 1)

	_, err := io.WriteString(cmds, "stop\nstatus\n")
	require.NoError(t, err)
	waitFor(t, out, "progress=2/5 (paused)", 1)

	// the source no longer accepts ticks once stopped
	src.c <- ticker.Tick{}

	_, err = io.WriteString(cmds, "status\n")
	require.NoError(t, err)
	waitFor(t, out, "Work (5s) | 00:02 (40%) [stopped]", 2)

	_, err = io.WriteString(cmds, "reset\ninterval 99\ncontext none\n")
	require.NoError(t, err)
	waitFor(t, out, "invalid interval selection: 99", 1)
	waitFor(t, out, "Work (5s) | 00:00 (0%)", 2)
	waitFor(t, out, "\n5s | 00:00 (0%)", 1)

	_, err = io.WriteString(cmds, "quit\n")
	require.NoError(t, err)
	defer cmds.Close()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}

	assert.Equal(t, 1, src.Starts)
	assert.False(t, src.Running(), "the tick source is stopped on exit")
}

func TestRunStopsOnCancel(t *testing.T) {
	src := newFakeSource()
	out := &syncBuffer{}

	var term bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)

	go func() {
		errCh <- headless.Run(ctx, headless.Options{
			Source:    src,
			Out:       out,
			Sink:      taskbar.New(&term),
			Interval:  session.Interval15m,
			AutoStart: true,
		})
	}()

	src.c <- ticker.Tick{}
	waitFor(t, out, "15m | 00:01 (0%)", 1)

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	assert.Contains(t, term.String(), taskbar.TitleSequence("15m | 00:01 (0%)"))
	assert.True(
		t,
		strings.HasSuffix(term.String(), "\x1b]9;4;0;0\x1b\\"),
		"the taskbar indicator is cleared on exit",
	)
}

func TestRunRejectsInvalidInitialSelection(t *testing.T) {
	err := headless.Run(context.Background(), headless.Options{
		Source:   newFakeSource(),
		Out:      io.Discard,
		Interval: session.Interval(9),
	})

	assert.ErrorIs(t, err, session.ErrInvalidSelection)
}

func TestRunPrintsPlainTitlesWithoutTerminal(t *testing.T) {
	pterm.EnableStyling()
	t.Cleanup(pterm.DisableStyling)

	var out bytes.Buffer

	err := headless.Run(context.Background(), headless.Options{
		Source:  newFakeSource(),
		In:      strings.NewReader("context work\nquit\n"),
		Out:     &out,
		Context: session.ContextNone,
	})
	require.NoError(t, err)

	assert.Equal(t, "00:00\nWork | 00:00\n", out.String())
}
