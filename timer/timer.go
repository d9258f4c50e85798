// Package timer is tally's terminal interface: a Bubble Tea model hosting one
// elapsed-seconds counter and the session controller that observes it
package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	bprogress "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/ayoisaiah/tally/internal/progress"
	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/internal/stopwatch"
	"github.com/ayoisaiah/tally/internal/taskbar"
)

// Options configures a Timer.
type Options struct {
	// Sink receives taskbar progress. A nil Sink disables it.
	Sink        *taskbar.Sink
	Color       string
	Interval    session.Interval
	Context     session.Context
	AutoStart   bool
	DarkTheme   bool
	WindowTitle bool
}

// Timer is the Bubble Tea model for a running session.
type Timer struct {
	counter    *stopwatch.Counter
	controller *session.Controller
	ticker     *clockTicker
	sink       *taskbar.Sink
	help       help.Model
	progress   bprogress.Model
	styles     styles
	pending    []session.Event
	opts       Options
	width      int
	clockWidth int
}

// New creates a Timer with the initial selections applied.
func New(opts Options) (*Timer, error) {
	t := &Timer{
		ticker: &clockTicker{},
		sink:   opts.Sink,
		help:   help.New(),
		opts:   opts,
		styles: newStyles(opts.Color, opts.DarkTheme),
	}

	t.progress = bprogress.New(
		bprogress.WithSolidFill(opts.Color),
		bprogress.WithoutPercentage(),
	)
	t.progress.Width = maxWidth

	t.counter = stopwatch.New(t.ticker)
	t.controller = session.NewController(t.counter)

	if err := t.controller.SelectInterval(opts.Interval); err != nil {
		return nil, err
	}

	if err := t.controller.SelectContext(opts.Context); err != nil {
		return nil, err
	}

	t.controller.Subscribe(t.handleEvent)
	t.resize()

	return t, nil
}

func (t *Timer) handleEvent(e session.Event) {
	t.pending = append(t.pending, e)
}

// flush writes the progress published since the last call to the taskbar,
// turns title changes into commands, and starts the clock if it was asked to.
// Progress is written synchronously so the sink sees states in Update order.
func (t *Timer) flush() tea.Cmd {
	var cmds []tea.Cmd

	for _, e := range t.pending {
		switch e.Type {
		case session.EventTitleChanged:
			t.resize()

			if t.opts.WindowTitle {
				cmds = append(cmds, tea.SetWindowTitle(e.Title))
			}
		case session.EventProgressChanged:
			slog.Debug(
				"progress changed",
				slog.String("phase", string(e.Progress.Phase)),
				slog.Int("value", e.Progress.Value),
				slog.Int("max", e.Progress.Max),
			)

			t.writeProgress(e.Progress)
		}
	}

	t.pending = t.pending[:0]

	if cmd := t.ticker.take(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if len(cmds) == 0 {
		return nil
	}

	return tea.Batch(cmds...)
}

// writeProgress writes state to the taskbar sink. The sink writes to stderr,
// so it does not interleave with the renderer.
func (t *Timer) writeProgress(state progress.State) {
	if err := t.sink.Progress(state); err != nil {
		slog.Error("taskbar progress write failed", slog.Any("error", err))
	}
}

// resize tracks the display width of the clock so the layout can be
// centred on the wider of the clock and the progress bar.
func (t *Timer) resize() {
	t.clockWidth = runewidth.StringWidth(t.controller.Text())
}

// Controller exposes the session state the model drives.
func (t *Timer) Controller() *session.Controller {
	return t.controller
}

func (t *Timer) Init() tea.Cmd {
	cmds := []tea.Cmd{}

	if t.opts.WindowTitle {
		cmds = append(cmds, tea.SetWindowTitle(t.controller.Title()))
	}

	t.writeProgress(t.controller.Progress())

	if t.opts.AutoStart {
		t.controller.Start()
	}

	return tea.Batch(append(cmds, t.flush())...)
}
