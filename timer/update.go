package timer

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/tally/internal/session"
)

// handleTick advances the counter by one second and schedules the next tick.
func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !t.ticker.accept(msg) {
		return t, nil
	}

	t.counter.Tick()

	return t, tea.Batch(t.flush(), t.ticker.next())
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slog.Debug(spew.Sdump(msg))

	switch {
	case key.Matches(msg, defaultKeymap.start):
		t.controller.Start()

	case key.Matches(msg, defaultKeymap.stop):
		t.controller.Stop()

	case key.Matches(msg, defaultKeymap.toggle):
		t.controller.Toggle()

	case key.Matches(msg, defaultKeymap.reset):
		t.controller.Reset()

	case key.Matches(msg, defaultKeymap.interval):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return t, nil
		}

		t.selectInterval(session.Interval(n))

	case key.Matches(msg, defaultKeymap.noContext):
		t.selectContext(session.ContextNone)

	case key.Matches(msg, defaultKeymap.work):
		t.selectContext(session.ContextWork)

	case key.Matches(msg, defaultKeymap.play):
		t.selectContext(session.ContextPlay)

	case key.Matches(msg, defaultKeymap.help):
		t.help.ShowAll = !t.help.ShowAll

		return t, nil

	case key.Matches(msg, defaultKeymap.quit):
		t.counter.Stop()

		return t, tea.Quit

	default:
		return t, nil
	}

	return t, t.flush()
}

func (t *Timer) selectInterval(i session.Interval) {
	if err := t.controller.SelectInterval(i); err != nil {
		slog.Warn("interval selection rejected", slog.Any("error", err))
	}
}

func (t *Timer) selectContext(c session.Context) {
	if err := t.controller.SelectContext(c); err != nil {
		slog.Warn("context selection rejected", slog.Any("error", err))
	}
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.help.Width = msg.Width

		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil
	}

	return t, nil
}
