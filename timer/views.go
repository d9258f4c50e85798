package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/tally/internal/progress"
	"github.com/ayoisaiah/tally/internal/session"
)

// layoutWidth is the width the clock and title are centred in.
func (t *Timer) layoutWidth() int {
	return max(t.progress.Width, t.clockWidth)
}

func (t *Timer) clockView() string {
	clock := t.styles.main.Render(t.controller.Text())

	return lipgloss.PlaceHorizontal(t.layoutWidth(), lipgloss.Center, clock)
}

func (t *Timer) statusView() string {
	status := "[Stopped]"
	if t.controller.Running() {
		status = "[Running]"
	}

	return lipgloss.PlaceHorizontal(
		t.layoutWidth(),
		lipgloss.Center,
		t.styles.hint.Render(status),
	)
}

func (t *Timer) progressView() string {
	state := t.controller.Progress()
	if state.Phase == progress.Hidden {
		return ""
	}

	t.progress.FullColor = t.styles.phaseColor(state.Phase)

	return "\n\n" + t.progress.ViewAs(state.Percent()) +
		t.styles.hint.Render(
			fmt.Sprintf(" %d%%", t.controller.Percent()),
		)
}

// selectorView renders one row of options with the active one highlighted.
func (t *Timer) selectorView(label string, keys, options []string, active int) string {
	var s strings.Builder

	s.WriteString(t.styles.secondary.Render(fmt.Sprintf("%-9s", label)))

	for i, opt := range options {
		text := fmt.Sprintf("%s %s", keys[i], opt)

		if i == active {
			s.WriteString(" " + t.styles.active.Render(text))
			continue
		}

		s.WriteString(" " + t.styles.hint.Render(text))
	}

	return s.String()
}

func (t *Timer) intervalView() string {
	intervals := session.Intervals()
	keys := make([]string, len(intervals))
	labels := make([]string, len(intervals))

	for i, v := range intervals {
		keys[i] = fmt.Sprintf("%d", i)
		labels[i] = v.Label()
	}

	return t.selectorView("Interval", keys, labels, int(t.controller.Interval()))
}

func (t *Timer) contextView() string {
	contexts := session.Contexts()
	keys := []string{"n", "w", "p"}
	labels := make([]string, len(contexts))

	for i, v := range contexts {
		labels[i] = v.Label()
	}

	return t.selectorView("Context", keys, labels, int(t.controller.Context()))
}

func (t *Timer) View() string {
	var s strings.Builder

	s.WriteString(t.styles.secondary.Render(t.controller.Title()))
	s.WriteString("\n\n")
	s.WriteString(t.clockView())
	s.WriteString("\n")
	s.WriteString(t.statusView())
	s.WriteString(t.progressView())
	s.WriteString("\n\n")
	s.WriteString(t.intervalView())
	s.WriteString("\n")
	s.WriteString(t.contextView())
	s.WriteString("\n\n")
	s.WriteString(t.help.View(defaultKeymap))

	return t.styles.base.Render(s.String())
}
