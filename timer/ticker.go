package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is delivered once per period while the clock runs. Messages from a
// previous run carry an older generation and are dropped.
type tickMsg struct {
	at  time.Time
	gen int
}

// clockTicker adapts the counter's tick source to Bubble Tea: starting it
// queues a tea.Tick command instead of spawning a goroutine.
type clockTicker struct {
	pending tea.Cmd
	period  time.Duration
	gen     int
	running bool
}

func (c *clockTicker) Start(period time.Duration) {
	if c.running {
		return
	}

	c.running = true
	c.period = period
	c.gen++
	c.pending = c.next()
}

func (c *clockTicker) Stop() {
	c.running = false
	c.pending = nil
	c.gen++
}

// accept reports whether msg belongs to the current run.
func (c *clockTicker) accept(msg tickMsg) bool {
	return c.running && msg.gen == c.gen
}

func (c *clockTicker) next() tea.Cmd {
	gen := c.gen

	return tea.Tick(c.period, func(t time.Time) tea.Msg {
		return tickMsg{at: t, gen: gen}
	})
}

// take returns the command queued by Start, if any.
func (c *clockTicker) take() tea.Cmd {
	cmd := c.pending
	c.pending = nil

	return cmd
}
