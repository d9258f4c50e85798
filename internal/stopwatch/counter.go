// Package stopwatch implements the elapsed-seconds counter that drives a
// session. The counter does not own a clock: it asks a Ticker to start and
// stop, and the host calls Tick for every period that elapses.
package stopwatch

import (
	"fmt"
	"time"

	"github.com/ayoisaiah/tally/internal/timeutil"
)

// Period is the interval between two ticks. Every tick advances the counter by
// exactly one second regardless of scheduling jitter.
const Period = time.Second

// Ticker is the periodic source that drives a Counter.
type Ticker interface {
	Start(period time.Duration)
	Stop()
}

// Counter counts elapsed seconds.
type Counter struct {
	ticker    Ticker
	listeners []Listener
	seconds   int
	running   bool
}

// New creates a stopped Counter at zero that drives t.
func New(t Ticker) *Counter {
	return &Counter{
		ticker: t,
	}
}

// Subscribe registers fn to receive every subsequent event. Listeners are
// called synchronously in the order they were registered.
func (c *Counter) Subscribe(fn Listener) {
	c.listeners = append(c.listeners, fn)
}

func (c *Counter) emit(typ EventType) {
	e := Event{
		Type: typ,
		Text: c.Text(),
	}

	for _, fn := range c.listeners {
		fn(e)
	}
}

// Start begins ticking. It does nothing if the counter is already running.
func (c *Counter) Start() {
	if c.running {
		return
	}

	c.running = true
	c.ticker.Start(Period)

	c.emit(EventStarted)
}

// Stop halts ticking. It does nothing if the counter is not running.
func (c *Counter) Stop() {
	if !c.running {
		return
	}

	c.running = false
	c.ticker.Stop()

	c.emit(EventStopped)
}

// Reset zeroes the elapsed time without changing the running state.
func (c *Counter) Reset() {
	c.seconds = 0

	c.emit(EventReset)
}

// Tick advances the counter by one second.
func (c *Counter) Tick() {
	c.seconds++

	c.emit(EventTextChanged)
}

// Running reports whether the counter is ticking.
func (c *Counter) Running() bool {
	return c.running
}

// Seconds returns the elapsed time in seconds.
func (c *Counter) Seconds() int {
	return c.seconds
}

// Text returns the elapsed time formatted for display.
func (c *Counter) Text() string {
	return Format(c.seconds)
}

// Format renders secs as "mm:ss" while the hour component is zero and as
// "h:mm:ss" afterwards, so the width of the result changes at the hour mark.
func Format(secs int) string {
	h, m, s := timeutil.SecsToClock(secs)

	if h == 0 {
		return fmt.Sprintf("%02d:%02d", m, s)
	}

	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
