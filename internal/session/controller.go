// Package session ties an elapsed-seconds counter to the interval and context
// a user selected, and derives the title and taskbar progress from them.
package session

import (
	"github.com/ayoisaiah/tally/internal/progress"
	"github.com/ayoisaiah/tally/internal/stopwatch"
	"github.com/ayoisaiah/tally/internal/timeutil"
)

// EventType defines the type of Controller event.
type EventType string

const (
	EventTitleChanged    EventType = "title_changed"
	EventProgressChanged EventType = "progress_changed"
)

// Event is a Controller update delivered to subscribers.
type Event struct {
	Type     EventType
	Title    string
	Progress progress.State
}

// Listener receives Controller events.
type Listener func(Event)

// Controller is the session state machine. It is not safe for concurrent use:
// commands and counter ticks must arrive on a single goroutine.
type Controller struct {
	counter        *stopwatch.Counter
	listeners      []Listener
	title          string
	publishedTitle string
	published      progress.State
	progress       progress.Indicator
	interval       Interval
	context        Context

	// inCommand defers publishing until a command has been fully applied
	inCommand bool
}

// NewController creates a Controller with no interval and no context that
// observes counter.
func NewController(counter *stopwatch.Counter) *Controller {
	c := &Controller{
		counter: counter,
	}

	c.updateTitle("")
	c.publishedTitle = c.title
	c.published = c.progress.State()

	counter.Subscribe(c.handleCounterEvent)

	return c
}

// Subscribe registers fn to receive title and progress changes. Listeners are
// called synchronously in the order they were registered.
func (c *Controller) Subscribe(fn Listener) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) handleCounterEvent(e stopwatch.Event) {
	if e.Type == stopwatch.EventTextChanged {
		c.updateTitle(e.Text)
	} else {
		c.updateTitle("")
	}

	if !c.inCommand {
		c.publish()
	}
}

// command runs fn with publishing deferred, then reports what changed.
func (c *Controller) command(fn func()) {
	c.inCommand = true
	fn()
	c.inCommand = false

	c.publish()
}

// publish notifies listeners of a title or progress state that differs from
// the last one published.
func (c *Controller) publish() {
	state := c.progress.State()

	if c.title != c.publishedTitle {
		c.publishedTitle = c.title
		c.emit(Event{Type: EventTitleChanged, Title: c.title, Progress: state})
	}

	if state != c.published {
		c.published = state
		c.emit(Event{Type: EventProgressChanged, Title: c.title, Progress: state})
	}
}

func (c *Controller) emit(e Event) {
	for _, fn := range c.listeners {
		fn(e)
	}
}

// updateTitle recomputes the title, using text in place of the counter's text
// when it is not empty, and keeps the progress value in step with the
// counter.
func (c *Controller) updateTitle(text string) {
	if text == "" {
		text = c.counter.Text()
	}

	c.title = Title(c.context, c.interval, text, c.counter.Seconds())

	if c.interval.IsNone() {
		return
	}

	secs := c.counter.Seconds()
	if secs <= c.progress.Maximum() {
		c.progress.SetValue(secs)
	} else if !c.progress.IsStopped() {
		c.progress.Stop()
	}
}

// SelectInterval makes i the active interval. Selecting IntervalNone hides
// the progress indicator.
func (c *Controller) SelectInterval(i Interval) error {
	if !i.Valid() {
		return ErrInvalidSelection.Fmt("interval", int(i))
	}

	c.command(func() {
		c.interval = i

		if i.IsNone() {
			c.progress.Hide()
		} else {
			limit := i.Seconds()
			secs := c.counter.Seconds()

			c.progress.Show()
			c.progress.SetMaximum(limit)

			if secs < limit {
				c.progress.Resume()
			} else {
				c.progress.Stop()
			}

			c.progress.SetValue(min(limit, secs))
		}

		c.updateTitle("")
	})

	return nil
}

// SelectContext makes ctx the active context. It only affects the title.
func (c *Controller) SelectContext(ctx Context) error {
	if !ctx.Valid() {
		return ErrInvalidSelection.Fmt("context", int(ctx))
	}

	c.command(func() {
		c.context = ctx
		c.updateTitle("")
	})

	return nil
}

// Start starts the counter and resumes a paused indicator.
func (c *Controller) Start() {
	c.command(func() {
		c.counter.Start()

		if c.progress.IsPaused() {
			c.progress.Resume()
		}
	})
}

// Stop stops the counter and pauses the indicator.
func (c *Controller) Stop() {
	c.command(func() {
		c.counter.Stop()
		c.progress.SetPaused(true)
	})
}

// Toggle stops a running counter and starts a stopped one.
func (c *Controller) Toggle() {
	if c.counter.Running() {
		c.Stop()
		return
	}

	c.Start()
}

// Reset zeroes the counter and takes the indicator out of the paused or
// stopped phase.
func (c *Controller) Reset() {
	c.command(func() {
		c.counter.Reset()
		c.progress.Resume()
	})
}

// Title returns the current title.
func (c *Controller) Title() string {
	return c.title
}

// Progress returns the current state of the progress indicator.
func (c *Controller) Progress() progress.State {
	return c.progress.State()
}

// Interval returns the active interval.
func (c *Controller) Interval() Interval {
	return c.interval
}

// Context returns the active context.
func (c *Controller) Context() Context {
	return c.context
}

// Running reports whether the counter is ticking.
func (c *Controller) Running() bool {
	return c.counter.Running()
}

// Text returns the counter's formatted elapsed time.
func (c *Controller) Text() string {
	return c.counter.Text()
}

// Percent returns the completion percentage against the active interval, or 0
// when no interval is selected. Like the title, it is not clamped.
func (c *Controller) Percent() int {
	return timeutil.Percent(c.counter.Seconds(), c.interval.Seconds())
}
