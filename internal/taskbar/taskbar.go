// Package taskbar writes session state to the hosting terminal: the window
// title and the taskbar progress indicator supported by Windows Terminal,
// ConEmu and other emulators that understand OSC 9;4.
package taskbar

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ayoisaiah/tally/internal/progress"
)

const (
	esc = "\x1b"
	bel = "\a"
	st  = esc + `\`
)

// OSC 9;4 progress states.
const (
	stateHidden  = 0
	stateNormal  = 1
	stateError   = 2
	stateWarning = 4
)

// Sink writes escape sequences to a terminal. A nil or disabled Sink writes
// nothing.
type Sink struct {
	w         io.Writer
	title     string
	last      progress.State
	mu        sync.Mutex
	titles    bool
	progress  bool
	wroteOnce bool
}

// Option configures a Sink.
type Option func(*Sink)

// WithTitle controls whether the Sink sets the window title.
func WithTitle(enabled bool) Option {
	return func(s *Sink) {
		s.titles = enabled
	}
}

// WithProgress controls whether the Sink drives the taskbar progress
// indicator.
func WithProgress(enabled bool) Option {
	return func(s *Sink) {
		s.progress = enabled
	}
}

// New returns a Sink writing to w with both the title and progress enabled
// unless opts say otherwise.
func New(w io.Writer, opts ...Option) *Sink {
	s := &Sink{
		w:        w,
		titles:   true,
		progress: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ProgressSequence returns the OSC 9;4 sequence describing state.
func ProgressSequence(state progress.State) string {
	code := stateNormal

	switch state.Phase {
	case progress.Hidden:
		return fmt.Sprintf("%s]9;4;%d;0%s", esc, stateHidden, st)
	case progress.Paused:
		code = stateWarning
	case progress.Stopped:
		code = stateError
	}

	pct := 0
	if state.Max > 0 {
		pct = 100 * state.Value / state.Max
	}

	return fmt.Sprintf("%s]9;4;%d;%d%s", esc, code, pct, st)
}

// TitleSequence returns the OSC 2 sequence that sets the window title.
// Control characters are removed so the title cannot terminate the sequence
// early.
func TitleSequence(title string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}

		return r
	}, title)

	return esc + "]2;" + clean + bel
}

// Title sets the window title if it differs from the last one written.
func (s *Sink) Title(title string) error {
	if s == nil || !s.titles {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if title == s.title {
		return nil
	}

	s.title = title

	_, err := io.WriteString(s.w, TitleSequence(title))

	return err
}

// Progress updates the taskbar indicator if state differs from the last one
// written.
func (s *Sink) Progress(state progress.State) error {
	if s == nil || !s.progress {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wroteOnce && state == s.last {
		return nil
	}

	s.last = state
	s.wroteOnce = true

	_, err := io.WriteString(s.w, ProgressSequence(state))

	return err
}

// Clear hides the taskbar indicator. It is meant to be called on exit so the
// terminal is not left showing a stale bar.
func (s *Sink) Clear() error {
	return s.Progress(progress.State{Phase: progress.Hidden})
}
