package app

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ayoisaiah/tally/internal/config"
	"github.com/ayoisaiah/tally/internal/taskbar"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// newSink returns a taskbar sink writing to f, or nil when f is not a
// terminal or both outputs are disabled. titles controls whether the sink
// owns the window title; the TUI sets it through Bubble Tea instead.
func newSink(f *os.File, cfg *config.Config, titles bool) *taskbar.Sink {
	if !isTerminal(f) {
		return nil
	}

	return sinkFor(f, cfg, titles)
}

func sinkFor(w io.Writer, cfg *config.Config, titles bool) *taskbar.Sink {
	withTitle := titles && cfg.Display.WindowTitle
	withProgress := cfg.Display.TaskbarProgress

	if !withTitle && !withProgress {
		return nil
	}

	return taskbar.New(
		w,
		taskbar.WithTitle(withTitle),
		taskbar.WithProgress(withProgress),
	)
}
