// Package headless runs a session without a terminal UI. Ticks from a
// goroutine ticker and commands read line by line from an input stream are
// applied on a single loop, and every title change is printed as a line.
package headless

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/command"
	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/internal/stopwatch"
	"github.com/ayoisaiah/tally/internal/taskbar"
	"github.com/ayoisaiah/tally/internal/ticker"
	"github.com/ayoisaiah/tally/internal/ui"
)

// Source is a tick source that delivers its ticks over a channel.
type Source interface {
	stopwatch.Ticker
	C() <-chan ticker.Tick
	Accept(tick ticker.Tick) bool
}

// Options configures a headless run.
type Options struct {
	Source    Source
	In        io.Reader
	Out       io.Writer
	Sink      *taskbar.Sink
	Interval  session.Interval
	Context   session.Context
	AutoStart bool
}

type runner struct {
	ctrl *session.Controller
	out  io.Writer
	sink *taskbar.Sink

	// color is off when output is not a terminal or styling is disabled
	color bool
}

// Run drives a session until ctx is cancelled or a quit command is read.
func Run(ctx context.Context, opts Options) error {
	counter := stopwatch.New(opts.Source)
	ctrl := session.NewController(counter)

	r := &runner{
		ctrl:  ctrl,
		out:   opts.Out,
		sink:  opts.Sink,
		color: opts.Sink != nil && pterm.PrintColor,
	}

	if err := ctrl.SelectInterval(opts.Interval); err != nil {
		return err
	}

	if err := ctrl.SelectContext(opts.Context); err != nil {
		return err
	}

	ctrl.Subscribe(r.handleEvent)

	r.printTitle()
	r.writeSink()

	defer func() {
		counter.Stop()

		if err := r.sink.Clear(); err != nil {
			slog.Warn("unable to clear taskbar progress", slog.Any("error", err))
		}
	}()

	if opts.AutoStart {
		ctrl.Start()
	}

	done := make(chan struct{})
	defer close(done)

	var lines <-chan string
	if opts.In != nil {
		lines = readLines(opts.In, done)
	}

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "headless session cancelled", slog.String("title", ctrl.Title()))
			return nil

		case tick := <-opts.Source.C():
			if opts.Source.Accept(tick) {
				counter.Tick()
			}

		case line, ok := <-lines:
			if !ok {
				slog.Debug("command input closed")

				lines = nil

				continue
			}

			if r.exec(line) {
				return nil
			}
		}
	}
}

// readLines forwards each line of in until EOF, then closes the returned
// channel.
func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}

		if err := scanner.Err(); err != nil {
			slog.Error("reading commands failed", slog.Any("error", err))
		}
	}()

	return lines
}

// exec applies a single command line and reports whether the loop should
// exit.
func (r *runner) exec(line string) bool {
	cmd, err := command.Parse(line)
	if err != nil {
		if !errors.Is(err, command.ErrEmpty) {
			pterm.Error.WithWriter(r.out).Println(err)
		}

		return false
	}

	slog.Debug("applying command", slog.String("kind", string(cmd.Kind)))

	switch cmd.Kind {
	case command.Start:
		r.ctrl.Start()
	case command.Stop:
		r.ctrl.Stop()
	case command.Toggle:
		r.ctrl.Toggle()
	case command.Reset:
		r.ctrl.Reset()
	case command.Interval:
		err = r.ctrl.SelectInterval(cmd.Interval)
	case command.Context:
		err = r.ctrl.SelectContext(cmd.Context)
	case command.Status:
		r.printStatus()
	case command.Help:
		pterm.Fprintln(r.out, command.Usage())
	case command.Quit:
		return true
	}

	if err != nil {
		pterm.Error.WithWriter(r.out).Println(err)
	}

	return false
}

func (r *runner) handleEvent(e session.Event) {
	switch e.Type {
	case session.EventTitleChanged:
		r.printTitle()
	case session.EventProgressChanged:
		slog.Debug(
			"progress changed",
			slog.Int("value", e.Progress.Value),
			slog.Int("max", e.Progress.Max),
			slog.String("phase", string(e.Progress.Phase)),
		)
	}

	r.writeSink()
}

func (r *runner) printTitle() {
	title := r.ctrl.Title()
	if r.color {
		title = ui.Phase(r.ctrl.Progress().Phase, title)
	}

	pterm.Fprintln(r.out, title)
}

func (r *runner) printStatus() {
	p := r.ctrl.Progress()

	state := "stopped"
	if r.ctrl.Running() {
		state = "running"
	}

	pterm.Fprintln(r.out, fmt.Sprintf(
		"%s [%s] interval=%s context=%s progress=%d/%d (%s)",
		r.ctrl.Title(),
		state,
		r.ctrl.Interval(),
		r.ctrl.Context(),
		p.Value,
		p.Max,
		p.Phase,
	))
}

func (r *runner) writeSink() {
	if err := r.sink.Title(r.ctrl.Title()); err != nil {
		slog.Warn("unable to set window title", slog.Any("error", err))
	}

	if err := r.sink.Progress(r.ctrl.Progress()); err != nil {
		slog.Warn("unable to set taskbar progress", slog.Any("error", err))
	}
}
