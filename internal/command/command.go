// Package command parses the line-oriented commands accepted in headless mode.
package command

import (
	"strings"

	"github.com/ayoisaiah/tally/internal/apperr"
	"github.com/ayoisaiah/tally/internal/session"
)

// ErrEmpty is returned for a blank line.
var ErrEmpty = &apperr.Error{
	Message: "empty command",
}

var (
	errUnknownCommand = &apperr.Error{
		Message: "unknown command: %s (type 'help' for a list of commands)",
	}

	errMissingArgument = &apperr.Error{
		Message: "%s requires an argument",
	}

	errTooManyArguments = &apperr.Error{
		Message: "too many arguments for %s",
	}
)

// Kind identifies a command.
type Kind string

const (
	Start    Kind = "start"
	Stop     Kind = "stop"
	Toggle   Kind = "toggle"
	Reset    Kind = "reset"
	Interval Kind = "interval"
	Context  Kind = "context"
	Status   Kind = "status"
	Help     Kind = "help"
	Quit     Kind = "quit"
)

var aliases = map[string]Kind{
	"start":    Start,
	"s":        Start,
	"stop":     Stop,
	"x":        Stop,
	"toggle":   Toggle,
	"t":        Toggle,
	"reset":    Reset,
	"r":        Reset,
	"interval": Interval,
	"i":        Interval,
	"context":  Context,
	"c":        Context,
	"status":   Status,
	"help":     Help,
	"?":        Help,
	"quit":     Quit,
	"exit":     Quit,
	"q":        Quit,
}

// Command is a parsed line. Interval and Context are only meaningful for the
// matching Kind.
type Command struct {
	Kind     Kind
	Interval session.Interval
	Context  session.Context
}

// Parse reads a single command line such as "interval 15m" or "context work".
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	name := strings.ToLower(fields[0])

	kind, ok := aliases[name]
	if !ok {
		return Command{}, errUnknownCommand.Fmt(fields[0])
	}

	args := fields[1:]
	cmd := Command{Kind: kind}

	switch kind {
	case Interval, Context:
		if len(args) == 0 {
			return Command{}, errMissingArgument.Fmt(kind)
		}

		// interval labels such as "15 mins." contain a space
		arg := strings.Join(args, " ")

		var err error
		if kind == Interval {
			cmd.Interval, err = session.ParseInterval(arg)
		} else {
			if len(args) > 1 {
				return Command{}, errTooManyArguments.Fmt(kind)
			}

			cmd.Context, err = session.ParseContext(arg)
		}

		if err != nil {
			return Command{}, err
		}
	default:
		if len(args) > 0 {
			return Command{}, errTooManyArguments.Fmt(kind)
		}
	}

	return cmd, nil
}

// Usage describes the available commands.
func Usage() string {
	return strings.TrimSpace(`
start (s)              start the stopwatch
stop (x)               stop the stopwatch
toggle (t)             start or stop the stopwatch
reset (r)              reset the elapsed time to zero
interval (i) <name>    select an interval: none, 5s, 15m, 30m, 60m or 0-4
context (c) <name>     select a context: none, work, play or 0-2
status                 print the current title and progress
help (?)               show this help
quit (q)               exit`)
}
