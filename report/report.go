// Package report prints command output and errors to the console.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/osutil"
	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/internal/ui"
)

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}

// Selections prints the intervals and contexts a session can use, marking
// the configured defaults.
func Selections(w io.Writer, interval session.Interval, context session.Context) {
	intervals := [][]string{{"#", "INTERVAL", "TAG", "SECONDS", "DEFAULT"}}

	for i, v := range session.Intervals() {
		intervals = append(intervals, []string{
			fmt.Sprintf("%d", i),
			v.Label(),
			v.String(),
			fmt.Sprintf("%d", v.Seconds()),
			marker(v == interval),
		})
	}

	contexts := [][]string{{"#", "CONTEXT", "NAME", "DEFAULT"}}

	for i, v := range session.Contexts() {
		contexts = append(contexts, []string{
			fmt.Sprintf("%d", i),
			v.Label(),
			v.String(),
			marker(v == context),
		})
	}

	ui.PrintTable(intervals, w)
	ui.PrintTable(contexts, w)
}

func marker(ok bool) string {
	if ok {
		return ui.Green("*")
	}

	return ""
}
