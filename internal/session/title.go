package session

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/tally/internal/timeutil"
)

// Title composes the window title for a session, e.g.
// "Work (15m) | 01:05 (7%)". text is the formatted elapsed time and elapsed
// the same value in seconds. The percentage is not clamped at 100.
func Title(c Context, i Interval, text string, elapsed int) string {
	var b strings.Builder

	if !c.IsNone() {
		b.WriteString(c.Label())

		if !i.IsNone() {
			b.WriteString(" (" + i.Tag() + ")")
		}
	} else if !i.IsNone() {
		b.WriteString(i.Tag())
	}

	if !c.IsNone() || !i.IsNone() {
		b.WriteString(" | ")
	}

	b.WriteString(text)

	if !i.IsNone() {
		fmt.Fprintf(&b, " (%d%%)", timeutil.Percent(elapsed, i.Seconds()))
	}

	return b.String()
}
