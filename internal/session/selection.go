package session

import (
	"strconv"
	"strings"
)

// Interval identifies one of the fixed session thresholds. The zero value is
// IntervalNone.
type Interval int

const (
	IntervalNone Interval = iota
	Interval5s
	Interval15m
	Interval30m
	Interval60m
)

type intervalInfo struct {
	label   string
	tag     string
	seconds int
}

// intervals is indexed by Interval.
var intervals = [...]intervalInfo{
	{seconds: 0, label: "None", tag: ""},
	{seconds: 5, label: "5 secs.", tag: "5s"},
	{seconds: 15 * 60, label: "15 mins.", tag: "15m"},
	{seconds: 30 * 60, label: "30 mins.", tag: "30m"},
	{seconds: 60 * 60, label: "60 mins.", tag: "60m"},
}

// Intervals returns every interval in display order.
func Intervals() []Interval {
	all := make([]Interval, len(intervals))
	for i := range intervals {
		all[i] = Interval(i)
	}

	return all
}

// Valid reports whether i is one of the defined intervals.
func (i Interval) Valid() bool {
	return i >= 0 && int(i) < len(intervals)
}

// IsNone reports whether i is the "no threshold" interval.
func (i Interval) IsNone() bool {
	return i == IntervalNone
}

// Seconds returns the threshold in seconds. IntervalNone has no threshold and
// returns 0.
func (i Interval) Seconds() int {
	if !i.Valid() {
		return 0
	}

	return intervals[i].seconds
}

// Label is the text shown on the interval's selector.
func (i Interval) Label() string {
	if !i.Valid() {
		return ""
	}

	return intervals[i].label
}

// Tag is the short form used in the title, e.g. "15m".
func (i Interval) Tag() string {
	if !i.Valid() {
		return ""
	}

	return intervals[i].tag
}

func (i Interval) String() string {
	if i.IsNone() {
		return "none"
	}

	return i.Tag()
}

// ParseInterval looks up an interval by its tag ("15m"), its label
// ("15 mins."), its index ("2") or "none". Matching is case-insensitive.
func ParseInterval(s string) (Interval, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	if v == "" || v == "none" {
		return IntervalNone, nil
	}

	for i, info := range intervals {
		if v == info.tag || v == strings.ToLower(info.label) {
			return Interval(i), nil
		}
	}

	if n, err := strconv.Atoi(v); err == nil && Interval(n).Valid() {
		return Interval(n), nil
	}

	return IntervalNone, ErrInvalidSelection.Fmt("interval", s)
}

// Context identifies the optional label attached to a session. The zero value
// is ContextNone.
type Context int

const (
	ContextNone Context = iota
	ContextWork
	ContextPlay
)

// contexts is indexed by Context.
var contexts = [...]string{"", "work", "play"}

// Contexts returns every context in display order.
func Contexts() []Context {
	all := make([]Context, len(contexts))
	for i := range contexts {
		all[i] = Context(i)
	}

	return all
}

// Valid reports whether c is one of the defined contexts.
func (c Context) Valid() bool {
	return c >= 0 && int(c) < len(contexts)
}

// IsNone reports whether c is the absent context.
func (c Context) IsNone() bool {
	return c == ContextNone
}

// Name is the lowercase context name. It is empty for ContextNone.
func (c Context) Name() string {
	if !c.Valid() {
		return ""
	}

	return contexts[c]
}

// Label is the capitalised name shown on selectors and in the title.
// ContextNone is labelled "None" but never appears in a title.
func (c Context) Label() string {
	name := c.Name()
	if name == "" {
		return "None"
	}

	return strings.ToUpper(name[:1]) + name[1:]
}

func (c Context) String() string {
	if c.IsNone() {
		return "none"
	}

	return c.Name()
}

// ParseContext looks up a context by name ("work"), index ("1") or "none".
// Matching is case-insensitive.
func ParseContext(s string) (Context, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	if v == "" || v == "none" {
		return ContextNone, nil
	}

	for i, name := range contexts {
		if i > 0 && v == name {
			return Context(i), nil
		}
	}

	if n, err := strconv.Atoi(v); err == nil && Context(n).Valid() {
		return Context(n), nil
	}

	return ContextNone, ErrInvalidSelection.Fmt("context", s)
}
