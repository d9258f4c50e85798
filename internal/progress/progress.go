// Package progress models a host-shell taskbar progress control: a bar that
// can be shown or hidden, and that is either running, paused, or stopped.
package progress

// Phase is the visible state of the indicator.
type Phase string

const (
	Hidden  Phase = "hidden"
	Running Phase = "running"
	Paused  Phase = "paused"
	Stopped Phase = "stopped"
)

// State is the triple a presentation layer needs to draw the indicator.
type State struct {
	Phase Phase `json:"phase"`
	Value int   `json:"value"`
	Max   int   `json:"max"`
}

// Percent returns Value as a fraction of Max in the range [0, 1].
func (s State) Percent() float64 {
	if s.Max <= 0 {
		return 0
	}

	return float64(s.Value) / float64(s.Max)
}

// Indicator holds the state of a progress control. The zero value is a hidden,
// running indicator with no maximum.
type Indicator struct {
	value   int
	max     int
	visible bool
	paused  bool
	stopped bool
}

func (i *Indicator) Show() {
	i.visible = true
}

func (i *Indicator) Hide() {
	i.visible = false
}

// Visible reports whether the indicator is shown.
func (i *Indicator) Visible() bool {
	return i.visible
}

// SetMaximum sets the upper bound and re-clamps the current value.
func (i *Indicator) SetMaximum(v int) {
	if v < 0 {
		v = 0
	}

	i.max = v
	i.SetValue(i.value)
}

// Maximum returns the upper bound.
func (i *Indicator) Maximum() int {
	return i.max
}

// SetValue sets the current value, clamped to [0, Maximum()].
func (i *Indicator) SetValue(v int) {
	i.value = min(max(v, 0), i.max)
}

// Value returns the current value.
func (i *Indicator) Value() int {
	return i.value
}

// SetPaused pauses or unpauses the indicator. It has no effect while the
// indicator is stopped.
func (i *Indicator) SetPaused(paused bool) {
	if i.stopped {
		return
	}

	i.paused = paused
}

// IsPaused reports whether the indicator is paused.
func (i *Indicator) IsPaused() bool {
	return i.paused
}

// Resume clears both the paused and the stopped flags.
func (i *Indicator) Resume() {
	i.paused = false
	i.stopped = false
}

// Stop latches the indicator in the stopped phase until Resume is called.
func (i *Indicator) Stop() {
	i.paused = false
	i.stopped = true
}

// IsStopped reports whether the indicator is stopped.
func (i *Indicator) IsStopped() bool {
	return i.stopped
}

// State returns a snapshot of the indicator.
func (i *Indicator) State() State {
	s := State{
		Value: i.value,
		Max:   i.max,
		Phase: Running,
	}

	switch {
	case !i.visible:
		s.Phase = Hidden
	case i.stopped:
		s.Phase = Stopped
	case i.paused:
		s.Phase = Paused
	}

	return s
}
