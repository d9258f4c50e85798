// Package testutil provides fakes and helpers shared by tally's tests.
package testutil

import (
	"fmt"
	"io"
	"os"
	"time"
)

// ManualTicker is a tick source that records Start and Stop calls instead of
// scheduling anything. Tests advance time by calling Tick on the counter.
type ManualTicker struct {
	Period  time.Duration
	Starts  int
	Stops   int
	running bool
}

func (m *ManualTicker) Start(period time.Duration) {
	m.Starts++
	m.Period = period
	m.running = true
}

func (m *ManualTicker) Stop() {
	m.Stops++
	m.running = false
}

// Running reports whether Start was called more recently than Stop.
func (m *ManualTicker) Running() bool {
	return m.running
}

// Recorder collects the values handed to Record, typically from an event
// subscription.
type Recorder[T any] struct {
	Events []T
}

func (r *Recorder[T]) Record(v T) {
	r.Events = append(r.Events, v)
}

// Last returns the most recently recorded value, or the zero value.
func (r *Recorder[T]) Last() T {
	var zero T

	if len(r.Events) == 0 {
		return zero
	}

	return r.Events[len(r.Events)-1]
}

// Clear drops every recorded value.
func (r *Recorder[T]) Clear() {
	r.Events = nil
}

func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
