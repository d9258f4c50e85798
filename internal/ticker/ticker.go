// Package ticker provides a goroutine-backed tick source for hosts without an
// event loop of their own. Ticks are delivered over a channel so the host can
// apply them on the goroutine that owns the session.
package ticker

import (
	"sync"
	"time"
)

// Tick is a single period elapsing. Gen identifies the Start call that
// produced it.
type Tick struct {
	At  time.Time
	Gen uint64
}

// Ticker emits a Tick on C every period between Start and Stop.
type Ticker struct {
	c       chan Tick
	stop    chan struct{}
	gen     uint64
	mu      sync.Mutex
	running bool
}

// New returns a stopped Ticker.
func New() *Ticker {
	return &Ticker{
		c: make(chan Tick, 1),
	}
}

// C returns the channel ticks are delivered on.
func (t *Ticker) C() <-chan Tick {
	return t.c
}

// Start begins emitting ticks every period. It does nothing if the ticker is
// already running.
func (t *Ticker) Start(period time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}

	t.running = true
	t.gen++
	t.stop = make(chan struct{})

	go t.run(period, t.gen, t.stop)
}

func (t *Ticker) run(period time.Duration, gen uint64, stop <-chan struct{}) {
	tk := time.NewTicker(period)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-tk.C:
			select {
			case t.c <- Tick{Gen: gen, At: now}:
			case <-stop:
				return
			}
		}
	}
}

// Stop halts tick emission. It does nothing if the ticker is not running.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	t.running = false
	close(t.stop)
}

// Accept reports whether tick belongs to the current run. A tick that was
// already buffered when Stop was called is stale and must be dropped.
func (t *Ticker) Accept(tick Tick) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running && tick.Gen == t.gen
}
