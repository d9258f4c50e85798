package ticker

import (
	"testing"
	"time"
)

const period = 5 * time.Millisecond

func receive(t *testing.T, tk *Ticker) Tick {
	t.Helper()

	select {
	case tick := <-tk.C():
		return tick
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a tick")
	}

	return Tick{}
}

func TestTickerDeliversTicks(t *testing.T) {
	tk := New()

	tk.Start(period)
	defer tk.Stop()

	for range 3 {
		tick := receive(t, tk)
		if !tk.Accept(tick) {
			t.Fatalf("expected tick from the current run to be accepted: %+v", tick)
		}
	}
}

func TestTickerStartIsIdempotent(t *testing.T) {
	tk := New()

	tk.Start(period)
	tk.Start(period)
	defer tk.Stop()

	if tk.gen != 1 {
		t.Fatalf("expected a single run, but got %d", tk.gen)
	}
}

func TestTickerRejectsStaleTicks(t *testing.T) {
	tk := New()

	tk.Start(period)
	first := receive(t, tk)
	tk.Stop()

	if tk.Accept(first) {
		t.Fatal("ticks must not be accepted after Stop")
	}

	tk.Stop()

	tk.Start(period)
	defer tk.Stop()

	if tk.Accept(first) {
		t.Fatal("ticks from a previous run must not be accepted")
	}

	for {
		tick := receive(t, tk)
		if tick.Gen == first.Gen {
			continue
		}

		if !tk.Accept(tick) {
			t.Fatalf("expected tick from the second run to be accepted: %+v", tick)
		}

		break
	}
}
