package timeutil

import "testing"

func TestSecsToClock(t *testing.T) {
	table := []struct {
		secs    int
		h, m, s       int
	}{
		{0, 0, 0, 0},
		{59, 0, 0, 59},
		{65, 0, 1, 5},
		{3599, 0, 59, 59},
		{3600, 1, 0, 0},
		{3725, 1, 2, 5},
		{90061, 25, 1, 1},
		{-4, 0, 0, 0},
	}

	for _, v := range table {
		h, m, s := SecsToClock(v.secs)
		if h != v.h || m != v.m || s != v.s {
			t.Errorf(
				"SecsToClock(%d): expected %d:%d:%d, but got %d:%d:%d",
				v.secs, v.h, v.m, v.s, h, m, s,
			)
		}
	}
}

func TestPercent(t *testing.T) {
	table := []struct {
		part, whole, want int
	}{
		{65, 900, 7},
		{0, 900, 0},
		{11, 5, 220},
		{5, 5, 100},
		{1799, 1800, 99},
		{10, 0, 0},
	}

	for _, v := range table {
		if got := Percent(v.part, v.whole); got != v.want {
			t.Errorf("Percent(%d, %d): expected %d, but got %d", v.part, v.whole, v.want, got)
		}
	}
}
