package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndicatorPhases(t *testing.T) {
	var i Indicator

	assert.Equal(t, Hidden, i.State().Phase)

	i.Show()
	assert.Equal(t, Running, i.State().Phase)

	i.SetPaused(true)
	assert.Equal(t, Paused, i.State().Phase)

	i.Stop()
	assert.Equal(t, Stopped, i.State().Phase)
	assert.False(t, i.IsPaused(), "stopping clears the paused flag")

	i.SetPaused(true)
	assert.Equal(t, Stopped, i.State().Phase, "pausing a stopped indicator has no effect")

	i.Resume()
	assert.Equal(t, Running, i.State().Phase)

	i.Hide()
	assert.Equal(t, Hidden, i.State().Phase)
}

func TestIndicatorValueIsClamped(t *testing.T) {
	var i Indicator

	i.SetMaximum(5)

	i.SetValue(3)
	assert.Equal(t, 3, i.Value())

	i.SetValue(6)
	assert.Equal(t, 5, i.Value())

	i.SetValue(-1)
	assert.Equal(t, 0, i.Value())

	i.SetValue(5)
	i.SetMaximum(2)
	assert.Equal(t, 2, i.Value(), "lowering the maximum re-clamps the value")
}

func TestStatePercent(t *testing.T) {
	assert.InDelta(t, 0.5, State{Value: 450, Max: 900}.Percent(), 1e-9)
	assert.Zero(t, State{Value: 3}.Percent())
	assert.InDelta(t, 1.0, State{Value: 5, Max: 5}.Percent(), 1e-9)
}
