// Package timeutil provides utility functions for working with second counts
// and clock components.
package timeutil

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
	SecondsInAnHour  = secondsInAMinute * minutesInAnHour
)

// SecsToClock splits a seconds value into hours, minutes and seconds. Hours
// are not wrapped at 24.
func SecsToClock(val int) (hrs, mins, secs int) {
	if val < 0 {
		val = 0
	}

	hrs = val / SecondsInAnHour
	mins = (val % SecondsInAnHour) / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// Percent returns floor(100 * part / whole). It is not clamped, so a part
// larger than whole yields more than 100. A zero whole yields 0.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}

	return 100 * part / whole
}
