package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/progress"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Phase colours s according to the progress phase it describes.
func Phase(p progress.Phase, s string) string {
	switch p {
	case progress.Running:
		return Green(s)
	case progress.Paused:
		return Yellow(s)
	case progress.Stopped:
		return Red(s)
	default:
		return Highlight(s)
	}
}
