package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/tally/internal/progress"
)

const (
	padding  = 2
	maxWidth = 60

	pausedColor  = "#F0C808"
	stoppedColor = "#E23E57"
)

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	active    lipgloss.Style
	running   string
}

func newStyles(color string, darkTheme bool) styles {
	text := lipgloss.Color("#1E1E1E")
	hint := lipgloss.Color("#5C5C5C")

	if darkTheme {
		text = lipgloss.Color("#FFFFFF")
		hint = lipgloss.Color("#9B9B9B")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)),
		secondary: lipgloss.NewStyle().Foreground(text),
		hint:      lipgloss.NewStyle().Foreground(hint),
		active: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color)).
			Underline(true),
		running: color,
	}
}

// phaseColor returns the progress bar fill for p.
func (s styles) phaseColor(p progress.Phase) string {
	switch p {
	case progress.Paused:
		return pausedColor
	case progress.Stopped:
		return stoppedColor
	default:
		return s.running
	}
}
