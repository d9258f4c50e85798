package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	start     key.Binding
	stop      key.Binding
	toggle    key.Binding
	reset     key.Binding
	interval  key.Binding
	noContext key.Binding
	work      key.Binding
	play      key.Binding
	help      key.Binding
	quit      key.Binding
}

var defaultKeymap = keymap{
	start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "start/stop"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	interval: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4"),
		key.WithHelp("0-4", "interval"),
	),
	noContext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "no context"),
	),
	work: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "work"),
	),
	play: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.reset, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.start, k.stop, k.toggle, k.reset},
		{k.interval, k.noContext, k.work, k.play},
		{k.help, k.quit},
	}
}
