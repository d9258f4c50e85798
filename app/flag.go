package app

import "github.com/urfave/cli/v2"

var (
	intervalFlag = &cli.StringFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Usage:   "Progress interval: none, 5s, 15m, 30m, 60m, or its index in 'tally list'",
	}

	contextFlag = &cli.StringFlag{
		Name:    "context",
		Aliases: []string{"c"},
		Usage:   "Label the session with a context: none, work, or play",
	}

	startFlag = &cli.BoolFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Start counting immediately",
	}

	plainFlag = &cli.BoolFlag{
		Name:    "plain",
		Aliases: []string{"p"},
		Usage:   "Run without the terminal UI and read commands from standard input",
	}

	promptFlag = &cli.BoolFlag{
		Name:  "prompt",
		Usage: "Choose the default interval and context interactively",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	noProgressFlag = &cli.BoolFlag{
		Name:  "no-progress",
		Usage: "Do not report progress to the terminal's taskbar",
	}

	noTitleFlag = &cli.BoolFlag{
		Name:  "no-title",
		Usage: "Do not update the window title",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn, or error (default: info)",
	}
)
