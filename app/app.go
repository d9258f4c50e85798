package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tally/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the tally app instance.
func Get() *cli.App {
	tallyApp := &cli.App{
		Name: "tally",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Tally is a session stopwatch for the command-line. It counts the time
		spent on a task, and reports progress towards an optional interval in
		the window title and the terminal's taskbar.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "list",
				Usage:  "List the available intervals and contexts",
				Action: listAction,
			},
		},
		Flags: []cli.Flag{
			intervalFlag,
			contextFlag,
			startFlag,
			plainFlag,
			promptFlag,
			noColorFlag,
			noProgressFlag,
			noTitleFlag,
			logLevelFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return tallyApp
}
