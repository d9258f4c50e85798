package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/command"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	plain := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("PLAIN MODE COMMANDS"),
		plainHelp(),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	website := fmt.Sprintf(
		"%s\n\t\thttps://github.com/ayoisaiah/tally\n",
		pterm.Yellow("WEBSITE"),
	)

	return description + usage + version + commands + options + plain + env + website
}

func plainHelp() string {
	return strings.ReplaceAll(command.Usage(), "\n", "\n\t\t")
}

func envHelp() string {
	return `
TALLY_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

TALLY_ENV: set to a name to keep a separate config file and log for that environment.`
}
