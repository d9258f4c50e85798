package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/tally/internal/session"
)

const asciiLogo = `
████████╗ █████╗ ██╗     ██╗  ██╗   ██╗
╚══██╔══╝██╔══██╗██║     ██║  ╚██╗ ██╔╝
   ██║   ███████║██║     ██║   ╚████╔╝
   ██║   ██╔══██║██║     ██║    ╚██╔╝
   ██║   ██║  ██║███████╗███████╗██║
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Interval session.Interval
	Context  session.Context
}

// WithPromptConfig returns an Option that asks for the default interval and
// context. The prompt runs when the config file does not exist yet, or
// whenever force is set.
func WithPromptConfig(configPath string, force bool) Option {
	return func(c *Config) error {
		if !force {
			_, err := os.Stat(configPath)
			if err == nil || !errors.Is(err, os.ErrNotExist) {
				return err
			}
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Tally.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'tally edit-config' to change any settings.`, " ").
		Render()

	intervals := make([]huh.Option[session.Interval], 0, len(session.Intervals()))
	for _, i := range session.Intervals() {
		intervals = append(intervals, huh.NewOption(i.Label(), i))
	}

	contexts := make([]huh.Option[session.Context], 0, len(session.Contexts()))
	for _, ctx := range session.Contexts() {
		contexts = append(contexts, huh.NewOption(ctx.Label(), ctx))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[session.Interval]().
				Title("Default progress interval").
				Options(intervals...).
				Value(&opts.Interval),
		),
		huh.NewGroup(
			huh.NewSelect[session.Context]().
				Title("Default context").
				Options(contexts...).
				Value(&opts.Context),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Session.Interval = opts.Interval.String()
	c.Session.Context = opts.Context.String()
	c.Runtime.prompted = true

	return nil
}
