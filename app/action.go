package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tally/internal/config"
	"github.com/ayoisaiah/tally/internal/headless"
	"github.com/ayoisaiah/tally/internal/osutil"
	"github.com/ayoisaiah/tally/internal/pathutil"
	"github.com/ayoisaiah/tally/internal/ticker"
	"github.com/ayoisaiah/tally/internal/ui"
	"github.com/ayoisaiah/tally/report"
	"github.com/ayoisaiah/tally/timer"
)

const (
	envNoColor      = "NO_COLOR"
	envTallyNoColor = "TALLY_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig builds the configuration from the config file and the
// command-line flags. The first-run prompt is only offered on a terminal.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	opts := []config.Option{}

	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		opts = append(opts, config.WithPromptConfig(configPath, ctx.Bool("prompt")))
	}

	opts = append(opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	return config.New(opts...)
}

// editConfigAction handles the edit-config command which opens the tally
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.Runtime.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// listAction handles the list command and prints the available intervals and
// contexts.
func listAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	report.Selections(os.Stdout, cfg.Interval(), cfg.Context())

	return nil
}

// defaultAction runs a session in the terminal UI, or in plain mode when
// --plain is set.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, closer := newLogger(cfg.Log)
	defer closer.Close()

	slog.SetDefault(logger)

	slog.InfoContext(
		ctx.Context,
		"starting tally",
		slog.String("config", cfg.String()),
		slog.Bool("plain", cfg.Runtime.Plain),
	)

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.Runtime.Plain {
		return runPlain(ctx.Context, cfg)
	}

	return runTUI(cfg)
}

func runTUI(cfg *config.Config) error {
	sink := newSink(os.Stderr, cfg, false)

	t, err := timer.New(timer.Options{
		Sink:        sink,
		Color:       cfg.Display.Color,
		Interval:    cfg.Interval(),
		Context:     cfg.Context(),
		AutoStart:   cfg.Session.AutoStart,
		DarkTheme:   cfg.Display.DarkTheme,
		WindowTitle: cfg.Display.WindowTitle,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(t)

	_, err = p.Run()

	if clearErr := sink.Clear(); clearErr != nil {
		slog.Warn("unable to clear taskbar progress", slog.Any("error", clearErr))
	}

	return err
}

func runPlain(parent context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return headless.Run(ctx, headless.Options{
		Source:    ticker.New(),
		In:        os.Stdin,
		Out:       os.Stdout,
		Sink:      newSink(os.Stdout, cfg, true),
		Interval:  cfg.Interval(),
		Context:   cfg.Context(),
		AutoStart: cfg.Session.AutoStart,
	})
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/tally/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TALLY_NO_COLOR is set
	if _, exists := os.LookupEnv(envTallyNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting tally")

	return nil
}
