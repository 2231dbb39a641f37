package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/contactform/internal/tui"
)

// NewApp builds the root command with every subcommand registered. The
// caller owns the Before/After hooks.
func NewApp(flags *Flags, build tui.BuildInfo) *cli.Command {
	app := &cli.Command{
		Name:      "contactform",
		Usage:     "Fill in and validate a contact form from the terminal",
		UsageText: "contactform [global options] command [command options]",
		Description: `contactform shows a contact form with live validation.

First name (at least 5 characters), last name and email are required; the
message is optional. A submit with any invalid field lists every error and
moves focus to the first one. An accepted submit shows what was sent.

Run 'contactform' with no arguments to open the interactive form.
Run 'contactform submit' to validate values from flags or JSON instead.`,
		Version: fmt.Sprintf("%s (%s) %s", build.Version, build.Commit, build.Date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CONTACTFORM_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("CONTACTFORM_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CONTACTFORM_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	tuiCmd := NewTuiCmd(flags, build)

	app = NewSubmitCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'contactform --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}
