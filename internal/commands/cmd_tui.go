package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/contactform/internal/tui"
	"github.com/colonyops/contactform/pkg/iojson"
)

type TuiCmd struct {
	flags       *Flags
	build       tui.BuildInfo
	printResult bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		build: build,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "print-result",
			Usage:       "print the last accepted submission as JSON on exit",
			Sources:     cli.EnvVars("CONTACTFORM_PRINT_RESULT"),
			Destination: &cmd.printResult,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg, err := cmd.flags.LoadConfig()
	if err != nil {
		return err
	}

	m := tui.New(tui.Opts{Config: cfg, BuildInfo: cmd.build})
	log.Info().Str("form_id", m.FormID()).Msg("starting contact form")

	finalModel, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	model, ok := finalModel.(tui.Model)
	if !ok {
		return fmt.Errorf("run tui: unexpected model %T", finalModel)
	}

	snapshot := model.Form().Snapshot()
	log.Info().
		Str("form_id", model.FormID()).
		Bool("submitted", snapshot != nil).
		Msg("contact form closed")

	if cmd.printResult && snapshot != nil {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, snapshot)
	}
	return nil
}
