package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/contactform/internal/core/config"
	"github.com/colonyops/contactform/internal/core/styles"
	"github.com/colonyops/contactform/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "contactform config validate [options]",
				Description: "Loads the configuration file and reports every invalid key.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// ConfigIssue is a single problem found in the config file. Field is empty
// when the file could not be read or parsed.
type ConfigIssue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type configReport struct {
	Path   string        `json:"path"`
	Valid  bool          `json:"valid"`
	Errors []ConfigIssue `json:"errors,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	_, err := config.Load(cmd.flags.ConfigPath)
	report := configReport{
		Path:   cmd.flags.ConfigPath,
		Valid:  err == nil,
		Errors: configIssues(err),
	}

	w := c.Root().Writer
	var writeErr error
	if cmd.format == "json" {
		writeErr = iojson.WriteWith(w, c.Root().ErrWriter, report)
	} else {
		writeErr = writeConfigText(w, report)
	}
	if writeErr != nil {
		return writeErr
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

// configIssues flattens a config load error into one issue per invalid
// field.
func configIssues(err error) []ConfigIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []ConfigIssue{{Message: err.Error()}}
	}

	issues := make([]ConfigIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, ConfigIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}

func writeConfigText(w io.Writer, report configReport) error {
	if report.Valid {
		_, err := fmt.Fprintln(w, styles.ResultTitleStyle.Render("Configuration is valid: ")+report.Path)
		return err
	}

	for _, issue := range report.Errors {
		line := issue.Message
		if issue.Field != "" {
			line = styles.TextPrimaryBoldStyle.Render(issue.Field) + ": " + issue.Message
		}
		if _, err := fmt.Fprintln(w, styles.FormErrorStyle.Render("✗ ")+line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%d error(s) found in %s\n", len(report.Errors), report.Path)
	return err
}
