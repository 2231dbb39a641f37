package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/contactform/internal/core/contact"
	"github.com/colonyops/contactform/internal/core/logging"
	"github.com/colonyops/contactform/pkg/iojson"
)

// fieldFlags maps each contact field to its command line flag.
var fieldFlags = []struct {
	field contact.Field
	name  string
	usage string
}{
	{contact.FirstName, "first-name", "first name (at least 5 characters)"},
	{contact.LastName, "last-name", "last name"},
	{contact.Email, "email", "email address"},
	{contact.Message, "message", "optional message"},
}

type SubmitCmd struct {
	flags  *Flags
	fr     *iojson.FileReader[map[string]string]
	values map[contact.Field]*string
}

func NewSubmitCmd(flags *Flags) *SubmitCmd {
	values := make(map[contact.Field]*string, len(fieldFlags))
	for _, ff := range fieldFlags {
		values[ff.field] = new(string)
	}

	return &SubmitCmd{
		flags:  flags,
		fr:     &iojson.FileReader[map[string]string]{},
		values: values,
	}
}

func (cmd *SubmitCmd) Register(app *cli.Command) *cli.Command {
	flags := []cli.Flag{cmd.fr.Flag()}
	for _, ff := range fieldFlags {
		flags = append(flags, &cli.StringFlag{
			Name:        ff.name,
			Usage:       ff.usage,
			Destination: cmd.values[ff.field],
		})
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "submit",
		Usage: "Validate and submit the contact form without the interactive screen",
		UsageText: `contactform submit [options]

From flags:
  contactform submit --first-name Ryann --last-name Dill --email ryan@ryan.com

Read from stdin:
  echo '{"firstName":"Ryann","lastName":"Dill","email":"ryan@ryan.com"}' | contactform submit

Read from file:
  contactform submit -f contact.json`,
		Description: `Runs the same validation as the interactive form. Field flags take
precedence; when none are given the values are read as JSON from -f or stdin.

Input JSON schema (unknown keys are rejected):
  {
    "firstName": "required, at least 5 characters",
    "lastName":  "required",
    "email":     "required, local@domain.tld",
    "message":   "optional"
  }

On success the submission is printed as JSON. On failure the field errors
and a field to message map are printed as JSON and the command exits with
status 1.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *SubmitCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer
	ctx = logging.WithFormID(ctx, uuid.NewString())
	logger := logging.Component("submit")

	values, err := cmd.input(c)
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Msg("failed to read input")
		return writeFailure(c, fmt.Sprintf("read input: %s", err), nil)
	}

	form := contact.New()
	for _, f := range contact.Fields {
		if _, err := form.UpdateField(f, values.Get(f)); err != nil {
			return writeFailure(c, err.Error(), nil)
		}
	}

	if errs, ok := form.Submit(); !ok {
		err := errs.Err()
		logger.Info().Ctx(ctx).Err(err).Int("errors", errs.Len()).Msg("submit rejected")
		return writeFailure(c, "validation failed", map[string]any{
			"errors": errs,
			"fields": fieldMessages(err),
		})
	}

	logger.Info().Ctx(ctx).Msg("form submitted")
	return iojson.WriteWith(out, c.Root().ErrWriter, form.Snapshot())
}

// errNoInput is returned when neither field flags, -f nor piped JSON were
// given.
var errNoInput = errors.New("no input: pass field flags, -f <file>, or pipe JSON on stdin")

// input collects values from the field flags, or from JSON when no field
// flag was given. JSON keys must name form fields.
func (cmd *SubmitCmd) input(c *cli.Command) (contact.Values, error) {
	var (
		values    contact.Values
		fromFlags bool
	)

	for _, ff := range fieldFlags {
		if c.IsSet(ff.name) {
			fromFlags = true
			values = values.With(ff.field, *cmd.values[ff.field])
		}
	}
	if fromFlags {
		return values, nil
	}

	if !cmd.fr.Provided() {
		return values, errNoInput
	}

	doc, err := cmd.fr.Read()
	if err != nil {
		return values, err
	}

	for name, value := range doc {
		f, err := contact.ParseField(name)
		if err != nil {
			return values, err
		}
		values = values.With(f, value)
	}
	return values, nil
}

// fieldMessages maps each failing field to its message.
func fieldMessages(err error) map[string]string {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field] = fe.Err.Error()
	}
	return out
}

func writeFailure(c *cli.Command, msg string, data map[string]any) error {
	if err := iojson.WriteError(c.Root().Writer, msg, data); err != nil {
		return err
	}
	return cli.Exit("", 1)
}
