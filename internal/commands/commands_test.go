package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

// testApp returns a root command that writes to buffers and never exits the
// process on cli.Exit errors.
func testApp(t *testing.T, register ...func(*cli.Command) *cli.Command) (*cli.Command, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := &cli.Command{
		Name:           "contactform",
		Writer:         &out,
		ErrWriter:      &errOut,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	for _, r := range register {
		app = r(app)
	}
	return app, &out
}
