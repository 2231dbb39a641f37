package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/contactform/internal/tui"
)

func TestNewApp(t *testing.T) {
	app := NewApp(&Flags{}, tui.BuildInfo{Version: "v1.0.0", Commit: "abc1234", Date: "now"})

	assert.Equal(t, "contactform", app.Name)
	assert.Equal(t, "v1.0.0 (abc1234) now", app.Version)

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"submit", "config"}, names)
}

func TestNewApp_RejectsUnknownCommand(t *testing.T) {
	app := NewApp(&Flags{}, tui.BuildInfo{})
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := app.Run(context.Background(), []string{"contactform", "bogus"})
	require.ErrorContains(t, err, `unknown command "bogus"`)
}

func TestNewApp_BindsGlobalFlags(t *testing.T) {
	flags := &Flags{}
	var out bytes.Buffer

	app := NewApp(flags, tui.BuildInfo{})
	app.Writer = &out

	err := app.Run(context.Background(), []string{
		"contactform", "--log-level", "debug", "--config", "/tmp/none.yaml",
		"submit", "--first-name", "Ryann", "--last-name", "Dill", "--email", "ryan@ryan.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "debug", flags.LogLevel)
	assert.Equal(t, "/tmp/none.yaml", flags.ConfigPath)
	assert.Contains(t, out.String(), `"firstName": "Ryann"`)
}
