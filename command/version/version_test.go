package version

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/pytokenator/josekeys/config"
)

func TestCommand(t *testing.T) {
	var buf bytes.Buffer
	app := &cli.App{Writer: &buf}
	ctx := cli.NewContext(app, flag.NewFlagSet("test", 0), nil)

	require.NoError(t, Command(ctx))
	require.Contains(t, buf.String(), config.Version()+"\n")
	require.Contains(t, buf.String(), "Release Date: ")
}
