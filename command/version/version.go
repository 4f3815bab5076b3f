package version

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/pytokenator/josekeys/config"
)

// Command prints out the current version of the tool
func Command(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", config.Version())
	fmt.Fprintf(c.App.Writer, "Release Date: %s\n", config.ReleaseDate())
	return nil
}
