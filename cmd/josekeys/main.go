package main

import (
	"os"

	"github.com/pytokenator/josekeys/config"
	"github.com/pytokenator/josekeys/internal/cmd"
)

// Version is set by an LDFLAG at build time representing the git tag or commit
// for the current release
var Version = "N/A"

// BuildTime is set by an LDFLAG at build time representing the timestamp at
// the time of build
var BuildTime = "N/A"

func init() {
	config.Set("josekeys", Version, BuildTime)
}

func main() {
	os.Exit(cmd.Run())
}
