package config

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// version and buildTime are filled in during build by the Makefile
var (
	name      = "josekeys"
	buildTime = "N/A"
	commit    = "N/A"
)

// DebugEnv defines the name of the environment variable that enables the
// verbose error output.
const DebugEnv = "JOSEKEYS_DEBUG"

// Debug returns true if the environment variable JOSEKEYS_DEBUG is set to 1.
func Debug() bool {
	return os.Getenv(DebugEnv) == "1"
}

// Set updates the Version and ReleaseDate
func Set(n, v, t string) {
	name = n
	buildTime = t
	commit = v
}

// Name returns the name of the binary.
func Name() string {
	return name
}

// Version returns the current version of the binary
func Version() string {
	out := commit
	if commit == "N/A" {
		out = "0000000-dev"
	}

	return fmt.Sprintf("%s/%s (%s/%s)",
		name, out, runtime.GOOS, runtime.GOARCH)
}

// ReleaseDate returns the time of when the binary was built
func ReleaseDate() string {
	out := buildTime
	if buildTime == "N/A" {
		out = time.Now().UTC().Format("2006-01-02 15:04 MST")
	}

	return out
}
