package main

import (
	"os"

	"github.com/ironsheep/oklabby/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	err := cli.Execute(cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
