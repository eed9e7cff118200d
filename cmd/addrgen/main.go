// Package main is the entry point for the addrgen CLI.
package main

import (
	"os"

	"github.com/mrz1836/addrgen/internal/cli"
)

// Set via ldflags at build time.
//
//nolint:gochecknoglobals // linker-stamped build metadata
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	if err := cli.Execute(cli.BuildInfo{Version: version, Commit: commit, Date: date}); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
