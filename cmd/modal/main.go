// Package main is the entry point for the modal command, which drives the
// modal key engine from the command line.
package main

import (
	"fmt"
	"os"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd(os.Stdout, os.Stderr)
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
