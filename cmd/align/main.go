// Package main is the entry point for the align CLI.
//
// align folds standard input to a fixed column width and aligns the
// resulting lines left, right, centered or fully justified. All behaviour
// lives in internal/cli and internal/align; this file only wires build
// metadata and runs the root command.
package main

import (
	"github.com/shinji-kodama/align/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
