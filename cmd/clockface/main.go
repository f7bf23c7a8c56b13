// Package main provides the entry point for the clockface CLI.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/clockface/internal/cli"
)

// Set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // build metadata
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := cli.Execute(context.Background(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	os.Exit(cli.ExitCodeForError(err))
}
