// Package main provides the entry point for the libris CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/libris/cmd/libris/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// Create app instance
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	// Execute with context
	err = application.Execute(ctx, os.Args[1:])

	// Release the data file lock before reporting the result
	if closeErr := application.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	app.ExitOnError(err)
}
