// Package main is the entry point for the willflow CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/willflow/internal/app"
	"github.com/runoshun/willflow/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := app.DataDir()
	if err != nil {
		return runWithoutContainer(fmt.Errorf("failed to resolve data directory: %w", err))
	}

	container, err := app.New(dataDir)
	if err != nil {
		return runWithoutContainer(fmt.Errorf("failed to initialize: %w", err))
	}
	defer func() { _ = container.Close() }()

	return cli.NewRootCommand(container, version).Execute()
}

// runWithoutContainer keeps help and version working when the data
// directory or config is unusable. Every other command reports initErr.
func runWithoutContainer(initErr error) error {
	if !canRunWithoutContainer(os.Args[1:]) {
		return initErr
	}
	return cli.NewRootCommand(nil, version).Execute()
}

func canRunWithoutContainer(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		switch arg {
		case "--version", "-v", "--help", "-h":
			return true
		}
	}
	return false
}
