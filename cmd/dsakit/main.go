package main

import (
	"log/slog"
	"os"

	"github.com/katalvlaran/dsakit/internal/cli"
	"github.com/katalvlaran/dsakit/internal/logging"
)

func main() {
	logging.ConfigureLogger(os.Stderr, logging.DefaultLogLevel, false)

	if err := cli.NewRootCommand().Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
