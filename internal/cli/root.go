// Package cli implements the dsakit command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsakit/internal/config"
	"github.com/katalvlaran/dsakit/internal/logging"
)

// options carries the resolved global settings to subcommands.
type options struct {
	configFile string
	conf       config.Config
	logger     *slog.Logger
}

// NewRootCommand builds the dsakit command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &options{conf: config.Default()}

	root := &cobra.Command{
		Use:   "dsakit",
		Short: "Run classic data structures and algorithms from the command line",
		Long: `dsakit drives the library packages: build a linked list and index into it,
quicksort numbers, solve two-sum, or group anagrams.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "Optional YAML config file")
	pf.String("log-level", opts.conf.LogLevel, "Log level: debug, info, warn, error")
	pf.BoolP("log-json", "j", opts.conf.LogJSON, "Print logs in JSON format")
	pf.StringP("output", "o", opts.conf.Output, "Result format: text or yaml")

	root.AddCommand(
		newListCommand(opts),
		newSortCommand(opts),
		newTwoSumCommand(opts),
		newAnagramsCommand(opts),
	)

	return root
}

// load resolves configuration and the logger before any subcommand runs.
func (o *options) load(cmd *cobra.Command, _ []string) error {
	conf, err := config.Load(cmd.Flags(), o.configFile)
	if err != nil {
		return err
	}
	o.conf = conf

	level, err := logging.ParseLogLevel(conf.LogLevel)
	o.logger = logging.NewLogger(cmd.ErrOrStderr(), level, conf.LogJSON)
	if err != nil {
		o.logger.Warn("Invalid log level", slog.String("log-level", conf.LogLevel), slog.Any("error", err))
	}
	o.logger.Debug("Configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("output", conf.Output),
	)

	return nil
}
