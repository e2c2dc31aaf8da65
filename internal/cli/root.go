// SPDX-License-Identifier: MIT

// Package cli implements the jetobs command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/jetobsmc/internal/config"
	"github.com/katalvlaran/jetobsmc/internal/logging"
)

// RootOptions holds global flags and the state PersistentPreRunE resolves
// from them.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	Config *config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the jetobs root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "jetobs",
		Short: "Jet observables for Monte Carlo validation",
		Long: `jetobs evaluates kinematic, shape, substructure and groomed observables
of particle jets, compares simulated against reference distributions and
keeps evaluated runs in a SQLite store.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			level := cfg.Log.Level
			if opts.Verbose {
				level = zapcore.DebugLevel.String()
			}
			logger, err := logging.NewWithSink(level, cfg.Log.Format, zapcore.AddSync(cmd.ErrOrStderr()))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.Config, opts.Logger = cfg, logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: ./jetobs.yaml or ./config/jetobs.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewObservablesCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))

	return cmd
}
