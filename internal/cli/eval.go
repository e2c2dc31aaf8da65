// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/jetobsmc/batch"
	"github.com/katalvlaran/jetobsmc/dataset"
	"github.com/katalvlaran/jetobsmc/observable"
	"github.com/katalvlaran/jetobsmc/store"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Observables []string
	Workers     int
	Format      string
	DBPath      string
	Label       string
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <dataset>",
		Short: "Evaluate observables on every jet of a dataset",
		Long: `Evaluate loads a JSON or YAML dataset, builds its jets and computes the
selected observables (all single-jet observables by default). With --db the
result table is also saved as a new run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Observables, "observables", nil, "observables to compute (comma-separated)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "parallel workers (default from config)")
	cmd.Flags().StringVar(&opts.Format, "format", FormatTable, "output format: table, json, csv")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "save the result to this SQLite store (default from config)")
	cmd.Flags().StringVar(&opts.Label, "label", "", "run label stored with --db")

	return cmd
}

func runEval(cmd *cobra.Command, path string, opts *EvalOptions) error {
	if err := checkFormat(opts.Format, FormatTable, FormatJSON, FormatCSV); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	t, err := evaluateFile(ctx, opts.RootOptions, path, opts.Observables, opts.Workers)
	if err != nil {
		return err
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = opts.Config.DB.Path
	}
	if dbPath != "" {
		if err := saveRun(ctx, opts.RootOptions, dbPath, opts.Label, path, t); err != nil {
			return err
		}
	}

	return writeTable(cmd.OutOrStdout(), t, opts.Format)
}

// evaluateFile loads path and evaluates names on its jets. Empty names and a
// non-positive worker count fall back to the configuration.
func evaluateFile(ctx context.Context, opts *RootOptions, path string, names []string, workers int) (*batch.Table, error) {
	d, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	jets, err := d.Build(opts.Config.CanonOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(names) == 0 {
		names = opts.Config.Observables
	}
	if workers <= 0 {
		workers = opts.Config.Workers
	}

	reg := observable.New(observable.WithSoftDrop(opts.Config.SoftDrop))
	t, err := batch.Evaluate(ctx, jets, reg, names,
		batch.WithWorkers(workers),
		batch.WithLogger(opts.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	opts.Logger.Info("dataset evaluated",
		zap.String("path", path),
		zap.String("dataset", d.Name),
		zap.Int("jets", t.Len()),
		zap.Int("observables", len(t.Names)),
	)

	return t, nil
}

func saveRun(ctx context.Context, opts *RootOptions, dbPath, label, source string, t *batch.Table) error {
	st, err := store.Open(ctx, dbPath, store.WithLogger(opts.Logger))
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.CreateRun(ctx, label, source)
	if err != nil {
		return err
	}
	if err := st.SaveTable(ctx, id, t); err != nil {
		return err
	}

	opts.Logger.Info("run saved", zap.String("run", id.String()), zap.String("db", dbPath))

	return nil
}
