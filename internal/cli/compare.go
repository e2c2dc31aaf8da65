// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/jetobsmc/batch"
	"github.com/katalvlaran/jetobsmc/compare"
	"github.com/katalvlaran/jetobsmc/store"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	Observables []string
	Bins        int
	PlotDir     string
	Format      string
	Runs        bool
	DBPath      string
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare <sim> <ref>",
		Short: "Compare observable distributions of two datasets",
		Long: `Compare evaluates both datasets and reports, per observable, summary
statistics, the Kolmogorov-Smirnov distance and the chi-square distance of
normalized histograms. With --runs the arguments are run IDs in the store.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Observables, "observables", nil, "observables to compare (comma-separated)")
	cmd.Flags().IntVar(&opts.Bins, "bins", 0, "histogram bins (default from config)")
	cmd.Flags().StringVar(&opts.PlotDir, "plot-dir", "", "write one PNG histogram per observable here")
	cmd.Flags().StringVar(&opts.Format, "format", FormatTable, "output format: table, json")
	cmd.Flags().BoolVar(&opts.Runs, "runs", false, "treat <sim> and <ref> as stored run IDs")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "SQLite store for --runs (default from config)")

	return cmd
}

func runCompare(cmd *cobra.Command, simArg, refArg string, opts *CompareOptions) error {
	if err := checkFormat(opts.Format, FormatTable, FormatJSON); err != nil {
		return err
	}
	bins := opts.Bins
	if bins <= 0 {
		bins = opts.Config.Bins
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var sim, ref *batch.Table
	var err error
	if opts.Runs {
		sim, ref, err = loadRuns(ctx, opts, simArg, refArg)
	} else {
		if sim, err = evaluateFile(ctx, opts.RootOptions, simArg, opts.Observables, 0); err == nil {
			ref, err = evaluateFile(ctx, opts.RootOptions, refArg, opts.Observables, 0)
		}
	}
	if err != nil {
		return err
	}

	results, err := compare.Tables(sim, ref, bins)
	if err != nil {
		return err
	}
	for _, name := range compare.Shared(sim, ref) {
		if !slices.ContainsFunc(results, func(r compare.Result) bool { return r.Name == name }) {
			opts.Logger.Warn("observable skipped: no finite values", zap.String("observable", name))
		}
	}

	if opts.PlotDir != "" {
		if err := os.MkdirAll(opts.PlotDir, 0o755); err != nil {
			return err
		}
		for _, r := range results {
			path := filepath.Join(opts.PlotDir, r.Name+".png")
			if err := compare.WritePlot(r, path); err != nil {
				return err
			}
			opts.Logger.Debug("plot written", zap.String("path", path))
		}
	}

	out := cmd.OutOrStdout()
	if opts.Format == FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	tw := newTabWriter(out)
	fmt.Fprintln(tw, "NAME\tN_SIM\tN_REF\tMEAN_SIM\tMEAN_REF\tKS\tCHI2")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.6g\t%.6g\t%.4f\t%.4f\n",
			r.Name, r.Sim.N, r.Ref.N, r.Sim.Mean, r.Ref.Mean, r.KS, r.ChiSquare)
	}

	return tw.Flush()
}

// loadRuns reads two stored runs and narrows them to the requested observables.
func loadRuns(ctx context.Context, opts *CompareOptions, simID, refID string) (*batch.Table, *batch.Table, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = opts.Config.DB.Path
	}
	if dbPath == "" {
		return nil, nil, errors.New("--runs needs --db or db.path in the config")
	}

	st, err := store.Open(ctx, dbPath, store.WithLogger(opts.Logger))
	if err != nil {
		return nil, nil, err
	}
	defer st.Close()

	tables := make([]*batch.Table, 2)
	for i, arg := range []string{simID, refID} {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("run %q: %w", arg, err)
		}
		t, err := st.Table(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if tables[i], err = selectColumns(t, opts.Observables); err != nil {
			return nil, nil, err
		}
	}

	return tables[0], tables[1], nil
}

// selectColumns returns t restricted to names, or t itself when names is empty.
func selectColumns(t *batch.Table, names []string) (*batch.Table, error) {
	if len(names) == 0 {
		return t, nil
	}

	idx := make([]int, len(names))
	for c, n := range names {
		i, err := t.Index(n)
		if err != nil {
			return nil, err
		}
		idx[c] = i
	}

	out := &batch.Table{Names: names, Rows: make([][]float64, len(t.Rows))}
	for r, row := range t.Rows {
		out.Rows[r] = make([]float64, len(idx))
		for c, i := range idx {
			out.Rows[r][c] = row[i]
		}
	}

	return out, nil
}
