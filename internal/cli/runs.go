// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/jetobsmc/store"
)

// RunsOptions holds flags for the runs commands.
type RunsOptions struct {
	*RootOptions
	DBPath string
	Format string
}

// NewRunsCommand creates the runs command and its delete subcommand.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List runs in the results store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "SQLite store (default from config)")
	cmd.Flags().StringVar(&opts.Format, "format", FormatTable, "output format: table, json")

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a run and its values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("run %q: %w", args[0], err)
			}
			return withStore(cmd, opts, func(ctx context.Context, st *store.Store) error {
				if err := st.DeleteRun(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
				return nil
			})
		},
	})

	return cmd
}

func withStore(cmd *cobra.Command, opts *RunsOptions, fn func(context.Context, *store.Store) error) error {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = opts.Config.DB.Path
	}
	if dbPath == "" {
		return errors.New("no store: pass --db or set db.path in the config")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(ctx, dbPath, store.WithLogger(opts.Logger))
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(ctx, st)
}

func runRuns(cmd *cobra.Command, opts *RunsOptions) error {
	if err := checkFormat(opts.Format, FormatTable, FormatJSON); err != nil {
		return err
	}

	return withStore(cmd, opts, func(ctx context.Context, st *store.Store) error {
		runs, err := st.Runs(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if opts.Format == FormatJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(runs)
		}

		tw := newTabWriter(out)
		fmt.Fprintln(tw, "ID\tLABEL\tSOURCE\tJETS\tCREATED")
		for _, r := range runs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
				r.ID, r.Label, r.Source, r.Jets, r.CreatedAt.Format(time.RFC3339))
		}

		return tw.Flush()
	})
}
