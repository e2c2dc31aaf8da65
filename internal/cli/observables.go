// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jetobsmc/observable"
)

// ObservablesOptions holds flags for the observables command.
type ObservablesOptions struct {
	*RootOptions
	Category string
	Format   string
}

// NewObservablesCommand creates the observables command.
func NewObservablesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ObservablesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "observables",
		Short: "List the observable catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObservables(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "only list kinematic, shape or substructure observables")
	cmd.Flags().StringVar(&opts.Format, "format", FormatTable, "output format: table, json")

	return cmd
}

func runObservables(cmd *cobra.Command, opts *ObservablesOptions) error {
	if err := checkFormat(opts.Format, FormatTable, FormatJSON); err != nil {
		return err
	}

	reg := observable.New(observable.WithSoftDrop(opts.Config.SoftDrop))

	var list []observable.Metadata
	switch c := observable.Category(opts.Category); c {
	case "":
		for _, n := range reg.Names() {
			md, _ := reg.Metadata(n)
			list = append(list, md)
		}
	case observable.Kinematic, observable.Shape, observable.Substructure:
		list = reg.ByCategory(c)
	default:
		return fmt.Errorf("invalid category %q: must be kinematic, shape or substructure", opts.Category)
	}

	out := cmd.OutOrStdout()
	if opts.Format == FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	tw := newTabWriter(out)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tIRC_SAFE\tARITY\tCOMPLEXITY\tDESCRIPTION")
	for _, md := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			md.Name, md.Category, yesNo(md.IRCSafe), md.Arity, md.Complexity, md.Description)
	}

	return tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
