// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/jetobsmc/batch"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

func checkFormat(format string, allowed ...string) error {
	if !slices.Contains(allowed, format) {
		return fmt.Errorf("invalid format %q: must be one of %v", format, allowed)
	}

	return nil
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// finiteOrNil maps non-finite values to JSON null.
func finiteOrNil(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeTable renders t in format.
func writeTable(w io.Writer, t *batch.Table, format string) error {
	switch format {
	case FormatJSON:
		rows := make([][]any, len(t.Rows))
		for i, row := range t.Rows {
			rows[i] = make([]any, len(row))
			for c, v := range row {
				rows[i][c] = finiteOrNil(v)
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"names": t.Names, "rows": rows})

	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(append([]string{"jet"}, t.Names...)); err != nil {
			return err
		}
		rec := make([]string, len(t.Names)+1)
		for i, row := range t.Rows {
			rec[0] = strconv.Itoa(i)
			for c, v := range row {
				rec[c+1] = formatFloat(v)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	default:
		tw := newTabWriter(w)
		fmt.Fprintf(tw, "JET\t%s\n", strings.Join(t.Names, "\t"))
		for i, row := range t.Rows {
			cells := make([]string, len(row))
			for c, v := range row {
				cells[c] = strconv.FormatFloat(v, 'g', 6, 64)
			}
			fmt.Fprintf(tw, "%d\t%s\n", i, strings.Join(cells, "\t"))
		}
		return tw.Flush()
	}
}
