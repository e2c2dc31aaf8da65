// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"slices"
)

// Table holds one row per jet and one column per observable.
type Table struct {
	Names []string    `json:"names"`
	Rows  [][]float64 `json:"rows"`
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the column position of name.
func (t *Table) Index(name string) (int, error) {
	i := slices.Index(t.Names, name)
	if i < 0 {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}

	return i, nil
}

// Column returns a copy of the named column across all rows.
func (t *Table) Column(name string) ([]float64, error) {
	c, err := t.Index(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[c]
	}

	return out, nil
}
