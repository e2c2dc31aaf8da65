// SPDX-License-Identifier: MIT
// Package: jet
//
// Purpose:
//   - Single source of truth for constituent-table shape checks.
//   - Return ErrShape tagged with the validator and the offending position so
//     call sites can wrap uniformly and callers match with errors.Is.
//
// Note:
//   - All checks are pure, allocate nothing and run before any conversion.

package jet

import (
	"fmt"

	"github.com/katalvlaran/jetobsmc/fourvec"
)

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows ensures every row has exactly four columns (E, px, py, pz).
// A nil or empty table is a valid 0×4 table.
//
// Errors: ErrShape naming the first bad row.
// Complexity: O(N).
func ValidateRows(rows [][]float64) error {
	for i, row := range rows {
		if len(row) != fourvec.Components {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d has %d columns", i, len(row)), ErrShape)
		}
	}

	return nil
}

// ValidateFlat ensures a row-major buffer describes an N×4 table:
// rows ≥ 0, cols == 4 and len(data) == rows*cols.
//
// Errors: ErrShape.
// Complexity: O(1).
func ValidateFlat(data []float64, rows, cols int) error {
	if rows < 0 || cols != fourvec.Components {
		return validatorErrorf(fmt.Sprintf("ValidateFlat: shape (%d, %d)", rows, cols), ErrShape)
	}
	if len(data) != rows*cols {
		return validatorErrorf(fmt.Sprintf("ValidateFlat: %d values for shape (%d, %d)", len(data), rows, cols), ErrShape)
	}

	return nil
}
