// SPDX-License-Identifier: MIT

package canon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/jetobsmc/fourvec"
)

// Column layout of a detector row.
const (
	ColPt = iota
	ColRapidity
	ColPhi
	ColPID
	Columns // row width
)

// validateRows checks the N×4 shape.
func validateRows(op string, rows [][]float64) error {
	for i, row := range rows {
		if len(row) != Columns {
			return fmt.Errorf("%s: row %d has %d columns: %w", op, i, len(row), ErrShape)
		}
	}

	return nil
}

// isCanonical applies the canonical-row rule to one row.
func isCanonical(row []float64, atol float64) bool {
	nonZero := false
	for _, x := range row {
		if math.Abs(x) > atol {
			nonZero = true
			break
		}
	}

	return nonZero && row[ColPt] > atol && row[ColPID] != 0
}

// CanonicalMask reports, per row, whether it is a real constituent.
//
// Errors: ErrShape.
// Complexity: O(N).
func CanonicalMask(rows [][]float64, opts ...Option) ([]bool, error) {
	if err := validateRows("CanonicalMask", rows); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	mask := make([]bool, len(rows))
	for i, row := range rows {
		mask[i] = isCanonical(row, o.atol)
	}

	return mask, nil
}

// StripPadding returns the canonical rows (shared, not copied) in input order.
//
// Errors: ErrShape.
func StripPadding(rows [][]float64, opts ...Option) ([][]float64, error) {
	mask, err := CanonicalMask(rows, opts...)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, 0, len(rows))
	for i, keep := range mask {
		if keep {
			out = append(out, rows[i])
		}
	}

	return out, nil
}

// Multiplicity counts canonical rows.
//
// Errors: ErrShape.
func Multiplicity(rows [][]float64, opts ...Option) (int, error) {
	kept, err := StripPadding(rows, opts...)
	if err != nil {
		return 0, err
	}

	return len(kept), nil
}

// LeadingPt returns the largest pT among canonical rows, 0 if none.
//
// Errors: ErrShape.
func LeadingPt(rows [][]float64, opts ...Option) (float64, error) {
	kept, err := StripPadding(rows, opts...)
	if err != nil {
		return 0, err
	}
	lead := 0.0
	for i, row := range kept {
		if i == 0 || row[ColPt] > lead {
			lead = row[ColPt]
		}
	}

	return lead, nil
}

// ToFourMomenta converts detector rows into (E, px, py, pz) vectors.
//
// Implementation:
//   - Stage 1: validate shape.
//   - Stage 2: reject the massive mode.
//   - Stage 3: strip padding unless WithoutPaddingMask was given.
//   - Stage 4: massless conversion.
//
// Errors: ErrShape, ErrNotImplemented.
// Complexity: O(N).
func ToFourMomenta(rows [][]float64, opts ...Option) ([]fourvec.FourVector, error) {
	if err := validateRows("ToFourMomenta", rows); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	if !o.massless {
		return nil, fmt.Errorf("ToFourMomenta: %w", ErrNotImplemented)
	}

	kept := rows
	if o.applyMask {
		kept = make([][]float64, 0, len(rows))
		for _, row := range rows {
			if isCanonical(row, o.atol) {
				kept = append(kept, row)
			}
		}
	}

	out := make([]fourvec.FourVector, len(kept))
	for i, row := range kept {
		out[i] = Massless(row[ColPt], row[ColRapidity], row[ColPhi])
	}

	return out, nil
}

// Massless converts (pT, y, φ) of a massless particle into a four-vector.
func Massless(pt, y, phi float64) fourvec.FourVector {
	return fourvec.New(pt*math.Cosh(y), pt*math.Cos(phi), pt*math.Sin(phi), pt*math.Sinh(y))
}
