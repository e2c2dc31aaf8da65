// SPDX-License-Identifier: MIT
// Package: fourvec
//
// Purpose:
//   - Evaluate η, φ and pT over many vectors at once.
//   - Every batch function calls the same kernel as its scalar counterpart, so
//     EtaBatch(vs)[i] == vs[i].Eta() holds bit-for-bit, including the
//     signed-infinity policy.

package fourvec

import "fmt"

// FromRows converts an N×4 table in (E, px, py, pz) order into vectors.
//
// Errors:
//   - ErrShape (wrapped with the row index) if any row does not have exactly
//     4 columns.
//
// Complexity: O(N).
func FromRows(rows [][]float64) ([]FourVector, error) {
	out := make([]FourVector, len(rows))
	for i, row := range rows {
		if len(row) != Components {
			return nil, fmt.Errorf("FromRows: row %d: expected 4 columns, got %d: %w", i, len(row), ErrShape)
		}
		out[i] = FourVector{E: row[0], Px: row[1], Py: row[2], Pz: row[3]}
	}

	return out, nil
}

// EtaBatch returns the pseudorapidity of every vector.
func EtaBatch(vs []FourVector) []float64 {
	out := make([]float64, len(vs))
	for i := range vs {
		out[i] = etaOf(vs[i].Px, vs[i].Py, vs[i].Pz)
	}

	return out
}

// PhiBatch returns the azimuth of every vector.
func PhiBatch(vs []FourVector) []float64 {
	out := make([]float64, len(vs))
	for i := range vs {
		out[i] = vs[i].Phi()
	}

	return out
}

// PtBatch returns the transverse momentum of every vector.
func PtBatch(vs []FourVector) []float64 {
	out := make([]float64, len(vs))
	for i := range vs {
		out[i] = vs[i].Pt()
	}

	return out
}
