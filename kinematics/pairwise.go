// SPDX-License-Identifier: MIT
// Package: kinematics
//
// Purpose:
//   - Hold ΔR_ij between every pair of constituents in a row-major flat
//     buffer so the O(N²)/O(N³) correlators read distances without
//     recomputing η/φ differences.
//
// Determinism & Performance:
//   - Filled once in a fixed i→j order over the strict upper triangle and
//     mirrored, so At(i, j) == At(j, i) bit-for-bit and the diagonal is 0.
//   - Memory O(N²).

package kinematics

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jetobsmc/fourvec"
	"github.com/katalvlaran/jetobsmc/jet"
)

// DeltaRMatrix is the symmetric N×N matrix of pairwise constituent ΔR.
type DeltaRMatrix struct {
	n    int       // number of constituents
	data []float64 // flat backing storage, length n*n
}

// PairwiseDeltaR builds the ΔR matrix of a jet's constituents.
//
// Implementation:
//   - Stage 1: read cached η, φ.
//   - Stage 2: fill the strict upper triangle, mirror into the lower one.
//
// Complexity: O(N²) time and memory.
func PairwiseDeltaR(j *jet.Jet) *DeltaRMatrix {
	etas := j.ConstituentEtas()
	phis := j.ConstituentPhis()
	n := len(etas)

	m := &DeltaRMatrix{n: n, data: make([]float64, n*n)}
	var i, k int
	var dr float64
	for i = 0; i < n; i++ {
		for k = i + 1; k < n; k++ {
			dr = fourvec.DeltaREtaPhi(etas[i], phis[i], etas[k], phis[k])
			m.data[i*n+k] = dr
			m.data[k*n+i] = dr
		}
	}

	return m
}

// Len returns N.
func (m *DeltaRMatrix) Len() int { return m.n }

// At returns ΔR_ij. Indices must lie in [0, Len()); At is on the hot path of
// the correlators and does not bounds-check beyond the slice itself.
func (m *DeltaRMatrix) At(i, j int) float64 { return m.data[i*m.n+j] }

// Row returns a copy of row i.
func (m *DeltaRMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("DeltaRMatrix.Row(%d): %w", i, jet.ErrOutOfRange)
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// String implements fmt.Stringer for debugging.
func (m *DeltaRMatrix) String() string {
	var sb strings.Builder
	var i, k int
	for i = 0; i < m.n; i++ {
		sb.WriteString("[")
		for k = 0; k < m.n; k++ {
			if k > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%.4g", m.data[i*m.n+k])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
