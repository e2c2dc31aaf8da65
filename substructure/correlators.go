// SPDX-License-Identifier: MIT

package substructure

import (
	"github.com/katalvlaran/jetobsmc/jet"
	"github.com/katalvlaran/jetobsmc/kinematics"
)

// E2 returns Σ_{i<j} pTᵢ·pTⱼ·ΔR_ij, 0 for fewer than 2 constituents.
func E2(j *jet.Jet) float64 {
	if j.Len() < 2 {
		return 0
	}

	return e2(j.ConstituentPts(), kinematics.PairwiseDeltaR(j))
}

// E3 returns Σ_{i<j<k} pTᵢ·pTⱼ·pTₖ·ΔR_ij·ΔR_ik·ΔR_jk, 0 for fewer than 3
// constituents. Every unordered triple is visited exactly once.
func E3(j *jet.Jet) float64 {
	if j.Len() < 3 {
		return 0
	}

	return e3(j.ConstituentPts(), kinematics.PairwiseDeltaR(j))
}

// Correlators returns E2 and E3 computed from one shared ΔR table.
func Correlators(j *jet.Jet) (e2v, e3v float64) {
	if j.Len() < 2 {
		return 0, 0
	}
	pts := j.ConstituentPts()
	dr := kinematics.PairwiseDeltaR(j)
	e2v = e2(pts, dr)
	if j.Len() >= 3 {
		e3v = e3(pts, dr)
	}

	return e2v, e3v
}

// C2 returns e3/e2², 0 when e2 ≤ 0.
func C2(j *jet.Jet) float64 {
	e2v, e3v := Correlators(j)
	if e2v <= 0 {
		return 0
	}

	return e3v / (e2v * e2v)
}

// D2 returns e3/e2³, 0 when e2 ≤ 0.
func D2(j *jet.Jet) float64 {
	e2v, e3v := Correlators(j)
	if e2v <= 0 {
		return 0
	}

	return e3v / (e2v * e2v * e2v)
}

func e2(pts []float64, dr *kinematics.DeltaRMatrix) float64 {
	n := len(pts)
	var total float64
	var a, b int
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			total += pts[a] * pts[b] * dr.At(a, b)
		}
	}

	return total
}

// e3 enumerates i<j<k explicitly; the pair weight pTᵢ·pTⱼ·ΔR_ij is hoisted
// out of the innermost loop.
func e3(pts []float64, dr *kinematics.DeltaRMatrix) float64 {
	n := len(pts)
	var total, wij float64
	var a, b, c int
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			wij = pts[a] * pts[b] * dr.At(a, b)
			for c = b + 1; c < n; c++ {
				total += wij * pts[c] * dr.At(a, c) * dr.At(b, c)
			}
		}
	}

	return total
}
