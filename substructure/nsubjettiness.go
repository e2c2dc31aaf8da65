// SPDX-License-Identifier: MIT

package substructure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/jetobsmc/fourvec"
	"github.com/katalvlaran/jetobsmc/jet"
)

// TauN returns the top-k N-subjettiness proxy Σ pTᵢ·minₐ ΔR(i, a) where the
// axes a are the k hardest constituents.
//
// Returns 0 when the jet has fewer than k+1 constituents or Σ pT = 0.
//
// Errors: ErrAxisCount if k ≤ 0.
//
// Implementation:
//   - Stage 1: choose axes with jet.LeadingIndices(k).
//   - Stage 2: for each constituent take the smallest ΔR to any axis.
//   - Stage 3: accumulate pT-weighted minima in constituent order.
func TauN(j *jet.Jet, k int) (float64, error) {
	if k <= 0 {
		return 0, fmt.Errorf("TauN(k=%d): %w", k, ErrAxisCount)
	}
	n := j.Len()
	if n < k+1 {
		return 0, nil
	}
	pts := j.ConstituentPts()
	if floats.Sum(pts) == 0 {
		return 0, nil
	}

	etas := j.ConstituentEtas()
	phis := j.ConstituentPhis()
	axes := j.LeadingIndices(k)

	var total, best, dr float64
	for i := 0; i < n; i++ {
		best = math.Inf(1)
		for _, a := range axes {
			dr = fourvec.DeltaREtaPhi(etas[i], phis[i], etas[a], phis[a])
			if dr < best {
				best = dr
			}
		}
		total += pts[i] * best
	}

	return total, nil
}

// tau evaluates TauN for a fixed positive k.
func tau(j *jet.Jet, k int) float64 {
	v, _ := TauN(j, k)

	return v
}

// Tau1 is TauN with one axis.
func Tau1(j *jet.Jet) float64 { return tau(j, 1) }

// Tau2 is TauN with two axes.
func Tau2(j *jet.Jet) float64 { return tau(j, 2) }

// Tau3 is TauN with three axes.
func Tau3(j *jet.Jet) float64 { return tau(j, 3) }

// Tau21 returns τ2/τ1, 0 when τ1 ≤ 0.
func Tau21(j *jet.Jet) float64 {
	t1 := Tau1(j)
	if t1 <= 0 {
		return 0
	}

	return Tau2(j) / t1
}

// Tau32 returns τ3/τ2, 0 when τ2 ≤ 0.
func Tau32(j *jet.Jet) float64 {
	t2 := Tau2(j)
	if t2 <= 0 {
		return 0
	}

	return Tau3(j) / t2
}
