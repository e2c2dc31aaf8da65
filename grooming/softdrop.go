// SPDX-License-Identifier: MIT

package grooming

import (
	"math"

	"github.com/katalvlaran/jetobsmc/fourvec"
	"github.com/katalvlaran/jetobsmc/jet"
)

// hardestPair returns the indices of the two hardest constituents.
func hardestPair(j *jet.Jet) (a, b int, ok bool) {
	if j.Len() < 2 {
		return 0, 0, false
	}
	idx := j.LeadingIndices(2)

	return idx[0], idx[1], true
}

// Zg returns the momentum-sharing fraction of the hardest pair, 0 when the
// pair is missing or carries no pT.
func Zg(j *jet.Jet) float64 {
	a, b, ok := hardestPair(j)
	if !ok {
		return 0
	}
	pts := j.ConstituentPts()
	sum := pts[a] + pts[b]
	if sum <= 0 {
		return 0
	}

	return math.Min(pts[a], pts[b]) / sum
}

// Rg returns ΔR between the two hardest constituents.
func Rg(j *jet.Jet) float64 {
	a, b, ok := hardestPair(j)
	if !ok {
		return 0
	}
	etas := j.ConstituentEtas()
	phis := j.ConstituentPhis()

	return fourvec.DeltaREtaPhi(etas[a], phis[a], etas[b], phis[b])
}

// PassFraction returns 1 when the hardest pair satisfies
// Zg > p.ZCut·(Rg/p.R0)^p.Beta and 0 otherwise. p.R0 ≤ 0 returns 0.
func PassFraction(j *jet.Jet, p Params) float64 {
	if p.R0 <= 0 {
		return 0
	}
	threshold := p.ZCut * math.Pow(Rg(j)/p.R0, p.Beta)
	if Zg(j) > threshold {
		return 1
	}

	return 0
}

// GroomedPairMass returns the invariant mass of the hardest pair.
func GroomedPairMass(j *jet.Jet) float64 {
	a, b, ok := hardestPair(j)
	if !ok {
		return 0
	}
	pa, _ := j.Particle(a)
	pb, _ := j.Particle(b)

	return pa.Add(pb).Mass()
}
