// SPDX-License-Identifier: MIT

package shapes

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/jetobsmc/jet"
	"github.com/katalvlaran/jetobsmc/kinematics"
)

// radial gathers the per-constituent pT, the distances to the jet axis and
// Σ pT. ok is false when the jet is empty or Σ pT = 0.
func radial(j *jet.Jet) (pts, dr []float64, sum float64, ok bool) {
	if j.Len() == 0 {
		return nil, nil, 0, false
	}
	pts = j.ConstituentPts()
	sum = floats.Sum(pts)
	if sum == 0 {
		return nil, nil, 0, false
	}

	return pts, kinematics.AxisDistances(j), sum, true
}

// Width returns Σ pTᵢ·ΔRᵢ / Σ pTᵢ, 0 for an empty jet or Σ pT = 0.
func Width(j *jet.Jet) float64 {
	pts, dr, sum, ok := radial(j)
	if !ok {
		return 0
	}

	return floats.Dot(pts, dr) / sum
}

// Girth is the phenomenology name for Width.
func Girth(j *jet.Jet) float64 { return Width(j) }

// RadialMoment returns Σ pTᵢ·ΔRᵢ^β / Σ pTᵢ. Width is the β = 1 case.
func RadialMoment(j *jet.Jet, beta float64) float64 {
	pts, dr, sum, ok := radial(j)
	if !ok {
		return 0
	}

	var acc float64
	for i := range pts {
		acc += pts[i] * math.Pow(dr[i], beta)
	}

	return acc / sum
}

// RadialMoment2 is RadialMoment with β = 2.
func RadialMoment2(j *jet.Jet) float64 { return RadialMoment(j, 2) }

// RadialMoment3 is RadialMoment with β = 3.
func RadialMoment3(j *jet.Jet) float64 { return RadialMoment(j, 3) }

// GeneralizedAngularity returns λ^κ_β = Σ zᵢ^κ·θᵢ^β with zᵢ = pTᵢ/Σ pT and
// θᵢ = ΔRᵢ/r0. r0 ≤ 0 returns 0. 0⁰ evaluates to 1, so β = 0 weights every
// constituent, including one sitting on the axis.
func GeneralizedAngularity(j *jet.Jet, kappa, beta, r0 float64) float64 {
	if r0 <= 0 {
		return 0
	}
	pts, dr, sum, ok := radial(j)
	if !ok {
		return 0
	}

	var acc float64
	for i := range pts {
		acc += math.Pow(pts[i]/sum, kappa) * math.Pow(dr[i]/r0, beta)
	}

	return acc
}

// LHA is the Les Houches angularity λ¹_½.
func LHA(j *jet.Jet) float64 { return GeneralizedAngularity(j, 1, 0.5, 1) }

// ThrustAngularity is λ¹₂.
func ThrustAngularity(j *jet.Jet) float64 { return GeneralizedAngularity(j, 1, 2, 1) }

// PtDAngularity is λ²₀, the square of PtDispersion.
func PtDAngularity(j *jet.Jet) float64 { return GeneralizedAngularity(j, 2, 0, 1) }

// PtDispersion returns √(Σ pTᵢ²) / Σ pTᵢ, 0 for an empty jet or Σ pT = 0.
func PtDispersion(j *jet.Jet) float64 {
	if j.Len() == 0 {
		return 0
	}
	pts := j.ConstituentPts()
	sum := floats.Sum(pts)
	if sum == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(pts, pts)) / sum
}
