// SPDX-License-Identifier: MIT
// Package: fourvec
//
// Purpose:
//   - Boost a set of four-momenta into the frame where their summed
//     three-momentum vanishes (the jet rest frame).
//   - Expose the post-boost residual ‖Σ p⃗'‖ so callers can assert the
//     closure without recomputing the boost.
//
// Numerical policy:
//   - |β| is clamped to MaxBeta before γ is formed, keeping γ finite for
//     near-lightlike aggregates. In that regime the boosted momenta carry a
//     residual error of order (1 − MaxBeta)·γ·|p|.
//   - Observed tolerances: residual < 1e-9 for well-conditioned inputs. An
//     exactly lightlike aggregate of energy E is clamped and keeps a residual
//     of γ(1 − MaxBeta)·E = √((1 − MaxBeta)/(1 + MaxBeta))·E ≈ 7.1e-7·E, so
//     near the lightlike limit the bound is relative: residual < 1e-6·E.
//     The invariant mass of the sum is preserved to the same tolerance.

package fourvec

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// MaxBeta is the largest boost speed used; faster aggregates are clamped.
const MaxBeta = 1 - 1e-12

// ThreeMomentum returns (px, py, pz) as an r3.Vec.
func (v FourVector) ThreeMomentum() r3.Vec {
	return r3.Vec{X: v.Px, Y: v.Py, Z: v.Pz}
}

// Boost applies the Lorentz boost with velocity beta to v:
//
//	E'  = γ(E − β⃗·p⃗)
//	p⃗'  = p⃗ + β⃗[(γ−1)(β⃗·p⃗)/β² − γE]
//
// A zero beta returns v unchanged; |β| ≥ 1 is clamped to MaxBeta.
func (v FourVector) Boost(beta r3.Vec) FourVector {
	b2 := r3.Norm2(beta)
	if b2 == 0 {
		return v
	}
	beta, b2 = clampBeta(beta, b2)

	gamma := 1 / math.Sqrt(1-b2)
	p := v.ThreeMomentum()
	bp := r3.Dot(beta, p)

	e := gamma * (v.E - bp)
	pp := r3.Add(p, r3.Scale((gamma-1)*bp/b2-gamma*v.E, beta))

	return FourVector{E: e, Px: pp.X, Py: pp.Y, Pz: pp.Z}
}

// RestFrameBeta returns β⃗ = P⃗/E of the aggregate of vs and whether a rest
// frame exists. An empty set, a zero three-momentum or a non-positive total
// energy report ok == false.
func RestFrameBeta(vs []FourVector) (beta r3.Vec, ok bool) {
	total := Sum(vs)
	if len(vs) == 0 || total.E <= 0 {
		return r3.Vec{}, false
	}
	beta = r3.Scale(1/total.E, total.ThreeMomentum())
	if r3.Norm2(beta) == 0 {
		return r3.Vec{}, false
	}

	return beta, true
}

// BoostToRestFrame boosts every vector of vs into the rest frame of their sum.
//
// Behavior highlights:
//   - Empty input returns an empty (non-nil) slice.
//   - Aggregate already at rest (|β| = 0), or with E ≤ 0 (no rest frame),
//     returns a copy of vs unchanged.
//   - The input slice is never modified.
//
// Complexity: O(N) time, O(N) space.
func BoostToRestFrame(vs []FourVector) []FourVector {
	out := make([]FourVector, len(vs))
	beta, ok := RestFrameBeta(vs)
	if !ok {
		copy(out, vs)
		return out
	}

	for i := range vs {
		out[i] = vs[i].Boost(beta)
	}

	return out
}

// RestFrameResidual returns ‖Σ p⃗'‖ after BoostToRestFrame(vs); 0 for empty
// input.
func RestFrameResidual(vs []FourVector) float64 {
	if len(vs) == 0 {
		return 0
	}

	return Sum(BoostToRestFrame(vs)).P()
}

// clampBeta rescales beta so that |β| ≤ MaxBeta.
func clampBeta(beta r3.Vec, b2 float64) (r3.Vec, float64) {
	if b2 < MaxBeta*MaxBeta {
		return beta, b2
	}
	scaled := r3.Scale(MaxBeta/math.Sqrt(b2), beta)

	return scaled, r3.Norm2(scaled)
}
