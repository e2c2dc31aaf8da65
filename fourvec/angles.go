// SPDX-License-Identifier: MIT

package fourvec

import "math"

const twoPi = 2 * math.Pi

// WrapDeltaPhi maps an azimuthal difference onto (−π, π], the mathematical
// value of ((Δφ+π) mod 2π) − π with the −π endpoint folded onto π.
//
// Behavior highlights:
//   - values already inside (−π, π] are returned untouched (no rounding);
//   - the reduction works on |Δφ| and restores the sign afterwards, so
//     WrapDeltaPhi(−x) == −WrapDeltaPhi(x) bit-for-bit away from ±π and
//     |WrapDeltaPhi(x)| == |WrapDeltaPhi(−x)| everywhere. ΔR built on top of
//     it is therefore exactly symmetric.
//
// NaN propagates; ±Inf yields NaN.
func WrapDeltaPhi(dphi float64) float64 {
	if dphi > -math.Pi && dphi <= math.Pi {
		return dphi
	}

	a := math.Abs(dphi)
	r := math.Mod(a+math.Pi, twoPi) - math.Pi // a+π > 0, so Mod is already floored
	if dphi < 0 {
		r = -r
	}
	if r <= -math.Pi {
		r = math.Pi
	}

	return r
}

// WrapDeltaPhiBatch applies WrapDeltaPhi element-wise into a new slice.
func WrapDeltaPhiBatch(dphi []float64) []float64 {
	out := make([]float64, len(dphi))
	for i, x := range dphi {
		out[i] = WrapDeltaPhi(x)
	}

	return out
}

// DeltaREtaPhi returns hypot(η₁−η₂, wrap(φ₁−φ₂)).
func DeltaREtaPhi(eta1, phi1, eta2, phi2 float64) float64 {
	return math.Hypot(eta1-eta2, WrapDeltaPhi(phi1-phi2))
}

// DeltaR returns the angular separation of two vectors in the (η, φ) plane.
func DeltaR(a, b FourVector) float64 {
	return DeltaREtaPhi(a.Eta(), a.Phi(), b.Eta(), b.Phi())
}
