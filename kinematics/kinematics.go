// SPDX-License-Identifier: MIT

package kinematics

import (
	"fmt"

	"github.com/katalvlaran/jetobsmc/fourvec"
	"github.com/katalvlaran/jetobsmc/jet"
)

// WrapDeltaPhi maps an azimuthal difference onto (−π, π].
func WrapDeltaPhi(dphi float64) float64 { return fourvec.WrapDeltaPhi(dphi) }

// WrapDeltaPhiBatch applies WrapDeltaPhi element-wise; results equal the
// scalar form bit-for-bit.
func WrapDeltaPhiBatch(dphi []float64) []float64 { return fourvec.WrapDeltaPhiBatch(dphi) }

// Pt returns the jet transverse momentum.
func Pt(j *jet.Jet) float64 { return j.Pt() }

// Mass returns the jet invariant mass.
func Mass(j *jet.Jet) float64 { return j.Mass() }

// Eta returns the jet pseudorapidity.
func Eta(j *jet.Jet) float64 { return j.Eta() }

// Phi returns the jet azimuth.
func Phi(j *jet.Jet) float64 { return j.Phi() }

// Energy returns the jet energy.
func Energy(j *jet.Jet) float64 { return j.Aggregate().E }

// DeltaR returns hypot(ηA−ηB, wrap(φA−φB)).
// DeltaR(a, b) == DeltaR(b, a) holds exactly.
//
// Errors: jet.ErrNilJet if either jet is nil.
func DeltaR(a, b *jet.Jet) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("kinematics.DeltaR: %w", jet.ErrNilJet)
	}

	return fourvec.DeltaREtaPhi(a.Eta(), a.Phi(), b.Eta(), b.Phi()), nil
}

// AxisDistances returns ΔRᵢ = hypot(ηᵢ−η_jet, wrap(φᵢ−φ_jet)) for every
// constituent, in constituent order.
//
// Complexity: O(N).
func AxisDistances(j *jet.Jet) []float64 {
	etas := j.ConstituentEtas()
	phis := j.ConstituentPhis()
	axisEta, axisPhi := j.Eta(), j.Phi()

	out := make([]float64, len(etas))
	for i := range etas {
		out[i] = fourvec.DeltaREtaPhi(etas[i], phis[i], axisEta, axisPhi)
	}

	return out
}
