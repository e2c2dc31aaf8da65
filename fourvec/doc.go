// SPDX-License-Identifier: MIT

// Package fourvec implements relativistic four-momenta under the (+,−,−,−)
// Minkowski metric and the Lorentz boost into the rest frame of a set of
// momenta.
//
// 🚀 What is a FourVector?
//
//	A value (E, px, py, pz). Everything derived from it (invariant mass,
//	transverse momentum, pseudorapidity, azimuth) uses the same metric
//	signature, and no operation ever mutates a vector in place.
//
// ✨ Key features:
//   - metric-aware Dot, M2 and Mass (negative m² is clamped to zero)
//   - Eta with a signed-infinity policy for momenta parallel to the beam
//   - batched EtaBatch / PhiBatch / PtBatch sharing the scalar kernels, so a
//     batch result is bit-identical to calling the scalar function per vector
//   - WrapDeltaPhi and DeltaR angular helpers
//   - BoostToRestFrame and RestFrameResidual for rest-frame checks
//
// ⚙️ Usage:
//
//	p, err := fourvec.FromSlice([]float64{10, 6, 8, 0})
//	if err != nil {
//	  // ErrShape
//	}
//	m := p.Mass() // 0 (massless)
//
// Performance:
//
//   - every scalar operation is O(1)
//   - batched operations and the boost are O(N) in the number of vectors
package fourvec
