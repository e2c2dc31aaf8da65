// SPDX-License-Identifier: MIT

// Package shapes implements pT-weighted radial statistics of a jet.
//
// Every observable weights constituent i by its own transverse momentum pTᵢ
// and measures its angular distance ΔRᵢ to the jet axis (the aggregate
// four-vector). Degenerate inputs never fail: an empty jet, Σ pTᵢ = 0, or a
// non-positive radius parameter all return 0.
//
// Observables:
//
//   - Width / Girth            Σ pTᵢ·ΔRᵢ / Σ pTᵢ
//   - RadialMoment(β)          Σ pTᵢ·ΔRᵢ^β / Σ pTᵢ
//   - GeneralizedAngularity    Σ zᵢ^κ·(ΔRᵢ/r0)^β with zᵢ = pTᵢ/Σ pT
//   - LHA, ThrustAngularity, PtDAngularity: (κ,β) = (1,½), (1,2), (2,0)
//   - PtDispersion             √(Σ pTᵢ²) / Σ pTᵢ
//   - Multiplicity, ConstituentPtSum, LeadingConstituentPt, LeadingPtFraction
//
// All functions are O(N).
package shapes
