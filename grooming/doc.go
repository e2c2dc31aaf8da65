// SPDX-License-Identifier: MIT

// Package grooming provides two-body SoftDrop proxies.
//
// The proxies look only at the two hardest constituents (i, j) of a jet,
// selected by descending pT with ties going to the higher index. They are not
// the SoftDrop procedure, which walks a recursive declustering tree; no
// clustering happens here.
//
//   - Zg = min(pTᵢ, pTⱼ) / (pTᵢ + pTⱼ)
//   - Rg = ΔR_ij
//   - PassFraction = 1 if Zg > z_cut·(Rg/R0)^β else 0
//   - GroomedPairMass = m(pᵢ + pⱼ)
//
// Jets with fewer than two constituents yield 0 everywhere.
package grooming
