// SPDX-License-Identifier: MIT

// Package kinematics provides jet-level kinematic observables and the angular
// distances every other observable package is built on.
//
//   - Pt, Mass, Eta, Phi of the jet axis (the aggregate four-vector)
//   - WrapDeltaPhi / WrapDeltaPhiBatch onto (−π, π]
//   - DeltaR between two jets, exactly symmetric in its arguments
//   - AxisDistances: ΔRᵢ of every constituent to the jet axis, O(N)
//   - PairwiseDeltaR: the symmetric N×N matrix of ΔR_ij, O(N²)
package kinematics
