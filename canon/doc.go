// SPDX-License-Identifier: MIT

// Package canon canonicalizes padded detector-style constituent tables.
//
// Input rows are (pT, y, φ, pid). Datasets pad every jet to a fixed
// multiplicity, so a row is kept only when it is canonical:
//
//	any |field| > atol  ∧  pT > atol  ∧  pid ≠ 0
//
// Kept rows convert to (E, px, py, pz) under the massless assumption:
//
//	E = pT·cosh(y), px = pT·cos(φ), py = pT·sin(φ), pz = pT·sinh(y)
//
// The massive conversion is not implemented and reports ErrNotImplemented.
package canon
