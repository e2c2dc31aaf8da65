// SPDX-License-Identifier: MIT

// Package jet aggregates constituent four-momenta into an immutable Jet.
//
// What & Why:
//
//	A Jet owns an ordered slice of constituents in (E, px, py, pz) form and
//	the aggregate four-vector equal to their sum (the zero vector for an empty
//	jet). The aggregate and the per-constituent pT, η and φ are computed once
//	at construction, which makes a *Jet safe for concurrent readers and lets
//	every observable package share the same cached kinematics.
//
// Construction:
//
//	j, err := jet.New([][]float64{{6, 3, 0, 5}, {7, 0, 4, 5}})
//	j, err := jet.FromFlat(buf, rows, 4)
//	j := jet.FromVectors(vs)
//	j, err := jet.FromDetector(rows) // padded (pT, y, φ, pid) input
//
// Shape errors are reported with ErrShape; a Jet is never mutated after
// construction, callers build a new one to change composition.
package jet
