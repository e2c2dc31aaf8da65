// SPDX-License-Identifier: MIT

package fourvec

import "math"

// Components is the number of entries of a four-vector: (E, px, py, pz).
const Components = 4

// Epsilon is the threshold below which |p| − pz is treated as zero when
// evaluating the pseudorapidity.
const Epsilon = 1e-12

// FourVector is an immutable four-momentum (E, px, py, pz).
// Equality is structural: two vectors are equal iff all components are equal.
type FourVector struct {
	E  float64 // energy
	Px float64 // momentum along x
	Py float64 // momentum along y
	Pz float64 // momentum along the beam axis
}

// Zero is the null four-vector.
var Zero = FourVector{}

// New builds a FourVector from its components.
func New(e, px, py, pz float64) FourVector {
	return FourVector{E: e, Px: px, Py: py, Pz: pz}
}

// FromSlice reads a vector from a flat sequence in (E, px, py, pz) order.
//
// Errors:
//   - ErrShape if len(p) != 4.
//
// Complexity: O(1).
func FromSlice(p []float64) (FourVector, error) {
	if len(p) != Components {
		return Zero, shapeErrorf("FromSlice", len(p))
	}

	return FourVector{E: p[0], Px: p[1], Py: p[2], Pz: p[3]}, nil
}

// Array returns the components as [E, px, py, pz].
func (v FourVector) Array() [Components]float64 {
	return [Components]float64{v.E, v.Px, v.Py, v.Pz}
}

// Add returns v + w.
func (v FourVector) Add(w FourVector) FourVector {
	return FourVector{E: v.E + w.E, Px: v.Px + w.Px, Py: v.Py + w.Py, Pz: v.Pz + w.Pz}
}

// Sub returns v − w.
func (v FourVector) Sub(w FourVector) FourVector {
	return FourVector{E: v.E - w.E, Px: v.Px - w.Px, Py: v.Py - w.Py, Pz: v.Pz - w.Pz}
}

// Scale returns s·v.
func (v FourVector) Scale(s float64) FourVector {
	return FourVector{E: s * v.E, Px: s * v.Px, Py: s * v.Py, Pz: s * v.Pz}
}

// Dot is the Minkowski product with signature (+,−,−,−).
func (v FourVector) Dot(w FourVector) float64 {
	return v.E*w.E - v.Px*w.Px - v.Py*w.Py - v.Pz*w.Pz
}

// M2 returns the (possibly negative) squared invariant mass v·v.
func (v FourVector) M2() float64 {
	return v.Dot(v)
}

// Mass returns sqrt(max(v·v, 0)). Spacelike or numerically noisy vectors
// yield 0 instead of NaN.
func (v FourVector) Mass() float64 {
	return math.Sqrt(math.Max(v.M2(), 0))
}

// Pt returns the transverse momentum hypot(px, py).
func (v FourVector) Pt() float64 {
	return math.Hypot(v.Px, v.Py)
}

// P returns the magnitude of the three-momentum.
func (v FourVector) P() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
}

// Eta returns the pseudorapidity ½·ln((|p⃗|+pz)/(|p⃗|−pz)).
//
// Edge cases: a vector along the beam (pT = 0, pz ≠ 0) gives sign(pz)·∞, and
// the zero three-vector gives 0 rather than NaN.
// Eta never returns NaN for finite input.
func (v FourVector) Eta() float64 {
	return etaOf(v.Px, v.Py, v.Pz)
}

// Phi returns the azimuth atan2(py, px).
func (v FourVector) Phi() float64 {
	return math.Atan2(v.Py, v.Px)
}

// Dot is the package-level form of FourVector.Dot.
func Dot(a, b FourVector) float64 { return a.Dot(b) }

// Mass is the package-level form of FourVector.Mass.
func Mass(v FourVector) float64 { return v.Mass() }

// Pt is the package-level form of FourVector.Pt.
func Pt(v FourVector) float64 { return v.Pt() }

// Eta is the package-level form of FourVector.Eta.
func Eta(v FourVector) float64 { return v.Eta() }

// Phi is the package-level form of FourVector.Phi.
func Phi(v FourVector) float64 { return v.Phi() }

// Sum returns the element-wise sum of vs, Zero for an empty slice.
// Summation runs in index order so the result is deterministic.
func Sum(vs []FourVector) FourVector {
	var total FourVector
	for i := range vs {
		total = total.Add(vs[i])
	}

	return total
}

// etaOf is the single pseudorapidity kernel shared by the scalar and the
// batched paths.
//
// With p = |p⃗|, numer = p + pz and denom = p − pz:
//   - |denom| < Epsilon, numer ≤ 0 or denom ≤ 0 ⇒ sign(pz)·∞;
//   - otherwise 0.5·ln(numer/denom).
//
// A vector with no three-momentum at all (pz == 0 in the degenerate branch)
// has no direction along the beam and yields 0.
func etaOf(px, py, pz float64) float64 {
	p := math.Sqrt(px*px + py*py + pz*pz)
	numer := p + pz
	denom := p - pz

	if math.Abs(denom) < Epsilon || numer <= 0 || denom <= 0 {
		switch {
		case pz > 0:
			return math.Inf(1)
		case pz < 0:
			return math.Inf(-1)
		default:
			return 0
		}
	}

	return 0.5 * math.Log(numer/denom)
}
