// SPDX-License-Identifier: MIT

package jet

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/jetobsmc/canon"
	"github.com/katalvlaran/jetobsmc/fourvec"
)

// Jet is an immutable set of constituents and their aggregate four-vector.
type Jet struct {
	particles []fourvec.FourVector // owned, never exposed without copying
	aggregate fourvec.FourVector   // Σ particles, Zero when empty

	// per-constituent kinematics, filled once by the batched fourvec kernels
	pts  []float64
	etas []float64
	phis []float64
}

// New builds a Jet from an N×4 table in (E, px, py, pz) order.
//
// Errors:
//   - ErrShape if any row does not have exactly 4 columns.
//
// Complexity: O(N).
func New(rows [][]float64) (*Jet, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("jet.New: %w", err)
	}
	vs, err := fourvec.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("jet.New: %w", err)
	}

	return build(vs), nil
}

// FromFlat builds a Jet from a row-major buffer with the given shape.
// The shape must be (N, 4); any other rank or column count is rejected.
//
// Errors:
//   - ErrShape.
//
// Complexity: O(N).
func FromFlat(data []float64, rows, cols int) (*Jet, error) {
	if err := ValidateFlat(data, rows, cols); err != nil {
		return nil, fmt.Errorf("jet.FromFlat: %w", err)
	}
	vs := make([]fourvec.FourVector, rows)
	for i := range vs {
		o := i * cols
		vs[i] = fourvec.New(data[o], data[o+1], data[o+2], data[o+3])
	}

	return build(vs), nil
}

// FromVectors builds a Jet from four-vectors. The slice is copied.
func FromVectors(vs []fourvec.FourVector) *Jet {
	return build(slices.Clone(vs))
}

// FromDetector builds a Jet from padded detector-style (pT, y, φ, pid) rows,
// dropping padding and converting under the massless assumption unless the
// options say otherwise.
//
// Errors:
//   - canon.ErrShape for rows that are not 4 columns wide.
//   - canon.ErrNotImplemented for the massive conversion mode.
func FromDetector(rows [][]float64, opts ...canon.Option) (*Jet, error) {
	vs, err := canon.ToFourMomenta(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("jet.FromDetector: %w", err)
	}

	return build(vs), nil
}

// build takes ownership of vs and fills the cached quantities.
func build(vs []fourvec.FourVector) *Jet {
	if vs == nil {
		vs = []fourvec.FourVector{}
	}

	return &Jet{
		particles: vs,
		aggregate: fourvec.Sum(vs),
		pts:       fourvec.PtBatch(vs),
		etas:      fourvec.EtaBatch(vs),
		phis:      fourvec.PhiBatch(vs),
	}
}

// Len returns the number of constituents.
func (j *Jet) Len() int { return len(j.particles) }

// Particle returns constituent i.
//
// Errors: ErrOutOfRange if i ∉ [0, Len()).
func (j *Jet) Particle(i int) (fourvec.FourVector, error) {
	if i < 0 || i >= len(j.particles) {
		return fourvec.Zero, fmt.Errorf("Jet.Particle(%d): %w", i, ErrOutOfRange)
	}

	return j.particles[i], nil
}

// Particles returns a copy of the constituents.
func (j *Jet) Particles() []fourvec.FourVector { return slices.Clone(j.particles) }

// Aggregate returns the summed four-vector.
func (j *Jet) Aggregate() fourvec.FourVector { return j.aggregate }

// Pt returns the transverse momentum of the aggregate.
func (j *Jet) Pt() float64 { return j.aggregate.Pt() }

// Mass returns the invariant mass of the aggregate.
func (j *Jet) Mass() float64 { return j.aggregate.Mass() }

// Eta returns the pseudorapidity of the aggregate.
func (j *Jet) Eta() float64 { return j.aggregate.Eta() }

// Phi returns the azimuth of the aggregate.
func (j *Jet) Phi() float64 { return j.aggregate.Phi() }

// ConstituentPts returns a copy of the per-constituent transverse momenta.
func (j *Jet) ConstituentPts() []float64 { return slices.Clone(j.pts) }

// ConstituentEtas returns a copy of the per-constituent pseudorapidities.
func (j *Jet) ConstituentEtas() []float64 { return slices.Clone(j.etas) }

// ConstituentPhis returns a copy of the per-constituent azimuths.
func (j *Jet) ConstituentPhis() []float64 { return slices.Clone(j.phis) }

// DeltaR returns the angular separation between the axes of j and other.
// It is exactly symmetric: a.DeltaR(b) == b.DeltaR(a).
//
// Errors: ErrNilJet if either jet is nil.
func (j *Jet) DeltaR(other *Jet) (float64, error) {
	if j == nil || other == nil {
		return 0, fmt.Errorf("Jet.DeltaR: %w", ErrNilJet)
	}

	return fourvec.DeltaR(j.aggregate, other.aggregate), nil
}

// BoostedConstituents returns the constituents boosted into the jet rest
// frame (see fourvec.BoostToRestFrame).
func (j *Jet) BoostedConstituents() []fourvec.FourVector {
	return fourvec.BoostToRestFrame(j.particles)
}

// RestFrameMomentumResidual returns ‖Σ p⃗'‖ after the rest-frame boost;
// 0 for an empty jet.
func (j *Jet) RestFrameMomentumResidual() float64 {
	return fourvec.RestFrameResidual(j.particles)
}

// LeadingIndices returns the indices of the k hardest constituents ordered
// by decreasing pT; equal pT puts the higher index first, so a tie at the
// cut selects the later constituent. k is capped at Len(); k ≤ 0 returns nil.
//
// Complexity: O(N log N).
func (j *Jet) LeadingIndices(k int) []int {
	if k <= 0 {
		return nil
	}
	idx := make([]int, len(j.pts))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int {
		switch {
		case j.pts[a] > j.pts[b]:
			return -1
		case j.pts[a] < j.pts[b]:
			return 1
		default:
			return b - a
		}
	})
	if k < len(idx) {
		idx = idx[:k]
	}

	return idx
}
