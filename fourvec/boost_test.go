// SPDX-License-Identifier: MIT

package fourvec_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jetobsmc/fourvec"
)

func threeBody() []fourvec.FourVector {
	return []fourvec.FourVector{
		fourvec.New(80, 30, 10, 60),
		fourvec.New(50, -20, 5, -35),
		fourvec.New(30, 4, -3, 20),
	}
}

// TestBoost_ClosesThreeMomentum checks Σp⃗' ≈ 0 after the boost.
func TestBoost_ClosesThreeMomentum(t *testing.T) {
	boosted := fourvec.BoostToRestFrame(threeBody())
	require.Len(t, boosted, 3)
	assert.Less(t, fourvec.Sum(boosted).P(), 1e-9)
	assert.Less(t, fourvec.RestFrameResidual(threeBody()), 1e-9)
}

// TestBoost_PreservesInvariantMass checks m(ΣP) before and after the boost.
func TestBoost_PreservesInvariantMass(t *testing.T) {
	in := threeBody()
	lab := fourvec.Sum(in).Mass()
	rest := fourvec.Sum(fourvec.BoostToRestFrame(in))
	assert.InDelta(t, lab, rest.Mass(), 1e-9*lab)
	// in the rest frame the total energy is the invariant mass
	assert.InDelta(t, lab, rest.E, 1e-9*lab)
}

// TestBoost_NearLightlike keeps values finite close to |β| = 1.
func TestBoost_NearLightlike(t *testing.T) {
	in := []fourvec.FourVector{
		fourvec.New(math.Sqrt(500*500+0.2*0.2+1), 0.2, 0, 500),
		fourvec.New(math.Sqrt(400*400+0.1*0.1+0.5), 0.1, 0, 400),
	}
	for _, v := range fourvec.BoostToRestFrame(in) {
		for _, c := range v.Array() {
			assert.False(t, math.IsNaN(c) || math.IsInf(c, 0))
		}
	}
	assert.Less(t, fourvec.RestFrameResidual(in), 1e-6)
}

// TestBoost_LightlikeClamped keeps a massless aggregate finite.
func TestBoost_LightlikeClamped(t *testing.T) {
	in := []fourvec.FourVector{fourvec.New(10, 0, 0, 10)}
	out := fourvec.BoostToRestFrame(in)
	for _, c := range out[0].Array() {
		assert.False(t, math.IsNaN(c) || math.IsInf(c, 0))
	}
}

// TestBoost_LightlikeResidualScalesWithEnergy checks the clamped residual
// γ(1−MaxBeta)·E and the relative bound residual < 1e-6·E.
func TestBoost_LightlikeResidualScalesWithEnergy(t *testing.T) {
	b := fourvec.MaxBeta
	perE := math.Sqrt((1 - b) / (1 + b))
	for _, e := range []float64{1, 10, 100, 1000, 1e5} {
		got := fourvec.RestFrameResidual([]fourvec.FourVector{fourvec.New(e, 0, 0, e)})
		assert.InDelta(t, perE*e, got, 1e-2*perE*e, "E=%g", e)
		assert.Less(t, got, 1e-6*e, "E=%g", e)
	}
}

// TestBoost_Degenerate covers empty input, a jet at rest and E ≤ 0.
func TestBoost_Degenerate(t *testing.T) {
	empty := fourvec.BoostToRestFrame(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.Equal(t, 0.0, fourvec.RestFrameResidual(nil))

	atRest := []fourvec.FourVector{fourvec.New(5, 1, 2, 3), fourvec.New(5, -1, -2, -3)}
	assert.Equal(t, atRest, fourvec.BoostToRestFrame(atRest))

	negative := []fourvec.FourVector{fourvec.New(-5, 1, 0, 0)}
	assert.Equal(t, negative, fourvec.BoostToRestFrame(negative))
}

// TestBoost_DoesNotMutateInput verifies the input slice is left intact.
func TestBoost_DoesNotMutateInput(t *testing.T) {
	in := threeBody()
	snapshot := append([]fourvec.FourVector(nil), in...)
	_ = fourvec.BoostToRestFrame(in)
	assert.Equal(t, snapshot, in)
}

// TestBoost_RandomClosure runs the post-condition over random sets.
func TestBoost_RandomClosure(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	for trial := 0; trial < 100; trial++ {
		n := 2 + rng.IntN(30)
		vs := make([]fourvec.FourVector, n)
		for i := range vs {
			vs[i] = randomVector(rng)
		}
		total := fourvec.Sum(vs)
		boosted := fourvec.BoostToRestFrame(vs)
		scale := total.E
		assert.Less(t, fourvec.Sum(boosted).P(), 1e-9*scale, "trial %d", trial)
		assert.InDelta(t, total.Mass(), fourvec.Sum(boosted).Mass(), 1e-9*scale, "trial %d", trial)
	}
}
