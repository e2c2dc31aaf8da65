// SPDX-License-Identifier: MIT

package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jetobsmc/grooming"
	"github.com/katalvlaran/jetobsmc/jet"
	"github.com/katalvlaran/jetobsmc/observable"
	"github.com/katalvlaran/jetobsmc/shapes"
	"github.com/katalvlaran/jetobsmc/substructure"
)

func mustJet(t *testing.T, rows [][]float64) *jet.Jet {
	t.Helper()
	j, err := jet.New(rows)
	require.NoError(t, err)

	return j
}

func threeProng(t *testing.T) *jet.Jet {
	return mustJet(t, [][]float64{
		{50, 30, 40, 0},
		{20, 12, 15, 5},
		{10, 3, 9, 1},
		{5, 4, 2, -1},
	})
}

func TestCatalog_SizeAndValidity(t *testing.T) {
	reg := observable.New()
	assert.GreaterOrEqual(t, reg.Len(), 30)
	require.NoError(t, reg.Validate())

	names := reg.Names()
	assert.IsIncreasing(t, names)
	assert.Len(t, reg.SingleJetNames(), reg.Len()-1)
}

func TestLookup_SeedEntries(t *testing.T) {
	reg := observable.New()

	md, err := reg.Metadata("pt")
	require.NoError(t, err)
	assert.True(t, md.IRCSafe)
	assert.Equal(t, observable.Kinematic, md.Category)
	assert.Equal(t, []string{observable.BaseFourVector}, md.DependsOn)
	assert.Equal(t, "O(1)", md.Complexity)

	md, err = reg.Metadata("tau1")
	require.NoError(t, err)
	assert.False(t, md.IRCSafe)
	assert.Equal(t, observable.Substructure, md.Category)

	md, err = reg.Metadata("jet_width")
	require.NoError(t, err)
	assert.Equal(t, observable.Shape, md.Category)
	assert.Equal(t, []string{"eta", "phi", "pt"}, md.DependsOn)

	md, err = reg.Metadata("delta_r")
	require.NoError(t, err)
	assert.Equal(t, 2, md.Arity)

	_, err = reg.Lookup("nope")
	assert.ErrorIs(t, err, observable.ErrUnknown)
}

func TestMetadata_ReturnsCopy(t *testing.T) {
	reg := observable.New()
	md, err := reg.Metadata("c2")
	require.NoError(t, err)
	md.DependsOn[0] = "tampered"

	again, err := reg.Metadata("c2")
	require.NoError(t, err)
	assert.Equal(t, []string{"e2", "e3"}, again.DependsOn)
}

func TestByCategory(t *testing.T) {
	reg := observable.New()
	total := 0
	for _, c := range []observable.Category{observable.Kinematic, observable.Shape, observable.Substructure} {
		mds := reg.ByCategory(c)
		assert.NotEmpty(t, mds)
		for _, md := range mds {
			assert.Equal(t, c, md.Category)
		}
		total += len(mds)
	}
	assert.Equal(t, reg.Len(), total)
	assert.Empty(t, reg.ByCategory("detector"))
}

func TestEvaluate_MatchesPackages(t *testing.T) {
	reg := observable.New()
	j := threeProng(t)

	got, err := reg.Evaluate(j, "pt", "jet_width", "tau21", "c2", "softdrop_zg", "multiplicity")
	require.NoError(t, err)
	assert.Equal(t, []float64{
		j.Pt(),
		shapes.Width(j),
		substructure.Tau21(j),
		substructure.C2(j),
		grooming.Zg(j),
		4,
	}, got)
}

func TestEvaluate_DefaultsToSingleJetNames(t *testing.T) {
	reg := observable.New()
	got, err := reg.Evaluate(threeProng(t))
	require.NoError(t, err)
	assert.Len(t, got, len(reg.SingleJetNames()))
}

func TestEvaluate_EmptyJetAllZero(t *testing.T) {
	reg := observable.New()
	got, err := reg.Evaluate(mustJet(t, nil))
	require.NoError(t, err)
	for i, v := range got {
		assert.Equal(t, 0.0, v, reg.SingleJetNames()[i])
	}
}

func TestEvaluate_Errors(t *testing.T) {
	reg := observable.New()
	j := threeProng(t)

	_, err := reg.Evaluate(j, "delta_r")
	assert.ErrorIs(t, err, observable.ErrPairObservable)
	_, err = reg.Evaluate(j, "pt", "bogus")
	assert.ErrorIs(t, err, observable.ErrUnknown)
	_, err = reg.Evaluate(nil, "pt")
	assert.ErrorIs(t, err, jet.ErrNilJet)

	assert.NoError(t, reg.Check("pt", "e3"))
	assert.ErrorIs(t, reg.Check("delta_r"), observable.ErrPairObservable)
	assert.ErrorIs(t, reg.Check("bogus"), observable.ErrUnknown)
}

func TestWithSoftDrop(t *testing.T) {
	// zg = 10/40 for a 30/10 pair 0.5 apart.
	j := mustJet(t, [][]float64{{30, 30, 0, 0}, {10, 8.775825618903728, 4.794255386042030, 0}})

	loose, err := observable.New().Evaluate(j, "softdrop_pass_fraction")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, loose)

	strict := observable.New(observable.WithSoftDrop(grooming.Params{ZCut: 0.3, Beta: 0, R0: 1}))
	got, err := strict.Evaluate(j, "softdrop_pass_fraction")
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, got)

	assert.Panics(t, func() { observable.WithSoftDrop(grooming.Params{ZCut: 0.1, R0: 0}) })
	assert.Panics(t, func() { observable.WithSoftDrop(grooming.Params{ZCut: -1, R0: 1}) })
}

func TestResolve_Order(t *testing.T) {
	reg := observable.New()
	order, err := reg.Resolve("d2", "tau21")
	require.NoError(t, err)

	pos := make(map[string]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	for _, n := range []string{"pt", "eta", "phi", "e2", "e3", "d2", "tau1", "tau2", "tau21"} {
		assert.Contains(t, pos, n)
	}
	assert.Less(t, pos["e2"], pos["d2"])
	assert.Less(t, pos["e3"], pos["d2"])
	assert.Less(t, pos["pt"], pos["e2"])
	assert.Less(t, pos["tau1"], pos["tau21"])
	assert.NotContains(t, pos, observable.BaseFourVector)

	_, err = reg.Resolve("missing")
	assert.ErrorIs(t, err, observable.ErrUnknown)
}
