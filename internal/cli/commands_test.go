// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jetobsmc/compare"
	"github.com/katalvlaran/jetobsmc/dataset"
	"github.com/katalvlaran/jetobsmc/observable"
	"github.com/katalvlaran/jetobsmc/store"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// writeDetector saves a two-jet detector dataset with 2 and 1 constituents.
func writeDetector(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "small.json")
	d := &dataset.Dataset{
		Name:   "small",
		Format: dataset.Detector,
		Jets: [][][]float64{
			{{30, 0.1, 0.2, 211}, {10, -0.2, 0.4, 22}},
			{{40, 0, 0, 11}, {0, 0, 0, 0}},
		},
	}
	require.NoError(t, dataset.Save(path, d))

	return path
}

func TestObservables_Golden(t *testing.T) {
	out, err := execute(t, "observables", "--category", "kinematic")
	require.NoError(t, err)

	newGoldie(t).Assert(t, "observables_kinematic", []byte(out))
}

func TestObservables_JSON(t *testing.T) {
	out, err := execute(t, "observables", "--format", "json")
	require.NoError(t, err)

	var got []observable.Metadata
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, observable.New().Len())
}

func TestObservables_BadCategory(t *testing.T) {
	_, err := execute(t, "observables", "--category", "hadronic")
	assert.Error(t, err)

	_, err = execute(t, "observables", "--format", "xml")
	assert.Error(t, err)
}

func TestEval_CSV(t *testing.T) {
	path := writeDetector(t, t.TempDir())

	out, err := execute(t, "eval", path, "--observables", "multiplicity", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "jet,multiplicity\n0,2\n1,1\n", out)
}

func TestEval_JSONMatchesRegistry(t *testing.T) {
	path := writeDetector(t, t.TempDir())

	out, err := execute(t, "eval", path, "--observables", "pt,e2,tau21", "--format", "json", "--workers", "2")
	require.NoError(t, err)

	var got struct {
		Names []string    `json:"names"`
		Rows  [][]float64 `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"pt", "e2", "tau21"}, got.Names)

	d, err := dataset.Load(path)
	require.NoError(t, err)
	jets, err := d.Build()
	require.NoError(t, err)
	require.Len(t, got.Rows, len(jets))

	reg := observable.New()
	for i, j := range jets {
		want, err := reg.Evaluate(j, got.Names...)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, got.Rows[i], 1e-12, "jet %d", i)
	}
}

func TestEval_UnknownObservable(t *testing.T) {
	path := writeDetector(t, t.TempDir())

	_, err := execute(t, "eval", path, "--observables", "nope")
	assert.ErrorIs(t, err, observable.ErrUnknown)

	_, err = execute(t, "eval", path, "--observables", "delta_r")
	assert.ErrorIs(t, err, observable.ErrPairObservable)
}

func TestEval_SavesRun(t *testing.T) {
	dir := t.TempDir()
	path := writeDetector(t, dir)
	db := filepath.Join(dir, "runs.db")

	_, err := execute(t, "eval", path, "--observables", "multiplicity,pt", "--db", db, "--label", "nominal")
	require.NoError(t, err)

	out, err := execute(t, "runs", "--db", db, "--format", "json")
	require.NoError(t, err)

	var runs []store.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "nominal", runs[0].Label)
	assert.Equal(t, path, runs[0].Source)
	assert.Equal(t, 2, runs[0].Jets)

	out, err = execute(t, "runs", "delete", runs[0].ID.String(), "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, runs[0].ID.String())

	_, err = execute(t, "runs", "delete", runs[0].ID.String(), "--db", db)
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestRuns_NeedsStore(t *testing.T) {
	_, err := execute(t, "runs")
	assert.Error(t, err)
}

func TestGenerate_Reproducible(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")

	for _, out := range []string{a, b} {
		msg, err := execute(t, "generate", out, "-n", "5", "--seed", "7", "--name", "sample")
		require.NoError(t, err)
		assert.Contains(t, msg, "wrote 5 jets")
	}

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)

	d, err := dataset.Load(a)
	require.NoError(t, err)
	assert.Equal(t, "sample", d.Name)
	assert.Equal(t, dataset.Detector, d.Format)
	assert.Len(t, d.Jets, 5)
}

func TestGenerate_RejectsBadOptions(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.json")

	for _, args := range [][]string{
		{"--mode", "spherical"},
		{"--min-constituents", "5", "--max-constituents", "2"},
		{"--mean-pt", "0"},
		{"--radius", "-1"},
		{"--padding", "-1"},
		{"-n", "-3"},
	} {
		_, err := execute(t, append([]string{"generate", out}, args...)...)
		assert.Error(t, err, "%v", args)
	}
}

func TestCompare_DatasetsAndPlots(t *testing.T) {
	dir := t.TempDir()
	sim := filepath.Join(dir, "sim.json")
	ref := filepath.Join(dir, "ref.json")
	plots := filepath.Join(dir, "plots")

	_, err := execute(t, "generate", sim, "-n", "20", "--seed", "1")
	require.NoError(t, err)
	_, err = execute(t, "generate", ref, "-n", "20", "--seed", "2")
	require.NoError(t, err)

	out, err := execute(t, "compare", sim, ref,
		"--observables", "multiplicity,jet_width", "--bins", "5", "--plot-dir", plots, "--format", "json")
	require.NoError(t, err)

	var results []compare.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, 20, r.Sim.N, r.Name)
		assert.Equal(t, 20, r.Ref.N, r.Name)
		assert.Len(t, r.Edges, 6, r.Name)
		assert.GreaterOrEqual(t, r.KS, 0.0, r.Name)
		assert.LessOrEqual(t, r.KS, 1.0, r.Name)
		assert.FileExists(t, filepath.Join(plots, r.Name+".png"))
	}
}

func TestCompare_SelfIsZero(t *testing.T) {
	path := writeDetector(t, t.TempDir())

	out, err := execute(t, "compare", path, path, "--observables", "multiplicity", "--format", "json")
	require.NoError(t, err)

	var results []compare.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Zero(t, results[0].KS)
	assert.Zero(t, results[0].ChiSquare)
}

func TestCompare_SkipsNonFiniteObservable(t *testing.T) {
	// Beam-collinear jets have infinite eta on both sides.
	path := filepath.Join(t.TempDir(), "beam.json")
	require.NoError(t, dataset.Save(path, &dataset.Dataset{
		Name:   "beam",
		Format: dataset.FourMomentum,
		Jets:   [][][]float64{{{10, 0, 0, 10}}, {{20, 0, 0, -20}, {5, 0, 0, -5}}},
	}))

	out, err := execute(t, "compare", path, path, "--observables", "eta,multiplicity", "--format", "json")
	require.NoError(t, err)

	var results []compare.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "multiplicity", results[0].Name)
}

func TestCompare_StoredRuns(t *testing.T) {
	dir := t.TempDir()
	path := writeDetector(t, dir)
	db := filepath.Join(dir, "runs.db")

	for range 2 {
		_, err := execute(t, "eval", path, "--observables", "multiplicity,pt", "--db", db)
		require.NoError(t, err)
	}
	out, err := execute(t, "runs", "--db", db, "--format", "json")
	require.NoError(t, err)
	var runs []store.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 2)

	out, err = execute(t, "compare", runs[0].ID.String(), runs[1].ID.String(),
		"--runs", "--db", db, "--observables", "pt", "--format", "json")
	require.NoError(t, err)

	var results []compare.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "pt", results[0].Name)
	assert.Zero(t, results[0].KS)

	_, err = execute(t, "compare", "not-a-uuid", runs[1].ID.String(), "--runs", "--db", db)
	assert.Error(t, err)
}
