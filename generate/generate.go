// SPDX-License-Identifier: MIT

package generate

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/jetobsmc/canon"
	"github.com/katalvlaran/jetobsmc/dataset"
	"github.com/katalvlaran/jetobsmc/jet"
)

// pids are the particle IDs assigned to collimated constituents.
var pids = [...]float64{211, -211, 321, 22, 130, 11, -13, 2112}

// maxRapidity bounds the axis rapidity of collimated jets.
const maxRapidity = 2.5

// Generator produces jets from a fixed seed. It holds no mutable state and
// is safe for concurrent use.
type Generator struct {
	seed uint64
	opts Options
}

// New returns a Generator; seed 0 selects the default seed.
func New(seed uint64, opts ...Option) *Generator {
	return &Generator{seed: normalizeSeed(seed), opts: gatherOptions(opts...)}
}

// Mode returns the configured jet shape.
func (g *Generator) Mode() Mode { return g.opts.mode }

// Format returns the dataset row format the mode emits.
func (g *Generator) Format() dataset.Format {
	if g.opts.mode == Isotropic {
		return dataset.FourMomentum
	}

	return dataset.Detector
}

// Rows returns the rows of jet index in the configured mode.
func (g *Generator) Rows(index int) [][]float64 {
	src := jetSource(g.seed, index)
	rng := rand.New(src)
	n := g.opts.minN + rng.IntN(g.opts.maxN-g.opts.minN+1)

	if g.opts.mode == Isotropic {
		return isotropicRows(src, n)
	}

	return g.collimatedRows(src, rng, n)
}

// Jet returns jet index as a *jet.Jet, converting detector rows through
// package canon.
func (g *Generator) Jet(index int) (*jet.Jet, error) {
	rows := g.Rows(index)
	if g.Format() == dataset.Detector {
		return jet.FromDetector(rows)
	}

	return jet.New(rows)
}

// Jets returns jets 0..count-1.
//
// Errors: ErrCount for a negative count.
func (g *Generator) Jets(count int) ([]*jet.Jet, error) {
	if count < 0 {
		return nil, fmt.Errorf("Jets(%d): %w", count, ErrCount)
	}
	out := make([]*jet.Jet, count)
	var err error
	for i := range out {
		if out[i], err = g.Jet(i); err != nil {
			return nil, fmt.Errorf("jet %d: %w", i, err)
		}
	}

	return out, nil
}

// Dataset returns jets 0..count-1 as a named dataset.
//
// Errors: ErrCount for a negative count.
func (g *Generator) Dataset(name string, count int) (*dataset.Dataset, error) {
	if count < 0 {
		return nil, fmt.Errorf("Dataset(%d): %w", count, ErrCount)
	}
	d := &dataset.Dataset{Name: name, Format: g.Format(), Jets: make([][][]float64, count)}
	for i := range d.Jets {
		d.Jets[i] = g.Rows(i)
	}

	return d, nil
}

// isotropicRows draws Gaussian momenta with masses in [0, 2).
func isotropicRows(src rand.Source, n int) [][]float64 {
	transverse := distuv.Normal{Mu: 0, Sigma: 20, Src: src}
	longitudinal := distuv.Normal{Mu: 0, Sigma: 40, Src: src}
	mass := distuv.Uniform{Min: 0, Max: 2, Src: src}

	rows := make([][]float64, n)
	var px, py, pz, m float64
	for i := range rows {
		px, py, pz = transverse.Rand(), transverse.Rand(), longitudinal.Rand()
		m = mass.Rand()
		rows[i] = []float64{math.Sqrt(px*px + py*py + pz*pz + m*m), px, py, pz}
	}

	return rows
}

// collimatedRows scatters n constituents around a random axis and appends
// zero rows up to the padding length.
func (g *Generator) collimatedRows(src rand.Source, rng *rand.Rand, n int) [][]float64 {
	axisY := distuv.Uniform{Min: -maxRapidity, Max: maxRapidity, Src: src}.Rand()
	axisPhi := distuv.Uniform{Min: -math.Pi, Max: math.Pi, Src: src}.Rand()
	spread := distuv.Normal{Mu: 0, Sigma: g.opts.radius / 2, Src: src}
	pt := distuv.Exponential{Rate: 1 / g.opts.meanPt, Src: src}

	rows := make([][]float64, 0, max(n, g.opts.padTo))
	for i := 0; i < n; i++ {
		rows = append(rows, []float64{
			pt.Rand() + 0.1,
			axisY + spread.Rand(),
			wrapPhi(axisPhi + spread.Rand()),
			pids[rng.IntN(len(pids))],
		})
	}
	for len(rows) < g.opts.padTo {
		rows = append(rows, make([]float64, canon.Columns))
	}

	return rows
}

// wrapPhi keeps an azimuth in (−π, π].
func wrapPhi(phi float64) float64 {
	switch {
	case phi > math.Pi:
		return phi - 2*math.Pi
	case phi <= -math.Pi:
		return phi + 2*math.Pi
	default:
		return phi
	}
}
