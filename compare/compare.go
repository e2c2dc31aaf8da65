// SPDX-License-Identifier: MIT

package compare

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/jetobsmc/batch"
)

// Summary describes one sample.
type Summary struct {
	N         int     `json:"n"`
	NonFinite int     `json:"non_finite"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

// Result compares one observable.
type Result struct {
	Name      string    `json:"name"`
	Sim       Summary   `json:"sim"`
	Ref       Summary   `json:"ref"`
	KS        float64   `json:"ks"`
	ChiSquare float64   `json:"chi_square"`
	Edges     []float64 `json:"edges"`
	SimHist   []float64 `json:"sim_hist"`
	RefHist   []float64 `json:"ref_hist"`
}

// finiteSorted returns the sorted finite values of x and the count dropped.
func finiteSorted(x []float64) ([]float64, int) {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out, len(x) - len(out)
}

func summarize(sorted []float64, dropped int) Summary {
	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		std = 0
	}

	return Summary{
		N:         len(sorted),
		NonFinite: dropped,
		Mean:      mean,
		StdDev:    std,
		Min:       sorted[0],
		Max:       sorted[len(sorted)-1],
	}
}

// edges spans [lo, hi] with bins+1 dividers. The top divider is nudged up
// so the maximum falls inside the last bin; a zero-width range is widened
// to unit width.
func edges(lo, hi float64, bins int) []float64 {
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	div := floats.Span(make([]float64, bins+1), lo, hi)
	div[bins] = math.Nextafter(hi, math.Inf(1))

	return div
}

// normalized histograms sorted x over div with unit total.
func normalized(x, div []float64) []float64 {
	h := stat.Histogram(nil, div, x, nil)
	floats.Scale(1/float64(len(x)), h)

	return h
}

// ChiSquare returns Σ (sᵢ−rᵢ)²/(sᵢ+rᵢ) over bins where sᵢ+rᵢ > 0.
func ChiSquare(sim, ref []float64) float64 {
	var chi, d, s float64
	for i := range sim {
		s = sim[i] + ref[i]
		if s <= 0 {
			continue
		}
		d = sim[i] - ref[i]
		chi += d * d / s
	}

	return chi
}

// Samples compares two samples of one observable over bins shared bins.
//
// Errors: ErrBins if bins ≤ 0; ErrEmptySample if either sample has no finite
// value.
//
// Implementation:
//   - Stage 1: drop non-finite values, sort, summarise.
//   - Stage 2: KS statistic on the sorted samples.
//   - Stage 3: common edges over the joint range, unit-sum histograms, χ².
func Samples(name string, sim, ref []float64, bins int) (Result, error) {
	if bins <= 0 {
		return Result{}, fmt.Errorf("%s: %w", name, ErrBins)
	}
	s, sDrop := finiteSorted(sim)
	r, rDrop := finiteSorted(ref)
	if len(s) == 0 {
		return Result{}, fmt.Errorf("%s: simulated: %w", name, ErrEmptySample)
	}
	if len(r) == 0 {
		return Result{}, fmt.Errorf("%s: reference: %w", name, ErrEmptySample)
	}

	res := Result{
		Name: name,
		Sim:  summarize(s, sDrop),
		Ref:  summarize(r, rDrop),
		KS:   stat.KolmogorovSmirnov(s, nil, r, nil),
	}
	res.Edges = edges(math.Min(s[0], r[0]), math.Max(s[len(s)-1], r[len(r)-1]), bins)
	res.SimHist = normalized(s, res.Edges)
	res.RefHist = normalized(r, res.Edges)
	res.ChiSquare = ChiSquare(res.SimHist, res.RefHist)

	return res, nil
}

// Shared returns the columns of sim that ref also carries, in sim's order.
func Shared(sim, ref *batch.Table) []string {
	var out []string
	for _, name := range sim.Names {
		if _, err := ref.Index(name); err == nil {
			out = append(out, name)
		}
	}

	return out
}

// Tables compares every Shared column. A column with no finite value in
// either table is skipped so the remaining columns are still compared;
// callers can detect it as a Shared name missing from the results.
//
// Errors: ErrBins if bins ≤ 0.
func Tables(sim, ref *batch.Table, bins int) ([]Result, error) {
	if bins <= 0 {
		return nil, ErrBins
	}

	names := Shared(sim, ref)
	out := make([]Result, 0, len(names))
	for _, name := range names {
		sc, _ := sim.Column(name)
		rc, _ := ref.Column(name)
		res, err := Samples(name, sc, rc, bins)
		if errors.Is(err, ErrEmptySample) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}
