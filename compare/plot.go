// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	simColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	refColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// stepPoints lays a histogram out as points at the left edge of each bin
// plus a closing point at the top edge.
func stepPoints(edges, hist []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(hist)+1)
	for i, h := range hist {
		pts = append(pts, plotter.XY{X: edges[i], Y: h})
	}
	if n := len(hist); n > 0 {
		pts = append(pts, plotter.XY{X: edges[n], Y: hist[n-1]})
	}

	return pts
}

// WritePlot overlays the simulated and reference histograms of r and saves
// the figure to path; the extension picks the image format (.png, .svg, .pdf).
func WritePlot(r Result, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s  (KS %.4f, χ² %.4f)", r.Name, r.KS, r.ChiSquare)
	p.X.Label.Text = r.Name
	p.Y.Label.Text = "fraction of jets"

	for _, s := range []struct {
		label string
		hist  []float64
		col   color.Color
	}{
		{"simulated", r.SimHist, simColor},
		{"reference", r.RefHist, refColor},
	} {
		line, err := plotter.NewLine(stepPoints(r.Edges, s.hist))
		if err != nil {
			return fmt.Errorf("compare: %s line: %w", s.label, err)
		}
		line.StepStyle = plotter.PostStep
		line.Color = s.col
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.label, line)
	}

	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("compare: save %s: %w", path, err)
	}

	return nil
}
