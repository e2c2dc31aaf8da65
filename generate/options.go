// SPDX-License-Identifier: MIT

package generate

import "fmt"

// Mode selects the jet shape.
type Mode string

// Modes.
const (
	Isotropic  Mode = "isotropic"
	Collimated Mode = "collimated"
)

// Defaults.
const (
	DefaultMode            = Collimated
	DefaultMinConstituents = 2
	DefaultMaxConstituents = 30
	DefaultMeanPt          = 20.0
	DefaultRadius          = 0.4
	DefaultPadding         = 0
)

// Option configures a Generator.
type Option func(*Options)

// Options holds the generator settings.
type Options struct {
	mode   Mode
	minN   int
	maxN   int
	meanPt float64
	radius float64
	padTo  int
}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Isotropic, Collimated:
		return m, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrMode)
	}
}

// WithMode selects the jet shape. Panics on an unknown mode.
func WithMode(m Mode) Option {
	if _, err := ParseMode(string(m)); err != nil {
		panic(fmt.Sprintf("generate: WithMode: %v", err))
	}

	return func(o *Options) { o.mode = m }
}

// WithConstituents sets the inclusive constituent-count range.
// Panics unless 0 ≤ lo ≤ hi.
func WithConstituents(lo, hi int) Option {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("generate: WithConstituents(%d, %d): need 0 ≤ lo ≤ hi", lo, hi))
	}

	return func(o *Options) { o.minN, o.maxN = lo, hi }
}

// WithMeanPt sets the mean constituent pT of collimated jets. Panics if ≤ 0.
func WithMeanPt(pt float64) Option {
	if !(pt > 0) {
		panic(fmt.Sprintf("generate: WithMeanPt(%g): need pt > 0", pt))
	}

	return func(o *Options) { o.meanPt = pt }
}

// WithRadius sets the angular spread of collimated jets. Panics if ≤ 0.
func WithRadius(r float64) Option {
	if !(r > 0) {
		panic(fmt.Sprintf("generate: WithRadius(%g): need r > 0", r))
	}

	return func(o *Options) { o.radius = r }
}

// WithPadding zero-pads collimated jets to n rows. Panics if n < 0.
func WithPadding(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("generate: WithPadding(%d): need n ≥ 0", n))
	}

	return func(o *Options) { o.padTo = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		mode:   DefaultMode,
		minN:   DefaultMinConstituents,
		maxN:   DefaultMaxConstituents,
		meanPt: DefaultMeanPt,
		radius: DefaultRadius,
		padTo:  DefaultPadding,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
