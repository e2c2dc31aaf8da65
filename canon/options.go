// SPDX-License-Identifier: MIT

package canon

import "math"

// Defaults for the canonicalization policy.
const (
	// DefaultTolerance is the absolute tolerance used for "non-zero" tests.
	DefaultTolerance = 0.0

	// DefaultApplyMask strips padding rows before conversion.
	DefaultApplyMask = true

	// DefaultMassless converts with E = pT·cosh(y).
	DefaultMassless = true
)

const panicToleranceInvalid = "canon: WithTolerance: atol must be finite, non-negative"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective canonicalization policy.
type Options struct {
	atol      float64
	applyMask bool
	massless  bool
}

// WithTolerance sets the absolute tolerance for the padding mask.
// Panics if atol is negative, NaN or infinite.
func WithTolerance(atol float64) Option {
	if math.IsNaN(atol) || math.IsInf(atol, 0) || atol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// WithoutPaddingMask converts every row, padding included.
func WithoutPaddingMask() Option {
	return func(o *Options) { o.applyMask = false }
}

// WithMassive requests the massive conversion, which is not implemented.
func WithMassive() Option {
	return func(o *Options) { o.massless = false }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{atol: DefaultTolerance, applyMask: DefaultApplyMask, massless: DefaultMassless}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
