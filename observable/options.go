// SPDX-License-Identifier: MIT

package observable

import (
	"fmt"

	"github.com/katalvlaran/jetobsmc/grooming"
)

// Option configures a Registry.
type Option func(*Options)

// Options carries the parameters bound into parameterised observables.
type Options struct {
	softDrop grooming.Params
}

// WithSoftDrop sets the SoftDrop parameters used by softdrop_pass_fraction.
// Panics if R0 ≤ 0 or ZCut < 0, as those describe no usable condition.
func WithSoftDrop(p grooming.Params) Option {
	if p.R0 <= 0 || p.ZCut < 0 {
		panic(fmt.Sprintf("observable: WithSoftDrop(%+v): need R0 > 0 and ZCut ≥ 0", p))
	}

	return func(o *Options) { o.softDrop = p }
}

func gatherOptions(opts ...Option) Options {
	o := Options{softDrop: grooming.DefaultParams()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
