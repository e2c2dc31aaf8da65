// SPDX-License-Identifier: MIT

package grooming

// Default SoftDrop parameters.
const (
	DefaultZCut = 0.1
	DefaultBeta = 0.0
	DefaultR0   = 1.0
)

// Params configures the SoftDrop condition z > ZCut·(ΔR/R0)^Beta.
type Params struct {
	ZCut float64 `json:"zcut" yaml:"zcut"`
	Beta float64 `json:"beta" yaml:"beta"`
	R0   float64 `json:"r0" yaml:"r0"`
}

// DefaultParams returns {ZCut: 0.1, Beta: 0, R0: 1}.
func DefaultParams() Params {
	return Params{ZCut: DefaultZCut, Beta: DefaultBeta, R0: DefaultR0}
}
