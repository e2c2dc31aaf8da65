// SPDX-License-Identifier: MIT

package shapes

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/jetobsmc/jet"
)

// Multiplicity returns the number of constituents.
func Multiplicity(j *jet.Jet) int { return j.Len() }

// ConstituentPtSum returns the scalar sum Σ pTᵢ.
func ConstituentPtSum(j *jet.Jet) float64 {
	if j.Len() == 0 {
		return 0
	}

	return floats.Sum(j.ConstituentPts())
}

// LeadingConstituentPt returns the largest constituent pT, 0 for an empty jet.
func LeadingConstituentPt(j *jet.Jet) float64 {
	if j.Len() == 0 {
		return 0
	}

	return floats.Max(j.ConstituentPts())
}

// LeadingPtFraction returns LeadingConstituentPt / ConstituentPtSum, 0 when
// the sum vanishes.
func LeadingPtFraction(j *jet.Jet) float64 {
	sum := ConstituentPtSum(j)
	if sum == 0 {
		return 0
	}

	return LeadingConstituentPt(j) / sum
}
