// SPDX-License-Identifier: MIT

package compare

import "errors"

var (
	// ErrEmptySample indicates a sample with no finite value.
	ErrEmptySample = errors.New("compare: sample has no finite values")

	// ErrBins indicates a non-positive bin count.
	ErrBins = errors.New("compare: bin count must be positive")
)
