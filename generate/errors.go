// SPDX-License-Identifier: MIT

package generate

import "errors"

var (
	// ErrMode indicates an unknown generation mode.
	ErrMode = errors.New("generate: unknown mode")

	// ErrCount indicates a negative jet count.
	ErrCount = errors.New("generate: jet count must be non-negative")
)
