// SPDX-License-Identifier: MIT

package canon

import "errors"

var (
	// ErrShape indicates a detector table that is not N×4.
	ErrShape = errors.New("canon: expected rows of (pT, y, phi, pid)")

	// ErrNotImplemented marks the massive (non-massless) conversion path.
	ErrNotImplemented = errors.New("canon: non-massless conversion is not implemented")
)
