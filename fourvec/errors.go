// SPDX-License-Identifier: MIT

package fourvec

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned when a flat numeric sequence cannot be read as a
	// four-vector (length != 4) or a batch is not N×4.
	ErrShape = errors.New("fourvec: invalid shape")
)

// shapeErrorf tags ErrShape with the operation and the offending length.
func shapeErrorf(op string, got int) error {
	return fmt.Errorf("%s: expected 4 components, got %d: %w", op, got, ErrShape)
}
