// SPDX-License-Identifier: MIT

package jet

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jetobsmc/fourvec"
)

var (
	// ErrShape indicates constituent input that is not an N×4 table.
	// It wraps fourvec.ErrShape so either sentinel matches with errors.Is.
	ErrShape = fmt.Errorf("jet: invalid constituent shape: %w", fourvec.ErrShape)

	// ErrNilJet indicates a missing jet where one was required (for example
	// the other operand of DeltaR).
	ErrNilJet = errors.New("jet: nil jet")

	// ErrOutOfRange indicates a constituent index outside [0, Len()).
	ErrOutOfRange = errors.New("jet: constituent index out of range")
)
