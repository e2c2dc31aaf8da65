// SPDX-License-Identifier: MIT

package substructure

import "errors"

// ErrAxisCount indicates a non-positive number of τ axes.
var ErrAxisCount = errors.New("substructure: axis count must be positive")
