// SPDX-License-Identifier: MIT

package batch

import "errors"

// ErrUnknownColumn indicates a column name that is not in the table.
var ErrUnknownColumn = errors.New("batch: unknown column")
