// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrFormat indicates an unknown row format.
	ErrFormat = errors.New("dataset: unknown row format")

	// ErrEncoding indicates a file extension with no known encoding.
	ErrEncoding = errors.New("dataset: unsupported file encoding")
)
