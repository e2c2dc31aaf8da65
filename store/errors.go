// SPDX-License-Identifier: MIT

package store

import "errors"

var (
	// ErrRunNotFound indicates an unknown run ID.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrUnknownColumn indicates a column the run does not carry.
	ErrUnknownColumn = errors.New("store: unknown column")

	// ErrTableSaved indicates a second SaveTable for the same run.
	ErrTableSaved = errors.New("store: run already has a table")
)
