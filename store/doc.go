// SPDX-License-Identifier: MIT

// Package store persists evaluated observable tables in SQLite.
//
// A run is one evaluation of one dataset: it has a UUID, a label, the source
// it came from and, once SaveTable has been called, its column names and one
// value per (jet, observable). The schema is migrated on Open from SQL files
// embedded in the binary. Non-finite values are stored as NULL and read back
// as NaN.
package store
