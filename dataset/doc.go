// SPDX-License-Identifier: MIT

// Package dataset reads and writes jet datasets as JSON or YAML.
//
// A dataset file holds a name, a row format and a list of jets, each jet a
// list of four-number rows:
//
//	name: ttbar-sample
//	format: detector        # or p4
//	jets:
//	  - [[80, 0.2, 1.0, 211], [12, -0.3, -1.2, 22], [0, 0, 0, 0]]
//
// "p4" rows are (E, px, py, pz). "detector" rows are (pT, y, φ, pid) and may
// carry zero padding; Jets strips it and converts through package canon.
package dataset
