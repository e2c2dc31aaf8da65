// SPDX-License-Identifier: MIT

// Package compare measures how far a simulated observable distribution lies
// from a reference one.
//
// For each observable it reports per-sample summaries, the two-sample
// Kolmogorov–Smirnov statistic, unit-sum histograms on a shared binning and
// the symmetric χ² shape distance Σ (sᵢ−rᵢ)²/(sᵢ+rᵢ) between them. Non-finite
// values are counted and excluded. WritePlot renders both histograms as step
// lines into a PNG.
package compare
