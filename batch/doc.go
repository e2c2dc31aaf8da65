// SPDX-License-Identifier: MIT

// Package batch evaluates catalogued observables over many jets in parallel.
//
// Jets are independent, so Evaluate fans them out over a bounded
// errgroup.Group and writes each result row at the jet's own index. Row order
// and every value are therefore identical for any worker count. The first
// failing jet cancels the remaining work; a cancelled context stops the batch
// between jets (a single jet's observables always run to completion).
package batch
