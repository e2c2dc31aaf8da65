// SPDX-License-Identifier: MIT

// Package generate produces deterministic synthetic jets for tests, demos and
// benchmarks. It is not an event generator: nothing here models QCD.
//
// Two shapes are available:
//
//   - Isotropic: four-momenta with Gaussian momentum components and a small
//     random mass, emitted as (E, px, py, pz) rows.
//   - Collimated: massless constituents scattered around a random axis with
//     exponentially falling pT, emitted as padded (pT, y, φ, pid) detector rows.
//
// Every jet draws from its own substream derived from (seed, index), so jet i
// is the same whether it is generated alone, in a batch or out of order.
package generate
