// SPDX-License-Identifier: MIT

// Package substructure implements N-subjettiness proxies and energy
// correlation functions of a jet's constituents.
//
// τ_k here is a proxy, not the textbook N-subjettiness: the k axes are the k
// hardest constituents themselves (descending pT, ties to the higher index)
// rather than axes obtained by minimising τ_k. The proxy values are the
// contract; callers comparing against them rely on this exact selection.
//
// Costs:
//
//   - TauN: O(N log N + N·k)
//   - E2:   O(N²)
//   - E3:   O(N³) over every unordered triple i<j<k, no approximation
//   - C2, D2: one E2 and one E3 sharing a single ΔR table
package substructure
