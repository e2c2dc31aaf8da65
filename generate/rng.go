// SPDX-License-Identifier: MIT
// Package: generate
//
// Deterministic random streams.
//
// Policy:
//   - seed == 0 ⇒ defaultSeed; every other seed is used verbatim.
//   - jet i draws from a PCG stream keyed by two SplitMix64 mixes of
//     (seed, i); streams never share state, so generation order is irrelevant.
//   - *rand.Rand is not goroutine-safe; each jet owns its stream.

package generate

import "math/rand/v2"

// defaultSeed replaces a zero seed.
const defaultSeed uint64 = 1

func normalizeSeed(seed uint64) uint64 {
	if seed == 0 {
		return defaultSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// jetSource returns the PCG source of jet index under seed.
func jetSource(seed uint64, index int) *rand.PCG {
	s := uint64(index) << 1

	return rand.NewPCG(deriveSeed(seed, s), deriveSeed(seed, s|1))
}
