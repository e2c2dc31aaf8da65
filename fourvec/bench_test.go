// SPDX-License-Identifier: MIT

package fourvec_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/jetobsmc/fourvec"
)

// benchmarkVectors builds n reproducible vectors for the benchmarks.
func benchmarkVectors(n int) []fourvec.FourVector {
	rng := rand.New(rand.NewPCG(42, 0))
	vs := make([]fourvec.FourVector, n)
	for i := range vs {
		vs[i] = randomVector(rng)
	}

	return vs
}

// BenchmarkEtaBatch_1k measures batched pseudorapidity on 1000 vectors.
func BenchmarkEtaBatch_1k(b *testing.B) {
	vs := benchmarkVectors(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fourvec.EtaBatch(vs)
	}
}

// BenchmarkBoostToRestFrame_100 measures the boost of a 100-constituent set.
func BenchmarkBoostToRestFrame_100(b *testing.B) {
	vs := benchmarkVectors(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fourvec.BoostToRestFrame(vs)
	}
}
