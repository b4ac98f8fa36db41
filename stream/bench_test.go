package stream_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mprof/stream"
)

// benchmarkUpdate seeds a Stream of length n and measures one Update
// per iteration, feeding reproducible pseudo-random points.
func benchmarkUpdate(b *testing.B, n, m, k int, egress bool) {
	rng := rand.New(rand.NewSource(77))
	T := make([]float64, n)
	for i := range T {
		T[i] = rng.Float64()*2000 - 1000
	}

	opts := stream.Options{Egress: egress, K: k}
	st, err := stream.New(T, m, &opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer() // ignore the O(n²) seeding
	for i := 0; i < b.N; i++ {
		st.Update(rng.Float64()*2000 - 1000)
	}
}

// BenchmarkUpdate_Egress1k measures the fixed-length path on a 1000-point buffer.
func BenchmarkUpdate_Egress1k(b *testing.B) {
	benchmarkUpdate(b, 1000, 50, 1, true)
}

// BenchmarkUpdate_Egress10k measures the fixed-length path on a 10000-point buffer.
func BenchmarkUpdate_Egress10k(b *testing.B) {
	benchmarkUpdate(b, 10000, 100, 1, true)
}

// BenchmarkUpdate_EgressTopK measures the fixed-length path with k=4.
func BenchmarkUpdate_EgressTopK(b *testing.B) {
	benchmarkUpdate(b, 1000, 50, 4, true)
}

// BenchmarkUpdate_Append1k measures the growing path starting from 1000 points.
func BenchmarkUpdate_Append1k(b *testing.B) {
	benchmarkUpdate(b, 1000, 50, 1, false)
}
