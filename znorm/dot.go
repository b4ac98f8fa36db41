package znorm

import "math"

// SlidingDotProduct computes the dot product of the query window Q
// against every length-len(Q) window of T. The result has
// len(T)−len(Q)+1 entries; entry i is Σ Q[j]·T[i+j].
//
// Callers are expected to pass series with non-finite points already
// replaced by 0 (see MeanStd); the kernel itself is plain arithmetic.
//
// Preconditions: 1 ≤ len(Q) ≤ len(T). Violations yield an empty result.
func SlidingDotProduct(Q, T []float64) []float64 {
	m, n := len(Q), len(T)
	if m < 1 || m > n {
		return nil
	}
	out := make([]float64, n-m+1)
	for i := range out {
		var acc float64
		for j := 0; j < m; j++ {
			acc += Q[j] * T[i+j]
		}
		out[i] = acc
	}
	return out
}

// Dot returns the plain dot product of two equal-length slices.
func Dot(a, b []float64) float64 {
	var acc float64
	for i := range a {
		acc += a[i] * b[i]
	}
	return acc
}

// Sanitize copies T with non-finite points replaced by 0 — the storage
// convention every profile algorithm in this module shares. Which
// windows were touched by the replacement is tracked separately, via
// the MeanStd sentinels or an explicit finiteness mask.
func Sanitize(T []float64) []float64 {
	out := make([]float64, len(T))
	for i, v := range T {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[i] = v
	}
	return out
}
