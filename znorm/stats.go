package znorm

import "math"

const (
	// exclZoneDenom divides the window length to obtain the default
	// exclusion-zone width: ceil(m / exclZoneDenom).
	exclZoneDenom = 4.0

	// StdDevThreshold is the standard deviation below which a window is
	// treated as constant for distance purposes.
	StdDevThreshold = 1e-7

	// denomThreshold guards the correlation denominator against division
	// by a vanishing value.
	denomThreshold = 1e-14
)

// ExclusionZone returns the half-width of the exclusion zone for window
// length m: ceil(m / 4). Neighbors closer than this to a subsequence's
// own position are trivial matches and must be masked.
func ExclusionZone(m int) int {
	return int(math.Ceil(float64(m) / exclZoneDenom))
}

// MeanStd computes the rolling mean and population standard deviation of
// every length-m window of T.
//
// A window containing at least one non-finite point receives the sentinel
// pair μ=+Inf, σ=NaN; non-finite points are treated as 0 in the arithmetic
// of the remaining windows, mirroring how the profile engines store them.
//
// Each window is computed independently with a direct two-pass loop rather
// than a running-sum recurrence, so a window's statistics are identical no
// matter whether they are computed in bulk here or one window at a time by
// a streaming caller. Time O(n·m), space O(n−m+1).
//
// Preconditions: 1 ≤ m ≤ len(T). Violations yield empty results.
func MeanStd(T []float64, m int) (mean, std []float64) {
	n := len(T)
	if m < 1 || m > n {
		return nil, nil
	}
	l := n - m + 1
	mean = make([]float64, l)
	std = make([]float64, l)

	for i := 0; i < l; i++ {
		finite := true
		var sum float64
		for j := i; j < i+m; j++ {
			v := T[j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				finite = false
				v = 0
			}
			sum += v
		}
		if !finite {
			mean[i] = math.Inf(1)
			std[i] = math.NaN()
			continue
		}
		mu := sum / float64(m)
		var ssd float64 // sum of squared deviations
		for j := i; j < i+m; j++ {
			d := T[j] - mu
			ssd += d * d
		}
		mean[i] = mu
		std[i] = math.Sqrt(ssd / float64(m))
	}
	return mean, std
}
