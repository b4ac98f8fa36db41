package znorm

import "math"

// SquaredDistance converts one raw dot product into a squared
// z-normalized Euclidean distance between two length-m windows with
// statistics (μQ, σQ) and (μT, σT).
//
// Degenerate cases, in evaluation order:
//   - either window carries the non-finite sentinel (μ=+Inf): +Inf
//   - both windows constant (σ below StdDevThreshold): 0
//   - exactly one window constant: m
//
// Otherwise the Pearson correlation ρ = (qt − m·μQ·μT) / (m·σQ·σT) is
// clamped to ≤ 1 and the result is 2m(1−ρ), floored at 0 so rounding can
// never produce a negative squared distance.
func SquaredDistance(m int, qt, μQ, σQ, μT, σT float64) float64 {
	if math.IsInf(μQ, 1) || math.IsInf(μT, 1) {
		return math.Inf(1)
	}
	qConst := σQ < StdDevThreshold
	tConst := σT < StdDevThreshold
	switch {
	case qConst && tConst:
		return 0
	case qConst || tConst:
		return float64(m)
	}

	denom := float64(m) * σQ * σT
	if denom < denomThreshold {
		denom = denomThreshold
	}
	ρ := (qt - float64(m)*μQ*μT) / denom
	if ρ > 1 {
		ρ = 1
	}
	d2 := 2 * float64(m) * (1 - ρ)
	if d2 < 0 {
		return 0
	}
	return d2
}

// DistanceProfile converts a full vector of dot products QT (one window,
// with statistics μQ/σQ, against every window of a series with per-window
// statistics M/Σ) into a z-normalized Euclidean distance profile.
// The result is a fresh slice of len(QT).
func DistanceProfile(m int, QT []float64, μQ, σQ float64, M, Σ []float64) []float64 {
	D := make([]float64, len(QT))
	for i := range QT {
		D[i] = math.Sqrt(SquaredDistance(m, QT[i], μQ, σQ, M[i], Σ[i]))
	}
	return D
}

// ApplyExclusionZone masks the band [center−width, center+width] of D
// in place with fill, clipping at the slice bounds. Used to remove
// trivially-close self-matches from a distance profile before any
// nearest-neighbor competition.
func ApplyExclusionZone(D []float64, center, width int, fill float64) {
	lo := center - width
	if lo < 0 {
		lo = 0
	}
	hi := center + width
	if hi > len(D)-1 {
		hi = len(D) - 1
	}
	for i := lo; i <= hi; i++ {
		D[i] = fill
	}
}
