package stomp

import (
	"math"

	"github.com/katalvlaran/mprof/znorm"
)

// Profile is the result of a batch matrix-profile computation.
//
// P and I hold one row per subsequence: the k smallest z-normalized
// distances to other subsequences, ascending, with aligned neighbor
// indices. Unused slots are +Inf / −1. LeftI holds the best causal
// neighbor per subsequence (index ≤ own position, outside the exclusion
// zone), or −1 when none qualifies; it is nil for AB joins, where
// causality has no meaning.
type Profile struct {
	P     [][]float64
	I     [][]int
	LeftI []int
}

// Compute returns the exact top-k matrix profile of T for window length
// m, using the default exclusion zone ceil(m/4). Non-finite points in T
// are tolerated: windows touching them rank last (+Inf) everywhere.
func Compute(T []float64, m, k int) (*Profile, error) {
	if m < 3 || m > len(T) {
		return nil, ErrWindowSize
	}
	if k < 1 {
		return nil, ErrTopK
	}

	n := len(T)
	l := n - m + 1
	excl := znorm.ExclusionZone(m)

	mean, std := znorm.MeanStd(T, m)
	clean := znorm.Sanitize(T)

	prof := &Profile{
		P:     newDistRows(l, k),
		I:     newIndexRows(l, k),
		LeftI: make([]int, l),
	}

	// First row directly, later rows by the STOMP recurrence. The saved
	// first row doubles as the column of QTᵢ[0] values by symmetry.
	first := znorm.SlidingDotProduct(clean[:m], clean)
	qt := make([]float64, l)
	copy(qt, first)

	for i := 0; i < l; i++ {
		if i > 0 {
			for j := l - 1; j >= 1; j-- {
				qt[j] = qt[j-1] - clean[j-1]*clean[i-1] + clean[j+m-1]*clean[i+m-1]
			}
			qt[0] = first[i]
		}

		D := znorm.DistanceProfile(m, qt, mean[i], std[i], mean, std)
		znorm.ApplyExclusionZone(D, i, excl, math.Inf(1))

		row, idx := prof.P[i], prof.I[i]
		for j, d := range D {
			if d < row[k-1] {
				at := znorm.SearchRight(row, d)
				znorm.ShiftInsert(row, at, d)
				znorm.ShiftInsertInt(idx, at, j)
			}
		}
		prof.LeftI[i] = argminLeft(D, i)
	}
	return prof, nil
}

// ComputeAB returns, for every window of A, its top-k nearest windows in
// B. No exclusion zone applies — the two series are distinct — and the
// returned Profile carries no causal indices.
func ComputeAB(A, B []float64, m, k int) (*Profile, error) {
	if m < 3 || m > len(A) || m > len(B) {
		return nil, ErrWindowSize
	}
	if k < 1 {
		return nil, ErrTopK
	}

	lA := len(A) - m + 1
	lB := len(B) - m + 1

	meanA, stdA := znorm.MeanStd(A, m)
	meanB, stdB := znorm.MeanStd(B, m)
	cleanA := znorm.Sanitize(A)
	cleanB := znorm.Sanitize(B)

	prof := &Profile{
		P: newDistRows(lA, k),
		I: newIndexRows(lA, k),
	}

	// QTᵢ[0] comes from the transposed first row: dot(B[0:m], A window i).
	firstT := znorm.SlidingDotProduct(cleanB[:m], cleanA)
	qt := znorm.SlidingDotProduct(cleanA[:m], cleanB)

	for i := 0; i < lA; i++ {
		if i > 0 {
			for j := lB - 1; j >= 1; j-- {
				qt[j] = qt[j-1] - cleanB[j-1]*cleanA[i-1] + cleanB[j+m-1]*cleanA[i+m-1]
			}
			qt[0] = firstT[i]
		}

		D := znorm.DistanceProfile(m, qt, meanA[i], stdA[i], meanB, stdB)

		row, idx := prof.P[i], prof.I[i]
		for j, d := range D {
			if d < row[k-1] {
				at := znorm.SearchRight(row, d)
				znorm.ShiftInsert(row, at, d)
				znorm.ShiftInsertInt(idx, at, j)
			}
		}
	}
	return prof, nil
}

// argminLeft returns the index of the smallest entry of D at or before
// position i (first occurrence on ties), or −1 when every candidate is
// +Inf. Entries inside the exclusion zone are already masked.
func argminLeft(D []float64, i int) int {
	best := -1
	bestD := math.Inf(1)
	for j := 0; j <= i; j++ {
		if D[j] < bestD {
			best, bestD = j, D[j]
		}
	}
	return best
}

func newDistRows(rows, k int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		row := make([]float64, k)
		for j := range row {
			row[j] = math.Inf(1)
		}
		out[i] = row
	}
	return out
}

func newIndexRows(rows, k int) [][]int {
	out := make([][]int, rows)
	for i := range out {
		row := make([]int, k)
		for j := range row {
			row[j] = -1
		}
		out[i] = row
	}
	return out
}
