package znorm

import "sort"

// SearchRight returns the leftmost index at which v could be inserted
// into the ascending slice a while keeping every element ≤ v to its
// left — i.e. the index of the first element strictly greater than v.
// Equal elements stay before the new value, so a freshly inserted
// distance lands directly after any existing ties.
func SearchRight(a []float64, v float64) int {
	return sort.Search(len(a), func(i int) bool { return a[i] > v })
}

// ShiftInsert inserts v at index idx of the fixed-capacity ascending
// slice a, shifting lower-ranked entries one slot down and discarding
// the previous last element. idx must satisfy 0 ≤ idx < len(a).
func ShiftInsert(a []float64, idx int, v float64) {
	copy(a[idx+1:], a[idx:len(a)-1])
	a[idx] = v
}

// ShiftInsertInt is ShiftInsert for an index slice kept aligned with a
// ranked distance slice.
func ShiftInsertInt(a []int, idx, v int) {
	copy(a[idx+1:], a[idx:len(a)-1])
	a[idx] = v
}
