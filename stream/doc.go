// Package stream maintains a top-k matrix profile incrementally as new
// points arrive one at a time, based on the on-line STOMPI/STAMPI
// family of algorithms.
//
// 🚀 What is a streaming matrix profile?
//
//	Given an already-correct top-k matrix profile for a series of length
//	n, one Update call produces the correct profile for the series after
//	a single point is appended — and, in egress mode, after the oldest
//	point is dropped — without recomputing anything from scratch.
//
// Algorithm Outline (per Update):
//  1. Shift (egress) or grow (no egress) every state buffer.
//  2. Refresh the newest window's rolling statistics; a window touching
//     a non-finite point carries the sentinel pair μ=+Inf, σ=NaN.
//  3. Advance the sliding dot products with the O(1)-per-cell recurrence
//     QTnew[j] = QT[j−1] − T[j−1]·tDrop + T[j+m−1]·t,
//     with a direct dot product at position 0.
//  4. Turn dot products into a z-normalized distance profile of the
//     newest window against every window, mask the exclusion zone
//     around the newest position.
//  5. Offer the newest window as a ranked neighbor to every existing
//     subsequence (strict improvement only, insert-after-equal ties),
//     then build the newest window's own top-k row from a full scan.
//  6. The newest window's causal (left) entry equals its own top-1,
//     since every other subsequence lies to its left.
//
// In egress mode reported neighbor indices stay absolute: a counter of
// points appended since seeding offsets every stored index, so a
// neighbor keeps its identity after the buffer has slid past it.
//
// Complexity: O(n) time per Update, O(n·k) state. Construction seeds
// from the exact batch profile (mprof/stomp) in O(n²).
//
// Concurrency: a Stream is single-writer. Concurrent Update calls are
// not safe; accessor snapshots are copies and safe to read while the
// next Update runs only if externally serialized against it.
package stream
