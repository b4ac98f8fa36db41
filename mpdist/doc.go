// Package mpdist computes the matrix-profile distance (MPdist) between
// two time series.
//
// 🚀 What is MPdist?
//
//	A shape-based distance: two series are close when many of their
//	subsequences look alike, regardless of where those subsequences
//	occur. It is robust to spikes, dropouts and misalignment, and unlike
//	a pointwise metric it compares series of different lengths.
//
// Algorithm Outline:
//  1. Join every window of A against B and every window of B against A
//     (z-normalized nearest-neighbor distances, no exclusion zone).
//  2. Concatenate both join profiles into P_ABBA and sort ascending.
//  3. Report the entry at rank k = ceil(p·(len(A)+len(B))), clamped to
//     the last rank, where p is the Percentage option (default 0.05).
//     Should that entry be non-finite, fall back to the largest finite
//     entry; +Inf only when no finite distance exists at all.
//
// The sparse rank (rather than the maximum) is what makes the measure
// forgiving: up to p of the subsequences may disagree wildly without
// moving the reported distance.
//
// Complexity: O(len(A)·len(B)) time via the STOMP join recurrence.
package mpdist
