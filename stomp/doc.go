// Package stomp computes exact batch top-k matrix profiles with the
// STOMP recurrence.
//
// Algorithm Outline:
//  1. Compute per-window rolling statistics for T (znorm.MeanStd).
//  2. Compute the first distance-profile row from a sliding dot product
//     of window 0 against every window.
//  3. For each subsequent row i, advance the dot-product vector with the
//     O(1)-per-cell recurrence
//     QTᵢ[j] = QTᵢ₋₁[j−1] − T[j−1]·T[i−1] + T[j+m−1]·T[i+m−1],
//     seeding QTᵢ[0] from the saved first row (dot products are
//     symmetric in the two windows).
//  4. Convert each row into z-normalized distances, mask the exclusion
//     zone around i, and fold every candidate into a ranked top-k list
//     via insert-after-equal sorted insertion.
//  5. Record, per row, the best causal neighbor (index ≤ i outside the
//     exclusion zone) for left-profile seeding.
//
// The scan order (ascending j) and the tie rule are identical to the
// streaming engine in mprof/stream, so a profile computed here matches
// one grown incrementally, entry for entry.
//
// Complexity:
//
//	Time   = O(n²) for n−m+1 windows
//	Memory = O(n·k) output + O(n) scratch
//
// AB joins (every window of A against series B, no exclusion zone) are
// available through ComputeAB and back the MPdist measure.
package stomp
