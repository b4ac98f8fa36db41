// Package znorm provides the numeric primitives behind matrix-profile
// computation: rolling window statistics, sliding dot products,
// z-normalized distance profiles, exclusion-zone masking and ranked
// top-k insertion.
//
// 🚀 What lives here?
//
//	Every matrix-profile algorithm — batch or streaming — reduces to the
//	same handful of kernels:
//	  • MeanStd            — per-window mean and population std
//	  • SlidingDotProduct  — one window dotted against every window
//	  • SquaredDistance    — z-normalized distance from a dot product
//	  • DistanceProfile    — a whole profile of such distances
//	  • ApplyExclusionZone — mask trivial self-matches
//	  • SearchRight / ShiftInsert — ranked top-k list maintenance
//
// Sentinel policy:
//
//	A window touching a non-finite point (NaN or ±Inf) receives the
//	sentinel pair μ=+Inf, σ=NaN, and every distance involving it is +Inf.
//	Near-constant windows (σ below StdDevThreshold) compare as distance 0
//	to other constant windows and √m to everything else. These rules keep
//	degenerate input out of nearest-neighbor rankings without ever
//	producing an error.
//
// All functions are pure, allocation-light, and deterministic: fixed
// traversal order, no randomness, no global state.
package znorm
