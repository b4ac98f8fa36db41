// Package motif discovers motifs (repeated patterns), discords
// (anomalies) and query matches on top of a precomputed matrix profile.
//
// 🚀 How it works
//
//	A matrix profile already encodes where the interesting structure is:
//	its minima are subsequences with a very close twin somewhere else
//	(motifs), its maxima are subsequences unlike anything else
//	(discords). This package turns those extremes into ranked results:
//
//	  • Matches — all windows of a series within MaxDistance of a query
//	    window, best first, with an exclusion zone around every accepted
//	    match so overlapping shifts of the same occurrence collapse into
//	    one hit.
//	  • Motifs  — repeatedly take the profile minimum, collect the
//	    matches of that representative subsequence, mask the claimed
//	    region, and move on to the next motif group.
//	  • Discords — repeatedly take the profile maximum with the same
//	    exclusion-zone separation.
//
// All searches are deterministic: equal distances resolve to the
// earliest position.
//
// Complexity: Matches is O(n·m); Motifs and Discords add a linear scan
// per result on top of their Matches calls.
package motif
