// Package mprof is your in-memory toolbox for matrix-profile analysis of
// numeric time series — from batch profiling to streaming updates, motif
// discovery and series-to-series distances.
//
// 🚀 What is mprof?
//
//	A pure-Go library built around the matrix profile: for every
//	fixed-length subsequence of a series, the z-normalized distance to
//	its nearest neighbor(s) elsewhere in the series, plus where that
//	neighbor lives. On top of that single idea it offers:
//		• Batch profiles: exact top-k STOMP with causal (left) indices
//		• Streaming: O(n) per-point incremental updates, with or without
//		  eviction of the oldest point (a sliding window over a stream)
//		• Motifs & discords: repeated patterns and anomalies from a profile
//		• MPdist: a shape-based distance between two whole series
//
// ✨ Why choose mprof?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Numerically careful – sentinel handling for NaN/Inf input, constant
//     windows and near-zero denominators, matching the published algorithms
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed traversal order and tie rules, so streaming
//     updates and batch recomputation agree exactly
//
// Under the hood, everything is organized under five subpackages:
//
//	znorm/  — rolling statistics, sliding dot products, distance profiles
//	stomp/  — exact batch top-k matrix profile (the O(n²) baseline)
//	stream/ — incremental engine: append one point, stay correct
//	motif/  — motif, discord and query-match search over a fixed profile
//	mpdist/ — matrix-profile distance between two series
//
// Quick ASCII example:
//
//	T: ──╱╲──────╱╲──
//	       └──────┘
//	    the two bumps are each other's nearest neighbors: a motif
//
// Dive into each package's doc.go for algorithm outlines, complexity
// notes and runnable examples.
//
//	go get github.com/katalvlaran/mprof
package mprof
