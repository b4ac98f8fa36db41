package motif

// Match is one occurrence of a query window in a series.
type Match struct {
	Index    int     // window start position in the series
	Distance float64 // z-normalized distance to the query
}

// Motif is one group of mutually similar subsequences. Indices[0] is
// the representative (the profile minimum that spawned the group) and
// Distances[0] is therefore 0; the remaining entries are its matches,
// ascending by distance.
type Motif struct {
	Indices   []int
	Distances []float64
}

// Discord is one anomaly: a subsequence whose nearest neighbor is
// unusually far away.
type Discord struct {
	Index    int     // window start position
	Distance float64 // profile value: distance to its nearest neighbor
}

// MatchOptions configures Matches.
//
// Fields:
//   - MaxDistance — accept windows at most this far from the query.
//     0 means automatic: max(mean(D) − 2·std(D), min(D)) over the
//     finite entries of the query's distance profile D.
//   - MaxMatches — cap on returned matches; 0 means unlimited.
type MatchOptions struct {
	MaxDistance float64
	MaxMatches  int
}

// DefaultMatchOptions returns the automatic-threshold, unlimited-count
// configuration.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{}
}

// MotifOptions configures Motifs.
//
// Fields:
//   - MaxMotifs    — number of motif groups to return (default 1).
//   - MinNeighbors — a group must have at least this many matches
//     besides its representative to count (default 1).
//   - MaxMatches   — cap on occurrences per group; 0 means unlimited.
//   - MaxDistance  — per-group match threshold; 0 means automatic, as
//     in MatchOptions.
//   - Cutoff       — stop once the profile minimum exceeds this; 0
//     means automatic: max(mean(P) − 2·std(P), min(P)) over the finite
//     profile entries.
type MotifOptions struct {
	MaxMotifs    int
	MinNeighbors int
	MaxMatches   int
	MaxDistance  float64
	Cutoff       float64
}

// DefaultMotifOptions returns the single-motif, automatic-threshold
// configuration.
func DefaultMotifOptions() MotifOptions {
	return MotifOptions{MaxMotifs: 1, MinNeighbors: 1}
}

// DiscordOptions configures Discords.
//
// Fields:
//   - MaxDiscords — number of anomalies to return (default 1).
type DiscordOptions struct {
	MaxDiscords int
}

// DefaultDiscordOptions returns the single-discord configuration.
func DefaultDiscordOptions() DiscordOptions {
	return DiscordOptions{MaxDiscords: 1}
}
