package stream

// Options configures a Stream.
//
// Fields:
//   - Egress — when true (the default), every Update drops the oldest
//     point so the series keeps a fixed length: a sliding window over an
//     unbounded stream. When false the series grows by one per Update.
//   - K — how many nearest neighbors to track per subsequence. K=1 is
//     the classic matrix profile; larger K costs proportionally more
//     time and memory per Update.
type Options struct {
	Egress bool
	K      int
}

// DefaultOptions returns the canonical configuration: egress enabled,
// top-1 profile.
func DefaultOptions() Options {
	return Options{Egress: true, K: 1}
}
