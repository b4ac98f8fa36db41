package motif

import (
	"math"

	"github.com/katalvlaran/mprof/znorm"
)

// Matches finds every window of T within opts.MaxDistance of the query
// Q, ascending by distance. An exclusion zone of ceil(len(Q)/4) is
// masked around each accepted match, so overlapping shifts of one
// occurrence produce a single hit. A nil opts means DefaultMatchOptions.
//
// A query touching a non-finite point matches nothing.
func Matches(Q, T []float64, opts *MatchOptions) ([]Match, error) {
	o := DefaultMatchOptions()
	if opts != nil {
		o = *opts
	}
	m := len(Q)
	if m < 3 || m > len(T) {
		return nil, ErrWindowSize
	}

	μQs, σQs := znorm.MeanStd(Q, m)
	μQ, σQ := μQs[0], σQs[0]
	mean, std := znorm.MeanStd(T, m)

	qt := znorm.SlidingDotProduct(znorm.Sanitize(Q), znorm.Sanitize(T))
	D := znorm.DistanceProfile(m, qt, μQ, σQ, mean, std)

	maxDist := o.MaxDistance
	if maxDist <= 0 {
		maxDist = autoThreshold(D)
	}

	excl := znorm.ExclusionZone(m)
	var out []Match
	for o.MaxMatches <= 0 || len(out) < o.MaxMatches {
		j := argmin(D)
		if j < 0 || D[j] > maxDist {
			break
		}
		out = append(out, Match{Index: j, Distance: D[j]})
		znorm.ApplyExclusionZone(D, j, excl, math.Inf(1))
	}
	return out, nil
}

// Motifs extracts up to opts.MaxMotifs motif groups from the top-1
// matrix profile P of T. Groups come out in discovery order: smallest
// profile minimum first. A nil opts means DefaultMotifOptions.
func Motifs(T, P []float64, m int, opts *MotifOptions) ([]Motif, error) {
	o := DefaultMotifOptions()
	if opts != nil {
		o = *opts
	}
	if m < 3 || m > len(T) {
		return nil, ErrWindowSize
	}
	if len(P) != len(T)-m+1 {
		return nil, ErrProfileLength
	}
	if o.MaxMotifs < 1 {
		o.MaxMotifs = 1
	}
	if o.MinNeighbors < 1 {
		o.MinNeighbors = 1
	}

	work := append([]float64(nil), P...)
	cutoff := o.Cutoff
	if cutoff <= 0 {
		cutoff = autoThreshold(work)
	}

	excl := znorm.ExclusionZone(m)
	var out []Motif
	for len(out) < o.MaxMotifs {
		rep := argmin(work)
		if rep < 0 || work[rep] > cutoff {
			break
		}

		ms, err := Matches(T[rep:rep+m], T, &MatchOptions{
			MaxDistance: o.MaxDistance,
			MaxMatches:  o.MaxMatches,
		})
		if err != nil {
			return nil, err
		}

		// Claim the representative and every occurrence, found or not,
		// so the next group starts elsewhere.
		znorm.ApplyExclusionZone(work, rep, excl, math.Inf(1))
		for _, hit := range ms {
			znorm.ApplyExclusionZone(work, hit.Index, excl, math.Inf(1))
		}

		if len(ms)-1 < o.MinNeighbors {
			continue
		}
		g := Motif{
			Indices:   make([]int, len(ms)),
			Distances: make([]float64, len(ms)),
		}
		for i, hit := range ms {
			g.Indices[i] = hit.Index
			g.Distances[i] = hit.Distance
		}
		out = append(out, g)
	}
	return out, nil
}

// Discords extracts up to opts.MaxDiscords anomalies from the top-1
// matrix profile P of T: the finite profile maxima, separated by an
// exclusion zone. Windows with no valid neighbor (+Inf) are skipped —
// they are degenerate, not anomalous. A nil opts means
// DefaultDiscordOptions.
func Discords(T, P []float64, m int, opts *DiscordOptions) ([]Discord, error) {
	o := DefaultDiscordOptions()
	if opts != nil {
		o = *opts
	}
	if m < 3 || m > len(T) {
		return nil, ErrWindowSize
	}
	if len(P) != len(T)-m+1 {
		return nil, ErrProfileLength
	}
	if o.MaxDiscords < 1 {
		o.MaxDiscords = 1
	}

	work := append([]float64(nil), P...)
	excl := znorm.ExclusionZone(m)

	var out []Discord
	for len(out) < o.MaxDiscords {
		best := -1
		for j, d := range work {
			if math.IsInf(d, 0) || math.IsNaN(d) {
				continue
			}
			if best < 0 || d > work[best] {
				best = j
			}
		}
		if best < 0 {
			break
		}
		out = append(out, Discord{Index: best, Distance: work[best]})
		znorm.ApplyExclusionZone(work, best, excl, math.Inf(1))
	}
	return out, nil
}

// autoThreshold is the default acceptance bound over a distance vector:
// max(mean − 2·std, min) across its finite entries, or +Inf when no
// finite entry exists (so nothing is accepted).
func autoThreshold(D []float64) float64 {
	var sum float64
	var cnt int
	best := math.Inf(1)
	for _, d := range D {
		if math.IsInf(d, 0) || math.IsNaN(d) {
			continue
		}
		sum += d
		cnt++
		if d < best {
			best = d
		}
	}
	if cnt == 0 {
		return math.Inf(1)
	}
	mu := sum / float64(cnt)
	var ssd float64
	for _, d := range D {
		if math.IsInf(d, 0) || math.IsNaN(d) {
			continue
		}
		ssd += (d - mu) * (d - mu)
	}
	sd := math.Sqrt(ssd / float64(cnt))
	if t := mu - 2*sd; t > best {
		return t
	}
	return best
}

// argmin returns the position of the smallest finite entry of D (first
// occurrence on ties), or −1 when every entry is +Inf or NaN.
func argmin(D []float64) int {
	best := -1
	for j, d := range D {
		if math.IsInf(d, 0) || math.IsNaN(d) {
			continue
		}
		if best < 0 || d < D[best] {
			best = j
		}
	}
	return best
}
