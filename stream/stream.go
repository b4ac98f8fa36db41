package stream

import (
	"math"

	"github.com/katalvlaran/mprof/stomp"
	"github.com/katalvlaran/mprof/znorm"
)

// Stream is the mutable state of an incremental top-k matrix profile.
// Create one with New, feed it points with Update, read results through
// the accessor methods. A Stream is single-writer; see the package
// documentation for the concurrency contract.
type Stream struct {
	m      int // window length
	k      int // neighbors tracked per subsequence
	excl   int // exclusion-zone half-width, ceil(m/4)
	egress bool

	t      []float64 // series buffer; non-finite points stored as 0
	finite []bool    // finiteness mask aligned with t
	mean   []float64 // per-window rolling mean, +Inf sentinel
	std    []float64 // per-window population std, NaN sentinel
	qt     []float64 // newest window dotted against every window
	qtNew  []float64 // scratch for the next qt (egress mode only)

	p     [][]float64 // ascending top-k distances per subsequence
	i     [][]int     // neighbor indices aligned with p
	leftP []float64   // causal top-1 distances
	leftI []int       // causal top-1 indices

	appended int // points appended since seeding; offsets indices under egress
}

// New seeds a Stream from an initial series T and window length m. The
// seed profile comes from the exact batch algorithm, so a fresh Stream
// reports exactly what stomp.Compute reports for T.
//
// Configuration errors are the only failure mode: ErrWindowSize unless
// 3 ≤ m ≤ len(T), ErrTopK unless opts.K ≥ 1. A nil opts means
// DefaultOptions.
func New(T []float64, m int, opts *Options) (*Stream, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if m < 3 || m > len(T) {
		return nil, ErrWindowSize
	}
	if o.K < 1 {
		return nil, ErrTopK
	}

	prof, err := stomp.Compute(T, m, o.K)
	if err != nil {
		return nil, err
	}

	n := len(T)
	l := n - m + 1
	s := &Stream{m: m, k: o.K, excl: znorm.ExclusionZone(m), egress: o.Egress}

	s.t = make([]float64, n)
	s.finite = make([]bool, n)
	for idx, v := range T {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue // stored as 0, masked as non-finite
		}
		s.t[idx] = v
		s.finite[idx] = true
	}

	s.mean, s.std = znorm.MeanStd(T, m)
	s.p = prof.P
	s.i = prof.I
	s.leftI = prof.LeftI
	s.leftP = make([]float64, l)
	for idx := range s.leftP {
		s.leftP[idx] = math.Inf(1)
	}

	// Causal backfill. Where the causal neighbor is also the top-1
	// neighbor its distance is already on hand; otherwise recompute it
	// from the dot product of the two windows. The two indices need not
	// coincide: the unrestricted nearest neighbor may lie to the right.
	for idx, j := range s.leftI {
		switch {
		case j < 0:
			// no causal neighbor, leftP stays +Inf
		case j == s.i[idx][0]:
			s.leftP[idx] = s.p[idx][0]
		default:
			qt := znorm.Dot(s.t[idx:idx+m], s.t[j:j+m])
			s.leftP[idx] = math.Sqrt(znorm.SquaredDistance(
				m, qt, s.mean[idx], s.std[idx], s.mean[j], s.std[j]))
		}
	}

	s.qt = znorm.SlidingDotProduct(s.t[n-m:], s.t)
	if s.egress {
		s.qtNew = make([]float64, l)
	}
	return s, nil
}

// Update appends the point t to the series and brings the whole profile
// up to date. In egress mode the oldest point is dropped in the same
// step, keeping the series length constant.
//
// Update never fails: any finite or non-finite scalar is accepted.
// Non-finite points are stored as 0 and masked, which forces every
// distance touching their windows to +Inf.
func (s *Stream) Update(t float64) {
	if s.egress {
		s.updateEgress(t)
	} else {
		s.updateAppend(t)
	}
}

// updateEgress is the fixed-length path: shift every buffer left by one
// slot and rebuild the freed tail slot in place.
func (s *Stream) updateEgress(t float64) {
	n := len(s.t)
	l := n - s.m // slot of the newest subsequence after the shift

	copy(s.t, s.t[1:])
	copy(s.finite, s.finite[1:])
	copy(s.qt, s.qt[1:])
	copy(s.mean, s.mean[1:])
	copy(s.std, s.std[1:])
	copy(s.leftP, s.leftP[1:])
	copy(s.leftI, s.leftI[1:])
	rotateRows(s.p)
	rotateRowsInt(s.i)
	s.appended++

	// The first element of the previous newest window; it leaves the
	// dot-product alignment as the window advances. With a single
	// subsequence (l == 0) the recurrence has no interior positions.
	var tDrop float64
	if l > 0 {
		tDrop = s.t[l-1]
	}

	if math.IsNaN(t) || math.IsInf(t, 0) {
		s.finite[n-1] = false
		t = 0
	} else {
		s.finite[n-1] = true
	}
	s.t[n-1] = t

	μQ, σQ := s.newestWindowStats()
	s.mean[l] = μQ
	s.std[l] = σQ

	for j := 1; j <= l; j++ {
		s.qtNew[j] = s.qt[j-1] - s.t[j-1]*tDrop + s.t[j-1+s.m]*t
	}
	s.qtNew[0] = znorm.Dot(s.t[:s.m], s.t[l:l+s.m])

	D := znorm.DistanceProfile(s.m, s.qtNew, μQ, σQ, s.mean, s.std)
	znorm.ApplyExclusionZone(D, l, s.excl, math.Inf(1))

	// Offer the newest window to every existing subsequence. Its
	// absolute identity is slot l plus the number of points appended,
	// so indices stay meaningful after the buffer slides past them.
	for i := 0; i < l; i++ {
		if D[i] < s.p[i][s.k-1] {
			at := znorm.SearchRight(s.p[i], D[i])
			znorm.ShiftInsert(s.p[i], at, D[i])
			znorm.ShiftInsertInt(s.i[i], at, l+s.appended)
		}
	}

	// The newest window's own row, rebuilt from its distance profile.
	row, idx := s.p[l], s.i[l]
	fillInf(row)
	fillNegOne(idx)
	for j, d := range D {
		if d < row[s.k-1] {
			at := znorm.SearchRight(row, d)
			znorm.ShiftInsert(row, at, d)
			znorm.ShiftInsertInt(idx, at, j+s.appended)
		}
	}

	// Every other subsequence lies to the newest one's left.
	s.leftP[l] = row[0]
	s.leftI[l] = idx[0]

	copy(s.qt, s.qtNew)
}

// updateAppend is the growing path: every buffer gains one slot and no
// point is evicted, so stored indices are already absolute.
func (s *Stream) updateAppend(t float64) {
	n := len(s.t)
	l := n - s.m + 1 // slot the newest subsequence will occupy

	finite := !(math.IsNaN(t) || math.IsInf(t, 0))
	if !finite {
		t = 0
	}
	s.t = append(s.t, t)
	s.finite = append(s.finite, finite)

	μQ, σQ := s.newestWindowStats()
	s.mean = append(s.mean, μQ)
	s.std = append(s.std, σQ)

	// tDrop still drives the recurrence even though the point stays in
	// storage: it slides out of the dot-product window, not the series.
	tDrop := s.t[l-1]
	qtNew := make([]float64, l+1)
	for j := 1; j <= l; j++ {
		qtNew[j] = s.qt[j-1] - s.t[j-1]*tDrop + s.t[j-1+s.m]*t
	}
	qtNew[0] = znorm.Dot(s.t[:s.m], s.t[l:l+s.m])

	D := znorm.DistanceProfile(s.m, qtNew, μQ, σQ, s.mean, s.std)
	znorm.ApplyExclusionZone(D, l, s.excl, math.Inf(1))

	for i := 0; i < l; i++ {
		if D[i] < s.p[i][s.k-1] {
			at := znorm.SearchRight(s.p[i], D[i])
			znorm.ShiftInsert(s.p[i], at, D[i])
			znorm.ShiftInsertInt(s.i[i], at, l)
		}
	}

	row := make([]float64, s.k)
	idx := make([]int, s.k)
	fillInf(row)
	fillNegOne(idx)
	for j, d := range D {
		if d < row[s.k-1] {
			at := znorm.SearchRight(row, d)
			znorm.ShiftInsert(row, at, d)
			znorm.ShiftInsertInt(idx, at, j)
		}
	}
	s.p = append(s.p, row)
	s.i = append(s.i, idx)
	s.leftP = append(s.leftP, row[0])
	s.leftI = append(s.leftI, idx[0])
	s.qt = qtNew
}

// newestWindowStats returns μ/σ of the last m points, or the sentinel
// pair when the window touches a non-finite point.
func (s *Stream) newestWindowStats() (float64, float64) {
	n := len(s.t)
	for _, ok := range s.finite[n-s.m:] {
		if !ok {
			return math.Inf(1), math.NaN()
		}
	}
	mu, sd := znorm.MeanStd(s.t[n-s.m:], s.m)
	return mu[0], sd[0]
}

// rotateRows moves every row header one slot left and recycles the old
// first row's backing array as the new last row.
func rotateRows(rows [][]float64) {
	first := rows[0]
	copy(rows, rows[1:])
	rows[len(rows)-1] = first
}

func rotateRowsInt(rows [][]int) {
	first := rows[0]
	copy(rows, rows[1:])
	rows[len(rows)-1] = first
}

func fillInf(a []float64) {
	for i := range a {
		a[i] = math.Inf(1)
	}
}

func fillNegOne(a []int) {
	for i := range a {
		a[i] = -1
	}
}
