package mpdist

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/mprof/stomp"
)

// ErrWindowSize indicates a window length below 3 or above either series length.
var ErrWindowSize = errors.New("mpdist: window length must be at least 3 and at most both series lengths")

// Options configures MPdist.
//
// Fields:
//   - Percentage — the quantile of the joined profile reported as the
//     distance. 0 means the canonical default 0.05; values above 1 are
//     clamped to 1.
type Options struct {
	Percentage float64
}

// DefaultOptions returns the canonical 5% configuration.
func DefaultOptions() Options {
	return Options{Percentage: 0.05}
}

// MPdist returns the matrix-profile distance between A and B for window
// length m. A nil opts means DefaultOptions.
func MPdist(A, B []float64, m int, opts *Options) (float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Percentage <= 0 {
		o.Percentage = 0.05
	}
	if o.Percentage > 1 {
		o.Percentage = 1
	}

	ab, err := stomp.ComputeAB(A, B, m, 1)
	if err != nil {
		return 0, ErrWindowSize
	}
	ba, err := stomp.ComputeAB(B, A, m, 1)
	if err != nil {
		return 0, ErrWindowSize
	}

	abba := make([]float64, 0, len(ab.P)+len(ba.P))
	for _, row := range ab.P {
		abba = append(abba, row[0])
	}
	for _, row := range ba.P {
		abba = append(abba, row[0])
	}
	sort.Float64s(abba)

	k := int(math.Ceil(o.Percentage * float64(len(A)+len(B))))
	if k > len(abba)-1 {
		k = len(abba) - 1
	}

	d := abba[k]
	if math.IsInf(d, 1) {
		// Degenerate windows push +Inf entries to the tail; report the
		// best finite rank still available.
		finite := 0
		for _, v := range abba[:k] {
			if !math.IsInf(v, 1) {
				finite++
			}
		}
		if finite == 0 {
			return math.Inf(1), nil
		}
		d = abba[finite-1]
	}
	return d, nil
}
