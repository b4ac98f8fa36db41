package stream

// Accessors return copies of the current state, so a returned snapshot
// stays valid and safe to read after later Update calls.

// Profile returns the top-1 matrix profile: for each subsequence, the
// distance to its nearest neighbor. +Inf means no valid neighbor.
func (s *Stream) Profile() []float64 {
	out := make([]float64, len(s.p))
	for i, row := range s.p {
		out[i] = row[0]
	}
	return out
}

// ProfileK returns the full top-k matrix profile, one ascending row of
// k distances per subsequence. Unused slots are +Inf.
func (s *Stream) ProfileK() [][]float64 {
	out := make([][]float64, len(s.p))
	for i, row := range s.p {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Indices returns the top-1 neighbor index per subsequence, −1 when no
// valid neighbor exists. Under egress the indices are absolute: they
// count from the start of the seed series, not the current buffer.
func (s *Stream) Indices() []int {
	out := make([]int, len(s.i))
	for i, row := range s.i {
		out[i] = row[0]
	}
	return out
}

// IndicesK returns the full top-k neighbor index table, aligned row for
// row with ProfileK. Unused slots are −1.
func (s *Stream) IndicesK() [][]int {
	out := make([][]int, len(s.i))
	for i, row := range s.i {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// LeftProfile returns the causal matrix profile: nearest-neighbor
// distances restricted to neighbors at or before each subsequence's own
// position. Always ≥ the unrestricted Profile.
func (s *Stream) LeftProfile() []float64 {
	return append([]float64(nil), s.leftP...)
}

// LeftIndices returns the causal neighbor indices aligned with
// LeftProfile, −1 when no causal neighbor exists.
func (s *Stream) LeftIndices() []int {
	return append([]int(nil), s.leftI...)
}

// Series returns the current series buffer. Non-finite input points
// appear as 0 here; their effect on distances is tracked separately.
func (s *Stream) Series() []float64 {
	return append([]float64(nil), s.t...)
}

// Len returns the current series length: constant under egress, growing
// by one per Update otherwise.
func (s *Stream) Len() int { return len(s.t) }

// WindowSize returns the subsequence window length m.
func (s *Stream) WindowSize() int { return s.m }

// K returns the number of neighbors tracked per subsequence.
func (s *Stream) K() int { return s.k }
