package motif

import "errors"

var (
	// ErrWindowSize indicates a query or window length below 3 or above the series length.
	ErrWindowSize = errors.New("motif: window length must be at least 3 and at most the series length")
	// ErrProfileLength indicates a profile that does not match the series and window length.
	ErrProfileLength = errors.New("motif: profile length must equal len(T)-m+1")
)
