package stream

import "errors"

var (
	// ErrWindowSize indicates a window length below 3 or above the seed series length.
	ErrWindowSize = errors.New("stream: window length must be at least 3 and at most the seed series length")
	// ErrTopK indicates a non-positive top-k count.
	ErrTopK = errors.New("stream: k must be at least 1")
)
