package stomp

import "errors"

var (
	// ErrWindowSize indicates a window length below 3 or above the series length.
	ErrWindowSize = errors.New("stomp: window length must be at least 3 and at most the series length")
	// ErrTopK indicates a non-positive top-k count.
	ErrTopK = errors.New("stomp: k must be at least 1")
)
