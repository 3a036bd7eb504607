package arrays

import "errors"

var (
	// ErrIndexOutOfRange indicates an index outside the slice bounds.
	ErrIndexOutOfRange = errors.New("arrays: index out of range")
	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("arrays: empty slice")
)
