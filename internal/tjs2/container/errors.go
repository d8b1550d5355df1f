package container

import "errors"

// Error kinds per the load policy: InvalidFormat and Truncated are
// fatal and abort the load; IndexOutOfRange and DecodeFailure are
// absorbed into placeholder values and never stop the walk. A wrapped
// instance of each is instead appended to the in-progress File's
// Warnings so a caller can still see what was absorbed.
var (
	ErrInvalidFormat   = errors.New("invalid format")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDecodeFailure   = errors.New("decode failure")
)
