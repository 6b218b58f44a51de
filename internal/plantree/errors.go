package plantree

import "errors"

// ErrUnsupportedLength means no viable factorization exists for the
// requested length under the small-kernel budget.
var ErrUnsupportedLength = errors.New("plantree: unsupported length")

// ErrInvalidConfig means the request violates a plan tree invariant
// (e.g. an unsupported rank).
var ErrInvalidConfig = errors.New("plantree: invalid config")
