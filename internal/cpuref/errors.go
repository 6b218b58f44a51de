package cpuref

import "errors"

// ErrLengthMismatch is returned when dst and src slice lengths disagree.
var ErrLengthMismatch = errors.New("cpuref: length mismatch")
